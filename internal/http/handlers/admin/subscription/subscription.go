// Package subscription implementa o handler administrativo de gestão de
// assinaturas: o administrador ativa, expira ou desativa manualmente a
// assinatura de um usuário.
package subscription

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Handler trata a atualização administrativa de assinatura.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a atualização de assinatura do serviço administrativo.
type Service interface {
	UpdateSubscription(ctx context.Context, userUID string, req models.DummySubscriptionUpdate) (int, error)
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Atualizar assinatura de usuário
// @Description Aplica uma atualização parcial na assinatura do usuário. Campos ausentes ficam intactos. Restrito a administradores.
// @Tags Admin
// @Accept json
// @Produce json
// @Param uid path string true "UID do usuário"
// @Param request body models.DummySubscriptionUpdate true "Campos a atualizar"
// @Success 200 {object} response.Response "Assinatura atualizada"
// @Failure 400 {object} response.ErrorResponse "UID ou JSON inválido"
// @Failure 403 {object} response.ErrorResponse "Acesso restrito a administradores"
// @Failure 404 {object} response.ErrorResponse "Usuário não encontrado"
// @Failure 422 {object} response.Response "Erro de validação"
// @Failure 500 {object} response.ErrorResponse "Falha ao atualizar a assinatura"
// @Security BearerAuth
// @Router /admin/users/{uid}/subscription [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.subscription"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID := chi.URLParam(r, "uid")
	if _, err := uuid.Parse(userUID); err != nil {
		log.Error("invalid uid format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid uid"))
		return
	}

	var req models.DummySubscriptionUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	count, err := h.service.UpdateSubscription(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to update subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update subscription"))
		return
	}
	if count == 0 {
		log.Info("user not found", slog.String("uid", userUID))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}

	log.Info("subscription updated", slog.String("uid", userUID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"updated_count": count,
	}))
}
