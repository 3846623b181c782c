// Package create implementa o handler HTTP de criação de lançamentos.
//
// O Handler recebe o JSON do lançamento, valida os campos, extrai o uid
// do usuário do contexto e devolve o id da linha criada.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Handler trata as requisições de criação de lançamento.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a operação de criação de lançamento.
type Service interface {
	Create(ctx context.Context, userUID string, req models.DummyTransaction) (string, error)
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
// @Summary Criar lançamento
// @Description Cria um lançamento de receita ou despesa para o usuário autenticado.
// @Tags Transactions
// @Accept json
// @Produce json
// @Param request body models.DummyTransaction true "Dados do lançamento"
// @Success 200 {object} response.Response "Lançamento criado"
// @Failure 400 {object} response.ErrorResponse "JSON inválido"
// @Failure 401 {object} response.ErrorResponse "Usuário não autenticado"
// @Failure 422 {object} response.Response "Erro de validação"
// @Failure 500 {object} response.ErrorResponse "Falha ao criar o lançamento"
// @Security BearerAuth
// @Router /transactions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.transaction.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyTransaction
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	id, err := h.service.Create(r.Context(), userUID, req)
	if err != nil {
		log.Error("failed to create transaction", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create transaction"))
		return
	}

	log.Info("transaction created", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
