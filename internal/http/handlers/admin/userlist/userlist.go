// Package userlist implementa o handler administrativo de listagem de
// usuários com o estado de assinatura de cada um.
package userlist

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Handler trata a listagem administrativa de usuários.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a listagem de usuários do serviço administrativo.
type Service interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// userView esconde o hash de senha na resposta administrativa.
type userView struct {
	UID              string  `json:"uid"`
	Email            string  `json:"email"`
	Nome             string  `json:"nome"`
	Role             string  `json:"role"`
	Plano            *string `json:"plano"`
	StatusAssinatura string  `json:"status_assinatura"`
	DataInicio       *string `json:"data_inicio_assinatura,omitempty"`
	DataFim          *string `json:"data_fim_assinatura,omitempty"`
}

func toView(u *models.User) userView {
	v := userView{
		UID:              u.UID,
		Email:            u.Email,
		Nome:             u.Nome,
		Role:             u.Role,
		Plano:            u.Plano,
		StatusAssinatura: u.StatusAssinatura,
	}
	if u.DataInicioAssinatura != nil {
		s := u.DataInicioAssinatura.Format("2006-01-02")
		v.DataInicio = &s
	}
	if u.DataFimAssinatura != nil {
		s := u.DataFimAssinatura.Format("2006-01-02")
		v.DataFim = &s
	}
	return v
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.userlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit := defaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 || parsed > maxLimit {
			log.Error("invalid limit", slog.String("limit", limitStr))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid limit"))
			return
		}
		limit = parsed
	}
	offset := 0
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		parsed, err := strconv.Atoi(offsetStr)
		if err != nil || parsed < 0 {
			log.Error("invalid offset", slog.String("offset", offsetStr))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid offset"))
			return
		}
		offset = parsed
	}

	users, err := h.service.ListUsers(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	views := make([]userView, 0, len(users))
	for _, u := range users {
		views = append(views, toView(u))
	}

	log.Info("users listed", slog.Int("count", len(views)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"users": views,
		"count": len(views),
	}))
}
