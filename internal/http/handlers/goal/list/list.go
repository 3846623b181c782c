// Package list implementa o handler HTTP de listagem de metas.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Handler trata as requisições de listagem de metas.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a operação de listagem de metas.
type Service interface {
	List(ctx context.Context, userUID string) ([]*models.Meta, error)
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.goal.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	metas, err := h.service.List(r.Context(), userUID)
	if err != nil {
		log.Error("failed to list goals", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list goals"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"goals": metas,
		"count": len(metas),
	}))
}
