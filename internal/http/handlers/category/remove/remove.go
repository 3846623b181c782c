// Package remove implementa o handler HTTP de exclusão de categorias.
// A exclusão não apaga os lançamentos históricos vinculados pelo nome.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
)

// Handler trata as requisições de exclusão de categoria.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a operação de exclusão de categoria.
type Service interface {
	Remove(ctx context.Context, userUID, id string) (int, error)
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	count, err := h.service.Remove(r.Context(), userUID, id)
	if err != nil {
		log.Error("failed to delete category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete category"))
		return
	}
	if count == 0 {
		log.Info("category not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("category not found"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"deleted_count": count,
	}))
}
