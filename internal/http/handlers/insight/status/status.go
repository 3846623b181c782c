// Package status implementa o handler HTTP que marca um insight como
// lido ou ignorado.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/services"
)

// Request — id do insight e o novo status de visualização.
type Request struct {
	ID     string `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=lido ignorado"`
}

// Handler trata as requisições de marcação de insight.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a marcação de status de insight.
type Service interface {
	SetStatus(ctx context.Context, userUID, insightID, status string) error
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.insight.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	if err := h.service.SetStatus(r.Context(), userUID, req.ID, req.Status); err != nil {
		if errors.Is(err, services.ErrInvalidInsightStatus) {
			log.Error("invalid insight status", slog.String("status", req.Status))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error("invalid insight status"))
			return
		}
		log.Error("failed to set insight status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not set insight status"))
		return
	}

	log.Info("insight status set", slog.String("id", req.ID), slog.String("status", req.Status))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id":     req.ID,
		"status": req.Status,
	}))
}
