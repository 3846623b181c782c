// Package generate implementa o handler HTTP de geração de insights.
//
// Os insights são recalculados a cada chamada com os dados do mês
// corrente; insights ignorados pelo usuário ficam fora da resposta.
package generate

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Handler trata as requisições de geração de insights.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a geração de insights.
type Service interface {
	Generate(ctx context.Context, userUID string, now time.Time) ([]models.Insight, error)
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Gerar insights
// @Description Recalcula os insights do usuário com os dados do mês corrente.
// @Tags Insights
// @Produce json
// @Success 200 {object} response.Response "Insights gerados"
// @Failure 401 {object} response.ErrorResponse "Usuário não autenticado"
// @Failure 500 {object} response.ErrorResponse "Falha ao gerar insights"
// @Security BearerAuth
// @Router /insights [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.insight.generate"

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

	insights, err := h.service.Generate(r.Context(), userUID, time.Now())
	if err != nil {
		log.Error("failed to generate insights", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not generate insights"))
		return
	}

	log.Info("insights generated", slog.Int("count", len(insights)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"insights": insights,
		"count":    len(insights),
	}))
}
