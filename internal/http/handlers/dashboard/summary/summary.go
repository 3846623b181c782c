// Package summary implementa o handler HTTP do painel financeiro.
//
// A janela de agregação vem dos parâmetros month e year da query:
// ambos presentes definem o mês consultado, ambos ausentes agregam o
// histórico inteiro, qualquer outra combinação é rejeitada.
package summary

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/aggregate"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/services"
)

// Handler trata as requisições do painel financeiro.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a montagem do painel pelo serviço de análise.
type Service interface {
	Summary(ctx context.Context, userUID string, period *aggregate.Period) (*services.DashboardSummary, error)
}

// New cria um novo Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func parsePeriod(r *http.Request) (*aggregate.Period, bool) {
	monthStr := r.URL.Query().Get("month")
	yearStr := r.URL.Query().Get("year")
	if monthStr == "" && yearStr == "" {
		return nil, true
	}
	if monthStr == "" || yearStr == "" {
		return nil, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return nil, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 {
		return nil, false
	}
	return &aggregate.Period{Month: time.Month(month), Year: year}, true
}

// ServeHTTP godoc
// @Summary Painel financeiro
// @Description Devolve os totais da janela, as quebras por categoria e os resumos de orçamento e metas do usuário.
// @Tags Dashboard
// @Produce json
// @Param month query int false "Mês da janela (1-12, junto com year)"
// @Param year query int false "Ano da janela (junto com month)"
// @Success 200 {object} response.Response "Painel consolidado"
// @Failure 400 {object} response.ErrorResponse "Janela inválida"
// @Failure 401 {object} response.ErrorResponse "Usuário não autenticado"
// @Failure 500 {object} response.ErrorResponse "Falha ao montar o painel"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.summary"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	period, ok := parsePeriod(r)
	if !ok {
		log.Error("invalid period parameters")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("month and year must be provided together and be valid"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	summary, err := h.service.Summary(r.Context(), userUID, period)
	if err != nil {
		log.Error("failed to build dashboard summary", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build dashboard summary"))
		return
	}

	log.Info("dashboard summary built", slog.Int("transactions", summary.Totais.Quantidade))
	render.JSON(w, r, response.StatusOKWithData(summary))
}
