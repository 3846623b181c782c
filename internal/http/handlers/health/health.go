// Package health implementa o handler de verificação de saúde.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/response"
)

// Handler responde o status do serviço.
type Handler struct {
	log *slog.Logger
}

// New cria um novo Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
