// Package login implementa o handler HTTP de login por email e senha.
package login

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
)

// Request — credenciais de login.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Handler trata as requisições de login.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a operação de login do serviço de autenticação.
type Service interface {
	Login(ctx context.Context, email, rawPassword string) (token, role string, err error)
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
// @Summary Autenticar usuário
// @Description Valida email e senha e devolve o token JWT e o papel do usuário.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Credenciais"
// @Success 200 {object} response.Response "Token emitido"
// @Failure 400 {object} response.ErrorResponse "JSON inválido"
// @Failure 401 {object} response.ErrorResponse "Credenciais inválidas"
// @Router /login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

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

	token, role, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("invalid credentials"))
		return
	}

	log.Info("user logged in", slog.String("email", req.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
		"role":  role,
	}))
}
