// Package register implementa o handler HTTP de cadastro de usuários.
//
// O Handler recebe o JSON com email, nome e senha, valida os campos,
// cria o usuário pelo serviço de autenticação e devolve o uid gerado.
// O usuário nasce sem assinatura: as rotas protegidas só abrem depois
// da liberação pelo administrador.
package register

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

// Request — dados de entrada do cadastro.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Nome     string `json:"nome" validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// Handler trata as requisições de cadastro.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a operação de cadastro do serviço de autenticação.
type Service interface {
	Register(ctx context.Context, email, nome, rawPassword string) (string, error)
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
// @Summary Cadastrar usuário
// @Description Cria um novo usuário com papel "user" e sem assinatura. Devolve o uid gerado.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Dados do cadastro"
// @Success 200 {object} response.Response "Usuário criado"
// @Failure 400 {object} response.ErrorResponse "JSON inválido"
// @Failure 422 {object} response.Response "Erro de validação"
// @Failure 500 {object} response.ErrorResponse "Falha ao criar o usuário"
// @Router /register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uid, err := h.service.Register(r.Context(), req.Email, req.Nome, req.Password)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to register user"))
		return
	}

	log.Info("user registered", slog.String("uid", uid))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"uid":     uid,
		"message": "user created successfully",
	}))
}
