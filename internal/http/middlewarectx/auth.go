// Package middlewarectx contém os middlewares HTTP do FinanceFlow:
// validação do JWT, gate de assinatura, restrição a administradores e
// limite de requisições. A identidade validada viaja no contexto da
// requisição com as chaves User, Role e UserUID.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// Key é o tipo das chaves de contexto da requisição.
type Key string

const (
	// User — email do usuário autenticado.
	User Key = "user"
	// Role — papel do usuário autenticado.
	Role Key = "role"
	// UserUID — uid do usuário autenticado.
	UserUID Key = "user_uid"
)

// Service valida o JWT e devolve a identidade contida nele.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, string, bool, error)
}

// JWTMiddleware valida o token Bearer do cabeçalho Authorization e
// injeta email, papel e uid no contexto. Token ausente ou inválido
// devolve 401.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, role, valid, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil || !valid {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), User, user.Email)
			ctx = context.WithValue(ctx, Role, role)
			ctx = context.WithValue(ctx, UserUID, user.UID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
