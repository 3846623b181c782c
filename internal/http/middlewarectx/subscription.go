package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/financeflow-app/financeflow/internal/http/response"
	"github.com/financeflow-app/financeflow/internal/lib/access"
	"github.com/financeflow-app/financeflow/internal/lib/sl"
	"github.com/financeflow-app/financeflow/internal/models"
)

// ProfileService carrega o perfil completo do usuário (com o estado de
// assinatura) para o gate de acesso.
type ProfileService interface {
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// SubscriptionGateMiddleware bloqueia as rotas protegidas para quem não
// tem assinatura ativa. O perfil vem do serviço de sessão (cache com
// recarga do banco); falha na carga fecha o acesso com 401 em vez de
// liberar. Sem assinatura ativa devolve 403 com o destino de upgrade.
func SubscriptionGateMiddleware(profiles ProfileService, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SubscriptionGateMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			userUID, ok := r.Context().Value(UserUID).(string)
			if !ok || userUID == "" {
				log.Error("user identification missing")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			user, err := profiles.GetUser(r.Context(), userUID)
			if err != nil {
				log.Error("failed to load user profile", sl.Err(err))
				user = nil
			}

			switch access.Decide(user) {
			case access.DecisionLogin:
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user not found"))
			case access.DecisionUpgrade:
				log.Info("subscription required", slog.String("uid", userUID))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Response{
					Status: response.StatusError,
					Error:  "active subscription required",
					Data:   map[string]string{"redirect": "/upgrade"},
				})
			case access.DecisionAllow:
				next.ServeHTTP(w, r)
			}
		})
	}
}
