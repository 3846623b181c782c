package financeflow

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	adminsubscription "github.com/financeflow-app/financeflow/internal/http/handlers/admin/subscription"
	"github.com/financeflow-app/financeflow/internal/http/handlers/admin/userlist"
	"github.com/financeflow-app/financeflow/internal/http/handlers/auth/login"
	"github.com/financeflow-app/financeflow/internal/http/handlers/auth/register"
	categorycreate "github.com/financeflow-app/financeflow/internal/http/handlers/category/create"
	categorylist "github.com/financeflow-app/financeflow/internal/http/handlers/category/list"
	categoryremove "github.com/financeflow-app/financeflow/internal/http/handlers/category/remove"
	categoryupdate "github.com/financeflow-app/financeflow/internal/http/handlers/category/update"
	"github.com/financeflow-app/financeflow/internal/http/handlers/dashboard/summary"
	goalcreate "github.com/financeflow-app/financeflow/internal/http/handlers/goal/create"
	goallist "github.com/financeflow-app/financeflow/internal/http/handlers/goal/list"
	goalremove "github.com/financeflow-app/financeflow/internal/http/handlers/goal/remove"
	goalupdate "github.com/financeflow-app/financeflow/internal/http/handlers/goal/update"
	"github.com/financeflow-app/financeflow/internal/http/handlers/health"
	insightgenerate "github.com/financeflow-app/financeflow/internal/http/handlers/insight/generate"
	insightstatus "github.com/financeflow-app/financeflow/internal/http/handlers/insight/status"
	transactioncreate "github.com/financeflow-app/financeflow/internal/http/handlers/transaction/create"
	transactionlist "github.com/financeflow-app/financeflow/internal/http/handlers/transaction/list"
	transactionremove "github.com/financeflow-app/financeflow/internal/http/handlers/transaction/remove"
	transactionupdate "github.com/financeflow-app/financeflow/internal/http/handlers/transaction/update"
	"github.com/financeflow-app/financeflow/internal/http/middlewarectx"
	"github.com/financeflow-app/financeflow/internal/services"
)

// Services agrupa os serviços de negócio usados pelas rotas.
type Services struct {
	Auth        *services.AuthService
	Transaction *services.TransactionService
	Category    *services.CategoryService
	Goal        *services.GoalService
	Analytics   *services.AnalyticsService
	Insight     *services.InsightService
	Admin       *services.AdminService
}

// RegisterRoutes registra todas as rotas do serviço.
//
// Três níveis de acesso: rotas abertas (cadastro, login, saúde), rotas
// de assinante (JWT válido + assinatura ativa) e rotas administrativas
// (JWT válido + papel admin, sem exigir assinatura).
func RegisterRoutes(r chi.Router, logger *slog.Logger, svc *Services) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Rotas de assinante.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.SubscriptionGateMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/transactions", transactioncreate.New(logger, svc.Transaction).ServeHTTP)
			r.Get("/transactions", transactionlist.New(logger, svc.Transaction).ServeHTTP)
			r.Put("/transactions/{id}", transactionupdate.New(logger, svc.Transaction).ServeHTTP)
			r.Delete("/transactions/{id}", transactionremove.New(logger, svc.Transaction).ServeHTTP)

			r.Post("/categories", categorycreate.New(logger, svc.Category).ServeHTTP)
			r.Get("/categories", categorylist.New(logger, svc.Category).ServeHTTP)
			r.Put("/categories/{id}", categoryupdate.New(logger, svc.Category).ServeHTTP)
			r.Delete("/categories/{id}", categoryremove.New(logger, svc.Category).ServeHTTP)

			r.Post("/goals", goalcreate.New(logger, svc.Goal).ServeHTTP)
			r.Get("/goals", goallist.New(logger, svc.Goal).ServeHTTP)
			r.Put("/goals/{id}", goalupdate.New(logger, svc.Goal).ServeHTTP)
			r.Delete("/goals/{id}", goalremove.New(logger, svc.Goal).ServeHTTP)

			r.Get("/dashboard", summary.New(logger, svc.Analytics).ServeHTTP)
			r.Get("/insights", insightgenerate.New(logger, svc.Insight).ServeHTTP)
			r.Post("/insights/status", insightstatus.New(logger, svc.Insight).ServeHTTP)
		})

		// Rotas administrativas.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(svc.Auth, logger))
			r.Use(middlewarectx.AdminOnlyMiddleware(logger))

			r.Get("/admin/users", userlist.New(logger, svc.Admin).ServeHTTP)
			r.Put("/admin/users/{uid}/subscription", adminsubscription.New(logger, svc.Admin).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
