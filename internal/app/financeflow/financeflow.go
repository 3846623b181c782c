// Package financeflow monta e executa o serviço HTTP principal:
// conexões com PostgreSQL, Redis e RabbitMQ, serviços de negócio,
// rotas e servidor com desligamento gracioso.
package financeflow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/financeflow-app/financeflow/internal/cache"
	"github.com/financeflow-app/financeflow/internal/config"
	"github.com/financeflow-app/financeflow/internal/lib/jwt"
	"github.com/financeflow-app/financeflow/internal/lib/rabbitmq"
	"github.com/financeflow-app/financeflow/internal/migrations"
	"github.com/financeflow-app/financeflow/internal/services"
	"github.com/financeflow-app/financeflow/internal/storage/repository"
)

// App agrupa o servidor HTTP e as conexões externas do serviço.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New conecta as dependências, aplica as migrações e monta o servidor.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close rabbitmq connection", slog.Any("err", closeErr))
		}
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(ch)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := services.NewAuthService(db, cacheRedis, jwtMaker, publisher, logger)
	transactionService := services.NewTransactionService(db, logger)
	categoryService := services.NewCategoryService(db, logger)
	goalService := services.NewGoalService(db, logger)
	analyticsService := services.NewAnalyticsService(db, logger)
	insightService := services.NewInsightService(db, cacheRedis, logger)
	adminService := services.NewAdminService(db, cacheRedis, publisher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, &Services{
		Auth:        authService,
		Transaction: transactionService,
		Category:    categoryService,
		Goal:        goalService,
		Analytics:   analyticsService,
		Insight:     insightService,
		Admin:       adminService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run sobe o servidor e espera o cancelamento do contexto para
// desligar graciosamente.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.ch.Close(); closeErr != nil {
			a.logger.Error("failed to close rabbitmq channel", slog.Any("err", closeErr))
		}
		if closeErr := a.conn.Close(); closeErr != nil {
			a.logger.Error("failed to close rabbitmq connection", slog.Any("err", closeErr))
		}
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
