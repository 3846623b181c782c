// Package sender monta e executa o consumidor de notificações: escuta
// as filas do broker e envia os emails transacionais.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/financeflow-app/financeflow/internal/config"
	"github.com/financeflow-app/financeflow/internal/lib/rabbitmq"
	"github.com/financeflow-app/financeflow/internal/lib/smtp"
	senderservice "github.com/financeflow-app/financeflow/internal/services/sender"
)

// App agrupa a conexão com o broker e o serviço de envio.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.Service
	logger        *slog.Logger
}

// New conecta ao broker, declara as filas e monta o serviço de envio.
func New(cfg *config.Config, logger *slog.Logger) (*App, error) {
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

	transport := smtp.NewTransport(cfg, logger)
	senderService := senderservice.New(transport, logger)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run liga os consumidores e espera o cancelamento do contexto.
func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, "user_registered_queue", a.senderService.SendWelcomeEmail)
	if err != nil {
		a.logger.Error("failed to start user_registered_queue consumer", slog.Any("err", err))
		return err
	}

	err = rabbitmq.ConsumerMessage(ctx, a.ch, "subscription_status_queue", a.senderService.SendSubscriptionStatusEmail)
	if err != nil {
		a.logger.Error("failed to start subscription_status_queue consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("notification sender shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	return nil
}
