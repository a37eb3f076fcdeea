// Package notifier monta e executa o serviço que consome os eventos de
// confirmação da fila e envia os e-mails de boas-vindas.
package notifier

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/mentoriapro/inscricoes/internal/config"
	"github.com/mentoriapro/inscricoes/internal/lib/smtp"
	"github.com/mentoriapro/inscricoes/internal/rabbitmq"
	notifierservice "github.com/mentoriapro/inscricoes/internal/services/notifier"
)

type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	service *notifierservice.Service
	logger  *slog.Logger
}

func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
	if err != nil {
		conn.Close()
		return nil, err
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	service := notifierservice.New(transport, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		service: service,
		logger:  logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	err := rabbitmq.ConsumerMessage(ctx, a.ch, rabbitmq.ConfirmedQueue, a.service.SendConfirmationEmail)
	if err != nil {
		a.logger.Error("failed to start confirmation consumer", slog.Any("err", err))
		return err
	}

	<-ctx.Done()
	a.logger.Info("notifier service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}
	return nil
}
