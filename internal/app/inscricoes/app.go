// Package inscricoes monta e executa o serviço HTTP de inscrições da
// mentoria: seleciona o backend de armazenamento, a variante de pagamento
// e os recursos opcionais (cache e fila de notificações) a partir da
// configuração.
package inscricoes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"
	"golang.org/x/time/rate"

	"github.com/mentoriapro/inscricoes/internal/cache"
	"github.com/mentoriapro/inscricoes/internal/config"
	"github.com/mentoriapro/inscricoes/internal/lib/jwt"
	"github.com/mentoriapro/inscricoes/internal/migrations"
	"github.com/mentoriapro/inscricoes/internal/payment"
	"github.com/mentoriapro/inscricoes/internal/rabbitmq"
	authservice "github.com/mentoriapro/inscricoes/internal/services/auth"
	subservice "github.com/mentoriapro/inscricoes/internal/services/subscription"
	"github.com/mentoriapro/inscricoes/internal/storage/memory"
	"github.com/mentoriapro/inscricoes/internal/storage/repository"
)

// Store reúne os contratos de inscrições e de operadores que os dois
// backends de armazenamento implementam.
type Store interface {
	subservice.SubscriptionRepository
	authservice.UserRepository
}

type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	amqpConn *amqp.Connection
	amqpCh   *amqp.Channel
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{logger: logger}

	var store Store
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := repository.New(cfg.Storage.ConnectionString)
		if err != nil {
			return nil, err
		}
		if err = migrations.Run(db.DB, cfg.Storage.MigrationsPath); err != nil {
			return nil, err
		}
		app.db = db
		store = db
	case "memory", "":
		store = memory.New()
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}

	var cacheBackend subservice.Cache = cache.Noop{}
	if cfg.RedisConnection.Enabled {
		cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, err
		}
		cacheBackend = cacheRedis
	}

	var provider payment.Provider
	switch cfg.Payment.Mode {
	case "stripe":
		provider = payment.NewStripeProvider(cfg.Payment.StripeSecretKey, logger)
	case "manual", "":
		provider = payment.NewManualProvider(cfg.Payment.CaktoCheckoutURL, cfg.Payment.WhatsAppNumber)
	default:
		return nil, fmt.Errorf("unknown payment mode: %q", cfg.Payment.Mode)
	}
	logger.Info("payment provider selected", slog.String("mode", cfg.Payment.Mode))

	var notifier subservice.Notifier = subservice.NopNotifier{}
	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			return nil, err
		}
		ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetNotificationQueues())
		if err != nil {
			conn.Close()
			return nil, err
		}
		app.amqpConn = conn
		app.amqpCh = ch
		notifier = rabbitmq.NewConfirmationPublisher(ch)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	subscriptionService := subservice.New(store, provider, cacheBackend, notifier, logger)
	authService := authservice.New(store, jwtMaker, logger)

	if cfg.AdminUser.Username != "" {
		if err := authService.Bootstrap(ctx, cfg.AdminUser.Username, cfg.AdminUser.Password); err != nil {
			return nil, err
		}
	}

	limiter := rate.NewLimiter(rate.Limit(10), 30)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, subscriptionService, authService, jwtMaker, limiter)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

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
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.amqpCh != nil {
		if err := a.amqpCh.Close(); err != nil {
			a.logger.Error("failed to close amqp channel", slog.Any("err", err))
		}
	}
	if a.amqpConn != nil {
		if err := a.amqpConn.Close(); err != nil {
			a.logger.Error("failed to close amqp connection", slog.Any("err", err))
		}
	}
	if a.db != nil {
		if err := a.db.DB.Close(); err != nil {
			a.logger.Error("failed to close database", slog.Any("err", err))
		}
	}
}
