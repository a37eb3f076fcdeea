package inscricoes

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/mentoriapro/inscricoes/internal/http/handlers/admin/list"
	"github.com/mentoriapro/inscricoes/internal/http/handlers/admin/login"
	"github.com/mentoriapro/inscricoes/internal/http/handlers/admin/read"
	"github.com/mentoriapro/inscricoes/internal/http/handlers/admin/stats"
	"github.com/mentoriapro/inscricoes/internal/http/handlers/health"
	"github.com/mentoriapro/inscricoes/internal/http/handlers/payment/confirm"
	"github.com/mentoriapro/inscricoes/internal/http/handlers/subscription/create"
	"github.com/mentoriapro/inscricoes/internal/http/middlewarectx"
	"github.com/mentoriapro/inscricoes/internal/lib/jwt"
	authservice "github.com/mentoriapro/inscricoes/internal/services/auth"
	subservice "github.com/mentoriapro/inscricoes/internal/services/subscription"
)

// RegisterRoutes registra todas as rotas da aplicação.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	subscriptionService *subservice.Service, authService *authservice.Service,
	jwtMaker jwt.Maker, limiter *rate.Limiter) {

	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		middlewarectx.MetricsMiddleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Endpoints públicos da página de inscrição
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))
			r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
			r.Post("/payments/confirm", confirm.New(logger, subscriptionService).ServeHTTP)
			r.Post("/admin/login", login.New(logger, authService).ServeHTTP)
		})

		// Painel administrativo com autenticação JWT
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Get("/admin/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
			r.Get("/admin/subscriptions/{id}", read.New(logger, subscriptionService).ServeHTTP)
			r.Get("/admin/stats", stats.New(logger, subscriptionService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
