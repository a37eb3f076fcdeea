// Package stats implementa o handler HTTP das métricas de negócio do painel.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentoriapro/inscricoes/internal/http/response"
	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
)

// Handler atende as requisições HTTP de estatísticas.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a lógica de agregação de estatísticas.
type Service interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

// New cria um Handler com o logger e o serviço informados.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Consultar as estatísticas de inscrições
// @Description Calcula totais, receita e taxa de conversão sobre o estado atual da base.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Estatísticas agregadas"
// @Failure 401 {object} response.ErrorResponse "Operador não autenticado"
// @Failure 500 {object} response.ErrorResponse "Erro interno"
// @Router /admin/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.stats"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		log.Error("failed to aggregate stats", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not aggregate stats"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(stats))
}
