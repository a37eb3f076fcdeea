// Package list implementa o handler HTTP que lista as inscrições no painel.
package list

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

// Handler atende as requisições HTTP de listagem de inscrições.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a lógica de listagem.
type Service interface {
	ListAll(ctx context.Context) ([]*models.Subscription, error)
}

// New cria um Handler com o logger e o serviço informados.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Listar todas as inscrições
// @Description Devolve as inscrições ordenadas da mais recente para a mais antiga.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Lista de inscrições"
// @Failure 401 {object} response.ErrorResponse "Operador não autenticado"
// @Failure 500 {object} response.ErrorResponse "Erro interno"
// @Router /admin/subscriptions [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	subs, err := h.service.ListAll(r.Context())
	if err != nil {
		log.Error("failed to list subscriptions", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list subscriptions"))
		return
	}

	log.Info("subscriptions listed", slog.Int("count", len(subs)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subscriptions": subs,
		"count":         len(subs),
	}))
}
