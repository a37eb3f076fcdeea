// Package read implementa o handler HTTP que busca uma inscrição pelo id.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentoriapro/inscricoes/internal/http/response"
	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/storage"
)

// Handler atende as requisições HTTP de consulta de uma inscrição.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a lógica de consulta por id.
type Service interface {
	Get(ctx context.Context, id string) (*models.Subscription, error)
}

// New cria um Handler com o logger e o serviço informados.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Consultar uma inscrição pelo id
// @Description Devolve a inscrição identificada pelo id informado na URL.
// @Tags Admin
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Id da inscrição"
// @Success 200 {object} response.Response "Inscrição encontrada"
// @Failure 401 {object} response.ErrorResponse "Operador não autenticado"
// @Failure 404 {object} response.ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} response.ErrorResponse "Erro interno"
// @Router /admin/subscriptions/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Error("subscription id missing from url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("subscription id is required"))
		return
	}

	sub, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSubscriptionNotFound) {
			log.Error("subscription not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found"))
			return
		}
		log.Error("failed to read subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read subscription"))
		return
	}

	log.Info("subscription read", slog.String("id", sub.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"subscription": sub,
	}))
}
