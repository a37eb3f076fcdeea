// Package confirm implementa o handler HTTP de confirmação de pagamento.
//
// A variante Stripe envia {payment_intent_id}; a variante manual envia
// {subscription_id}. O handler aceita qualquer um dos dois e repassa a
// referência não vazia ao serviço.
package confirm

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/mentoriapro/inscricoes/internal/http/response"
	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/payment"
	"github.com/mentoriapro/inscricoes/internal/storage"
)

// Handler atende as requisições HTTP de confirmação de pagamento.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service descreve a lógica de negócio de confirmação de pagamento.
type Service interface {
	ConfirmPayment(ctx context.Context, reference string) (*models.Subscription, error)
}

// Request carrega a referência de pagamento de qualquer uma das variantes.
type Request struct {
	PaymentIntentID string `json:"payment_intent_id"`
	SubscriptionID  string `json:"subscription_id"`
}

// New cria um Handler com o logger e o serviço informados.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Confirmar o pagamento de uma inscrição
// @Description Verifica o pagamento junto ao provedor e marca a inscrição como confirmada.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body Request true "Referência do pagamento"
// @Success 200 {object} response.Response "Pagamento confirmado"
// @Failure 400 {object} response.ErrorResponse "Referência ausente ou pagamento não aprovado"
// @Failure 404 {object} response.ErrorResponse "Inscrição não encontrada"
// @Failure 500 {object} response.ErrorResponse "Erro interno"
// @Router /payments/confirm [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.confirm"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	reference := req.PaymentIntentID
	if reference == "" {
		reference = req.SubscriptionID
	}
	if reference == "" {
		log.Error("payment reference is missing")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("payment reference is required"))
		return
	}

	sub, err := h.service.ConfirmPayment(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrNotSucceeded), errors.Is(err, payment.ErrCanceled),
			errors.Is(err, payment.ErrMissingSubscription):
			log.Error("payment was not confirmed", sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("payment not confirmed"))
		case errors.Is(err, storage.ErrSubscriptionNotFound):
			log.Error("subscription not found", slog.String("reference", reference))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("subscription not found"))
		default:
			log.Error("failed to confirm payment", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not confirm payment"))
		}
		return
	}

	log.Info("payment confirmed", slog.String("subscription_id", sub.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"success":      true,
		"subscription": sub,
	}))
}
