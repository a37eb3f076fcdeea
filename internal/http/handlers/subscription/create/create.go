// Package create implementa o handler HTTP de criação de inscrições.
//
// O Handler recebe um JSON com os dados do interessado, valida os campos,
// registra a inscrição pendente pelo serviço e devolve o identificador
// criado junto com os dados de pagamento do provedor configurado.
//
// Em caso de erro são formadas as respostas HTTP com a descrição do problema.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/mentoriapro/inscricoes/internal/http/response"
	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
	"github.com/mentoriapro/inscricoes/internal/payment"
)

// Handler atende as requisições HTTP de criação de inscrição.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service descreve a lógica de negócio de criação de inscrição.
type Service interface {
	Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, *payment.Handle, error)
}

// New cria um Handler com o logger e o serviço informados.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Criar uma nova inscrição
// @Description Registra uma inscrição pendente e devolve os dados de pagamento do plano escolhido.
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body models.DummySubscription true "Dados da inscrição"
// @Success 200 {object} response.Response "Inscrição criada"
// @Failure 400 {object} response.ErrorResponse "JSON inválido ou falha de validação"
// @Failure 500 {object} response.ErrorResponse "Erro interno ou falha no gateway de pagamento"
// @Router /subscriptions [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummySubscription
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email), slog.String("plano", req.Plano))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	sub, handle, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create subscription"))
		return
	}

	data := map[string]any{
		"subscription_id": sub.ID,
		"status":          sub.Status,
		"amount":          sub.Amount,
	}
	if handle.ClientSecret != "" {
		data["client_secret"] = handle.ClientSecret
	}
	if handle.CheckoutURL != "" {
		data["checkout_url"] = handle.CheckoutURL
	}
	if handle.SupportURL != "" {
		data["support_url"] = handle.SupportURL
	}

	log.Info("subscription created", slog.String("id", sub.ID))
	render.JSON(w, r, response.StatusOKWithData(data))
}
