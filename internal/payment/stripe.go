package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"

	"github.com/mentoriapro/inscricoes/internal/lib/sl"
	"github.com/mentoriapro/inscricoes/internal/models"
)

// Chaves dos metadados anexados ao payment intent. Confirm depende delas
// para recuperar a inscrição a partir do intent.
const (
	metadataSubscriptionID = "subscription_id"
	metadataEmail          = "email"
	metadataPlano          = "plano"
)

// StripeProvider implementa Provider sobre a API de PaymentIntents.
type StripeProvider struct {
	log *slog.Logger
}

// NewStripeProvider configura a chave secreta global do cliente Stripe e
// devolve o provider.
func NewStripeProvider(secretKey string, log *slog.Logger) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{log: log}
}

// Begin cria um payment intent em centavos de real para o plano da
// inscrição, com o id da inscrição nos metadados, e devolve o client
// secret para o frontend concluir a cobrança.
func (p *StripeProvider) Begin(ctx context.Context, sub *models.Subscription) (*Handle, string, error) {
	const op = "payment.StripeProvider.Begin"

	centavos, ok := models.PlanoAmountCentavos(sub.Plano)
	if !ok {
		return nil, "", fmt.Errorf("%s: unknown plano %q", op, sub.Plano)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(centavos),
		Currency: stripe.String(string(stripe.CurrencyBRL)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(metadataSubscriptionID, sub.ID)
	params.AddMetadata(metadataEmail, sub.Email)
	params.AddMetadata(metadataPlano, sub.Plano)

	pi, err := paymentintent.New(params)
	if err != nil {
		p.log.Error("failed to create payment intent", sl.Err(err))
		return nil, "", fmt.Errorf("%s: %w", op, ErrGateway)
	}

	return &Handle{ClientSecret: pi.ClientSecret}, pi.ID, nil
}

// Confirm consulta o payment intent no gateway e só aceita a confirmação
// quando o status é succeeded, extraindo o id da inscrição dos metadados.
// Um intent cancelado devolve ErrCanceled junto com o id da inscrição,
// para que o chamador possa marcar a tentativa como failed.
func (p *StripeProvider) Confirm(ctx context.Context, reference string) (string, string, error) {
	const op = "payment.StripeProvider.Confirm"

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := paymentintent.Get(reference, params)
	if err != nil {
		p.log.Error("failed to retrieve payment intent", sl.Err(err))
		return "", "", fmt.Errorf("%s: %w", op, ErrGateway)
	}

	subscriptionID := pi.Metadata[metadataSubscriptionID]
	if subscriptionID == "" {
		return "", "", fmt.Errorf("%s: %w", op, ErrMissingSubscription)
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return subscriptionID, pi.ID, nil
	case stripe.PaymentIntentStatusCanceled:
		return subscriptionID, pi.ID, fmt.Errorf("%s: %w", op, ErrCanceled)
	default:
		return subscriptionID, pi.ID, fmt.Errorf("%s: %w", op, ErrNotSucceeded)
	}
}
