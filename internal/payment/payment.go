// Package payment define o contrato com o fluxo de pagamento e suas duas
// variantes: verificação automática via Stripe ou confirmação manual do
// operador após o pagamento pelo checkout do Cakto. A variante ativa é
// escolhida na subida da aplicação pela configuração, nunca por checagens
// de nil espalhadas pelos handlers.
package payment

import (
	"context"
	"errors"

	"github.com/mentoriapro/inscricoes/internal/models"
)

// ManualReference é a referência sentinela gravada quando um operador
// confirma o pagamento manualmente, sem verificação pelo gateway.
const ManualReference = "manual-confirmation"

var (
	// ErrNotSucceeded indica que o gateway não reporta o pagamento como concluído.
	ErrNotSucceeded = errors.New("payment not succeeded")
	// ErrCanceled indica que o gateway reporta a tentativa como cancelada.
	ErrCanceled = errors.New("payment canceled")
	// ErrMissingSubscription indica intent sem id de inscrição nos metadados.
	ErrMissingSubscription = errors.New("subscription id missing from intent metadata")
	// ErrGateway encapsula falhas de comunicação com o provedor. O texto
	// devolvido ao cliente é sempre genérico; o detalhe fica no log.
	ErrGateway = errors.New("payment gateway error")
)

// Handle é o que o cliente recebe após criar uma inscrição para seguir
// com o pagamento. Apenas os campos da variante ativa vêm preenchidos.
type Handle struct {
	ClientSecret string `json:"client_secret,omitempty"`
	CheckoutURL  string `json:"checkout_url,omitempty"`
	SupportURL   string `json:"support_url,omitempty"`
}

// Provider é a capacidade de pagamento vista pela camada de serviço.
type Provider interface {
	// Begin prepara a cobrança de uma inscrição recém-criada. Devolve o
	// handle para o cliente e a referência de pagamento a persistir
	// (vazia na variante manual).
	Begin(ctx context.Context, sub *models.Subscription) (*Handle, string, error)
	// Confirm resolve uma referência de confirmação para o id da
	// inscrição e a referência de pagamento a gravar. Na variante Stripe
	// a referência é o id do payment intent; na manual, o próprio id da
	// inscrição.
	Confirm(ctx context.Context, reference string) (subscriptionID, paymentReference string, err error)
}
