// Package models contém as estruturas de domínio da inscrição na mentoria,
// além dos tipos auxiliares usados para receber dados de requisições JSON.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma inscrição. Uma inscrição nasce pendente e só
// muda de status por uma confirmação explícita.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Planos de pagamento aceitos no formulário da landing page.
const (
	PlanoPix    = "pix"
	PlanoCartao = "cartao"
)

// Subscription é o registro de inscrição de um lead, amarrado a um plano
// de pagamento e a um status. Amount é sempre derivado do plano na criação
// e nunca editado de forma independente.
type Subscription struct {
	ID               string          `json:"id"`
	Nome             string          `json:"nome"`
	Email            string          `json:"email"`
	Telefone         string          `json:"telefone"`
	Plano            string          `json:"plano"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	PaymentReference string          `json:"payment_reference,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// DummySubscription recebe os dados do formulário de inscrição antes de
// serem convertidos em Subscription. As tags de validação espelham as
// regras do formulário: nome com pelo menos 2 caracteres, e-mail válido,
// telefone com pelo menos 10 dígitos e plano dentro do enum.
type DummySubscription struct {
	Nome     string `json:"nome" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Telefone string `json:"telefone" validate:"required,min=10"`
	Plano    string `json:"plano" validate:"required,oneof=pix cartao"`
}

// Stats é o resumo agregado exibido no painel administrativo. Revenue usa
// decimal para não acumular erro de ponto flutuante na soma dos valores.
type Stats struct {
	TotalSubscriptions int             `json:"total_subscriptions"`
	ThisMonth          int             `json:"this_month"`
	Revenue            decimal.Decimal `json:"revenue"`
	ConversionRate     float64         `json:"conversion_rate"`
}

// User é o operador com acesso ao painel administrativo.
type User struct {
	UID          string    `json:"uid"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// DummyLogin recebe as credenciais de login do painel.
type DummyLogin struct {
	Username string `json:"username" validate:"required,alphanum"`
	Password string `json:"password" validate:"required"`
}

// ConfirmationEvent é a mensagem publicada na fila de notificações quando
// um pagamento é confirmado.
type ConfirmationEvent struct {
	SubscriptionID string          `json:"subscription_id"`
	Nome           string          `json:"nome"`
	Email          string          `json:"email"`
	Plano          string          `json:"plano"`
	Amount         decimal.Decimal `json:"amount"`
}
