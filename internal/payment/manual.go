package payment

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mentoriapro/inscricoes/internal/models"
)

// ManualProvider implementa a variante sem gateway: o lead paga pelo
// checkout do Cakto e um operador confirma o recebimento à mão. A
// confirmação não faz nenhuma verificação independente de que o dinheiro
// entrou; essa fronteira de confiança é delegada ao operador.
type ManualProvider struct {
	checkoutURL    string
	whatsAppNumber string
}

// NewManualProvider cria o provider com a URL fixa do checkout e o número
// de suporte no WhatsApp.
func NewManualProvider(checkoutURL, whatsAppNumber string) *ManualProvider {
	return &ManualProvider{
		checkoutURL:    checkoutURL,
		whatsAppNumber: whatsAppNumber,
	}
}

// Begin não chama gateway nenhum: devolve a URL do checkout e um link de
// contato no WhatsApp com o id da inscrição embutido na mensagem. Não há
// referência de pagamento a persistir nesta variante.
func (p *ManualProvider) Begin(_ context.Context, sub *models.Subscription) (*Handle, string, error) {
	msg := url.QueryEscape(fmt.Sprintf("Olá! Acabei de me inscrever na mentoria. Minha inscrição é %s.", sub.ID))
	handle := &Handle{
		CheckoutURL: p.checkoutURL,
		SupportURL:  fmt.Sprintf("https://wa.me/%s?text=%s", p.whatsAppNumber, msg),
	}
	return handle, "", nil
}

// Confirm aceita o id da inscrição vindo da ação do operador e o devolve
// com a referência sentinela, incondicionalmente.
func (p *ManualProvider) Confirm(_ context.Context, reference string) (string, string, error) {
	return reference, ManualReference, nil
}
