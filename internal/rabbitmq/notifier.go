package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/mentoriapro/inscricoes/internal/models"
)

// ConfirmationPublisher publica eventos de confirmação de pagamento no
// exchange de notificações.
type ConfirmationPublisher struct {
	ch *amqp.Channel
}

// NewConfirmationPublisher cria o publisher sobre um canal já configurado.
func NewConfirmationPublisher(ch *amqp.Channel) *ConfirmationPublisher {
	return &ConfirmationPublisher{ch: ch}
}

// PublishConfirmation publica o evento para a fila do notificador.
func (p *ConfirmationPublisher) PublishConfirmation(event models.ConfirmationEvent) error {
	return PublishMessage(p.ch, NotificationsExchange, ConfirmedRoutingKey, event)
}
