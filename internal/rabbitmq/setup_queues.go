package rabbitmq

// NotificationsExchange é o exchange direto por onde passam os eventos de
// confirmação de pagamento.
const NotificationsExchange = "notifications"

// ConfirmedQueue recebe os eventos de inscrição confirmada consumidos
// pelo serviço notificador.
const (
	ConfirmedQueue      = "subscription_confirmed_queue"
	ConfirmedRoutingKey = "confirmed"
)

// QueueConfig associa uma fila à sua routing key no exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetNotificationQueues lista as filas de notificação declaradas na subida.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: ConfirmedQueue, RoutingKey: ConfirmedRoutingKey},
	}
}
