package rabbitmq

// QueueConfig descreve uma fila e sua routing key no exchange de
// notificações.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Routing keys publicadas pelo serviço HTTP.
const (
	RoutingKeyUserRegistered     = "user.registered"
	RoutingKeySubscriptionStatus = "subscription.updated"
)

// GetNotificationQueues devolve as filas consumidas pelo
// notification-sender.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "user_registered_queue", RoutingKey: RoutingKeyUserRegistered},
		{QueueName: "subscription_status_queue", RoutingKey: RoutingKeySubscriptionStatus},
	}
}
