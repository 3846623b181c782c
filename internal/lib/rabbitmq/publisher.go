package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// ExchangeNotifications é o exchange direct usado pelas notificações.
const ExchangeNotifications = "notifications"

// Publisher amarra um canal AMQP ao exchange de notificações.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher cria um Publisher sobre o canal informado.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// Publish publica a mensagem no exchange de notificações.
func (p *Publisher) Publish(routingKey string, message any) error {
	return PublishMessage(p.ch, ExchangeNotifications, routingKey, message)
}

// PublishMessage serializa a mensagem em JSON e publica no exchange com
// a routing key informada, em modo persistente.
func PublishMessage(ch *amqp.Channel, exchange string, routingkey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingkey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
