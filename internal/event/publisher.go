package event

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func encode(eventType string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(message{Type: eventType, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}
	return body, nil
}

// channelI is the part of *amqp.Channel the publisher uses.
type channelI interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends JSON events to a topic exchange, routed by event type.
type Publisher struct {
	conn     *amqp.Connection
	channel  channelI
	exchange string
	log      *zap.Logger
}

func NewPublisher(amqpURL, exchange string, log *zap.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange, log: log}, nil
}

func (p *Publisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	body, err := encode(eventType, payload)
	if err != nil {
		return err
	}

	p.log.Debug("publishing event", zap.String("type", eventType), zap.String("exchange", p.exchange))

	return p.channel.PublishWithContext(ctx, p.exchange, eventType, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Nop drops every event. Used when no broker is configured.
type Nop struct {
	log *zap.Logger
}

func NewNop(log *zap.Logger) *Nop {
	return &Nop{log: log}
}

func (n *Nop) Publish(_ context.Context, eventType string, payload interface{}) error {
	n.log.Debug("event dropped, no broker configured", zap.String("type", eventType), zap.Any("payload", payload))
	return nil
}

func (n *Nop) Close() {}
