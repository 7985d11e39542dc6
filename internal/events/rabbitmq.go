package events

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher публикует события в topic exchange RabbitMQ.
// Routing key: url.<событие в нижнем регистре>, например url.created.
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  amqpChannel
	exchange string
	now      func() time.Time
	mu       sync.Mutex
}

// NewRabbitPublisher подключается к брокеру и объявляет durable exchange
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	p := newRabbitPublisher(ch, exchange)
	p.conn = conn

	return p, nil
}

func newRabbitPublisher(channel amqpChannel, exchange string) *RabbitPublisher {
	return &RabbitPublisher{
		channel:  channel,
		exchange: exchange,
		now:      time.Now,
	}
}

func (p *RabbitPublisher) Publish(ctx context.Context, name string, payload map[string]any) error {
	occurredAt := p.now()

	data, err := Encode(name, payload, occurredAt)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    occurredAt,
		Type:         name,
		MessageId:    uuid.NewString(),
		Headers:      amqp.Table{FieldShortCode: string(partitionKey(payload))},
		Body:         data,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx, p.exchange, RoutingKey(name), false, false, msg); err != nil {
		return fmt.Errorf("failed to publish event %s to rabbitmq: %w", name, err)
	}

	return nil
}

func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}

	return err
}

// RoutingKey возвращает routing key для события
func RoutingKey(name string) string {
	return "url." + strings.ToLower(name)
}
