package events

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

type Message struct {
	RoutingKey string
	Body       []byte
}

// Recorder keeps sent events in memory.
type Recorder struct {
	Messages []Message
}

func (r *Recorder) Send(ctx context.Context, routingKey string, body []byte) error {
	cp := make([]byte, len(body))
	copy(cp, body)
	r.Messages = append(r.Messages, Message{RoutingKey: routingKey, Body: cp})
	return nil
}

// LogTransport writes events to the logger at debug level.
type LogTransport struct {
	logger *zap.Logger
}

func NewLogTransport(logger *zap.Logger) *LogTransport {
	return &LogTransport{logger: logging.OrNop(logger)}
}

func (t *LogTransport) Send(ctx context.Context, routingKey string, body []byte) error {
	t.logger.Debug("event", zap.String("routingKey", routingKey), zap.ByteString("body", body))
	return nil
}

func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

// RabbitTransport publishes persistent JSON messages to the events exchange.
type RabbitTransport struct {
	ch channel
}

func NewRabbitTransport(conn *amqp.Connection) (*RabbitTransport, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	t, err := newRabbitTransport(ch)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	return t, nil
}

func newRabbitTransport(ch channel) (*RabbitTransport, error) {
	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}
	return &RabbitTransport{ch: ch}, nil
}

func (t *RabbitTransport) Close() error {
	return t.ch.Close()
}

func (t *RabbitTransport) Send(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return t.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
