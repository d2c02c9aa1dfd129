package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jasperayawan/oop-showcase-go/internal/sequence"
	"github.com/jasperayawan/oop-showcase-go/internal/shop"
)

// Transport delivers an encoded event under a routing key.
type Transport interface {
	Send(ctx context.Context, routingKey string, body []byte) error
}

// Publisher turns shop order changes into enveloped events. Sequences are
// per order, so consumers can order the events of a single order.
type Publisher struct {
	transport Transport
	seq       *sequence.Counter
	producer  string
	now       func() time.Time
}

func NewPublisher(t Transport, producer string) *Publisher {
	if producer == "" {
		producer = "oop-showcase"
	}
	return &Publisher{
		transport: t,
		seq:       sequence.NewCounter(),
		producer:  producer,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Close closes the transport when it holds resources.
func (p *Publisher) Close() error {
	if c, ok := p.transport.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, o *shop.Order) error {
	timestamp := p.now()

	payload := OrderCreatedPayload{
		OrderID:     o.ID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.Total().Amount(),
		Currency:    o.Total().Currency(),
		Timestamp:   timestamp,
	}
	for _, l := range o.Lines() {
		payload.Items = append(payload.Items, OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Amount(),
		})
	}

	meta := EventMeta{CorrelationID: uuid.NewString(), PartitionKey: o.ID}
	seq, err := p.seq.NextSequence(ctx, meta.PartitionKey)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	env := newOrderCreatedEvent(meta, seq, p.producer, payload, timestamp)
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal OrderCreated envelope: %w", err)
	}
	return p.transport.Send(ctx, OrderCreatedRoutingKey, body)
}

func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, o *shop.Order, from shop.Status) error {
	timestamp := p.now()

	payload := OrderStatusChangedPayload{
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		From:       string(from),
		To:         string(o.Status()),
		Timestamp:  timestamp,
	}

	meta := EventMeta{CorrelationID: uuid.NewString(), PartitionKey: o.ID}
	seq, err := p.seq.NextSequence(ctx, meta.PartitionKey)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}

	env := newOrderStatusChangedEvent(meta, seq, p.producer, payload, timestamp)
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged envelope: %w", err)
	}
	return p.transport.Send(ctx, OrderStatusChangedRoutingKey, body)
}

func newOrderCreatedEvent(meta EventMeta, seq int64, producer string, payload OrderCreatedPayload, occurredAt time.Time) OrderCreatedEvent {
	return OrderCreatedEvent{
		EventName:     EventTypeOrderCreated,
		EventVersion:  1,
		EventID:       uuid.NewString(),
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
		Producer:      producer,
		PartitionKey:  meta.PartitionKey,
		Sequence:      seq,
		OccurredAt:    occurredAt,
		Schema:        orderCreatedSchema,
		Payload:       payload,
	}
}

func newOrderStatusChangedEvent(meta EventMeta, seq int64, producer string, payload OrderStatusChangedPayload, occurredAt time.Time) OrderStatusChangedEvent {
	return OrderStatusChangedEvent{
		EventName:     EventTypeOrderStatusChanged,
		EventVersion:  1,
		EventID:       uuid.NewString(),
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
		Producer:      producer,
		PartitionKey:  meta.PartitionKey,
		Sequence:      seq,
		OccurredAt:    occurredAt,
		Schema:        orderStatusChangedSchema,
		Payload:       payload,
	}
}
