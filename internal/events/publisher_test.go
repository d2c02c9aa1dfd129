package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"

	"github.com/jasperayawan/oop-showcase-go/internal/shop"
)

func placeOrder(t *testing.T, pub shop.EventPublisher) (*shop.Store, *shop.Order) {
	t.Helper()
	s := shop.NewStore(pub, nil)

	price, err := shop.NewMoney(12.5, "USD")
	require.NoError(t, err)
	p, err := shop.NewProduct("P001", "Mug", "Coffee mug", price, 5, "Kitchen")
	require.NoError(t, err)
	require.NoError(t, s.AddProduct(p))

	c := shop.NewCustomer("C001", "Jane", "jane@email.com", "456 Oak Ave")
	require.NoError(t, s.AddCustomer(c))
	require.NoError(t, c.AddToCart(p, 2))

	o, err := s.CreateOrder(context.Background(), c.ID)
	require.NoError(t, err)
	return s, o
}

func TestPublisherOrderCreated(t *testing.T) {
	rec := &Recorder{}
	pub := NewPublisher(rec, "")
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return now }

	_, o := placeOrder(t, pub)

	require.Len(t, rec.Messages, 1)
	require.Equal(t, OrderCreatedRoutingKey, rec.Messages[0].RoutingKey)

	var ev OrderCreatedEvent
	require.NoError(t, json.Unmarshal(rec.Messages[0].Body, &ev))
	require.NoError(t, ev.Validate(EventTypeOrderCreated, 1))
	require.Equal(t, "oop-showcase", ev.Producer)
	require.Equal(t, o.ID, ev.PartitionKey)
	require.Equal(t, int64(1), ev.Sequence)
	require.Equal(t, orderCreatedSchema, ev.Schema)
	require.NotEmpty(t, ev.CorrelationID)

	want := OrderCreatedPayload{
		OrderID:     o.ID,
		CustomerID:  "C001",
		Items:       []OrderLine{{ProductID: "P001", Name: "Mug", Quantity: 2, UnitPrice: 12.5}},
		TotalAmount: 25,
		Currency:    "USD",
		Timestamp:   now,
	}
	if diff := cmp.Diff(want, ev.Payload, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestPublisherStatusChangedSequencesPerOrder(t *testing.T) {
	rec := &Recorder{}
	pub := NewPublisher(rec, "test-producer")
	s, o := placeOrder(t, pub)
	ctx := context.Background()

	require.NoError(t, s.UpdateOrderStatus(ctx, o.ID, shop.StatusConfirmed))
	require.NoError(t, s.UpdateOrderStatus(ctx, o.ID, shop.StatusShipped))
	require.Len(t, rec.Messages, 3)

	var seqs []int64
	var transitions [][2]string
	for _, m := range rec.Messages[1:] {
		require.Equal(t, OrderStatusChangedRoutingKey, m.RoutingKey)
		var ev OrderStatusChangedEvent
		require.NoError(t, json.Unmarshal(m.Body, &ev))
		require.NoError(t, ev.Validate(EventTypeOrderStatusChanged, 1))
		require.Equal(t, "test-producer", ev.Producer)
		seqs = append(seqs, ev.Sequence)
		transitions = append(transitions, [2]string{ev.Payload.From, ev.Payload.To})
	}

	require.Equal(t, []int64{2, 3}, seqs)
	require.Equal(t, [][2]string{{"pending", "confirmed"}, {"confirmed", "shipped"}}, transitions)
}

func TestEnvelopeValidate(t *testing.T) {
	meta := EventMeta{CorrelationID: "c", PartitionKey: "ORD-000001"}
	ev := newOrderCreatedEvent(meta, 1, "p", OrderCreatedPayload{OrderID: "ORD-000001"}, time.Now())
	require.NoError(t, ev.Validate(EventTypeOrderCreated, 1))

	require.Error(t, ev.Validate(EventTypeOrderStatusChanged, 1))
	require.Error(t, ev.Validate(EventTypeOrderCreated, 2))

	ev.PartitionKey = ""
	require.Error(t, ev.Validate(EventTypeOrderCreated, 1))
	ev.PartitionKey = "ORD-000001"
	ev.EventID = ""
	require.Error(t, ev.Validate(EventTypeOrderCreated, 1))
}

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	declareErr error
	publishErr error
	closed     bool
}

func (c *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	c.declared = append(c.declared, name+"/"+kind)
	return c.declareErr
}

func (c *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	c.published = append(c.published, published{exchange: exchange, key: key, msg: msg})
	return c.publishErr
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func TestRabbitTransport(t *testing.T) {
	ch := &fakeChannel{}
	tr, err := newRabbitTransport(ch)
	require.NoError(t, err)
	require.Equal(t, []string{"showcase.events/topic"}, ch.declared)

	pub := NewPublisher(tr, "")
	_, o := placeOrder(t, pub)

	require.Len(t, ch.published, 1)
	got := ch.published[0]
	require.Equal(t, EventsExchange, got.exchange)
	require.Equal(t, OrderCreatedRoutingKey, got.key)
	require.Equal(t, "application/json", got.msg.ContentType)
	require.Equal(t, amqp.Persistent, got.msg.DeliveryMode)

	var ev OrderCreatedEvent
	require.NoError(t, json.Unmarshal(got.msg.Body, &ev))
	require.Equal(t, o.ID, ev.Payload.OrderID)

	require.NoError(t, pub.Close())
	require.True(t, ch.closed)
}

func TestRabbitTransportErrors(t *testing.T) {
	_, err := newRabbitTransport(&fakeChannel{declareErr: errors.New("no exchange")})
	require.Error(t, err)

	ch := &fakeChannel{publishErr: errors.New("closed")}
	tr, err := newRabbitTransport(ch)
	require.NoError(t, err)
	require.Error(t, tr.Send(context.Background(), OrderCreatedRoutingKey, []byte(`{}`)))
}

func TestPublisherCloseWithoutCloser(t *testing.T) {
	require.NoError(t, NewPublisher(&Recorder{}, "").Close())
}
