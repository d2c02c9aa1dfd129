package events

import "time"

const (
	EventTypeOrderCreated       = "OrderCreated"
	EventTypeOrderStatusChanged = "OrderStatusChanged"

	orderCreatedSchema       = "showcase.shop.OrderCreated.v1"
	orderStatusChangedSchema = "showcase.shop.OrderStatusChanged.v1"
)

type OrderLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

type OrderCreatedPayload struct {
	OrderID     string      `json:"orderId"`
	CustomerID  string      `json:"customerId"`
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
	Currency    string      `json:"currency"`
	Timestamp   time.Time   `json:"timestamp"`
}

type OrderStatusChangedPayload struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Timestamp  time.Time `json:"timestamp"`
}

type OrderCreatedEvent = EventEnvelope[OrderCreatedPayload]
type OrderStatusChangedEvent = EventEnvelope[OrderStatusChangedPayload]
