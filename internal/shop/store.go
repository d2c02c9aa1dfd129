package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
	"github.com/jasperayawan/oop-showcase-go/internal/sequence"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrDuplicateID      = errors.New("duplicate id")
)

const orderSequenceKey = "orders"

// EventPublisher is notified after order state changes.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, o *Order) error
	PublishOrderStatusChanged(ctx context.Context, o *Order, from Status) error
}

type noopPublisher struct{}

func (noopPublisher) PublishOrderCreated(context.Context, *Order) error { return nil }
func (noopPublisher) PublishOrderStatusChanged(context.Context, *Order, Status) error {
	return nil
}

type Store struct {
	products  []*Product
	customers []*Customer
	orders    []*Order

	seq       *sequence.Counter
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewStore(publisher EventPublisher, logger *zap.Logger) *Store {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &Store{
		seq:       sequence.NewCounter(),
		publisher: publisher,
		logger:    logging.OrNop(logger),
		now:       time.Now,
	}
}

func (s *Store) AddProduct(p *Product) error {
	if _, ok := s.Product(p.ID); ok {
		return fmt.Errorf("product %s: %w", p.ID, ErrDuplicateID)
	}
	s.products = append(s.products, p)
	s.logger.Debug("product added", zap.String("productId", p.ID), zap.Int("stock", p.Stock()))
	return nil
}

func (s *Store) AddCustomer(c *Customer) error {
	if _, ok := s.Customer(c.ID); ok {
		return fmt.Errorf("customer %s: %w", c.ID, ErrDuplicateID)
	}
	s.customers = append(s.customers, c)
	s.logger.Debug("customer added", zap.String("customerId", c.ID))
	return nil
}

func (s *Store) Product(id string) (*Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (s *Store) Customer(id string) (*Customer, bool) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

func (s *Store) Order(id string) (*Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return nil, false
}

// Search matches name, description or category, case-insensitively.
func (s *Store) Search(query string) []*Product {
	q := strings.ToLower(query)
	var out []*Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

// CreateOrder checks every cart line against stock before touching anything,
// so a failed order leaves stock and cart unchanged.
func (s *Store) CreateOrder(ctx context.Context, customerID string) (*Order, error) {
	c, ok := s.Customer(customerID)
	if !ok {
		return nil, fmt.Errorf("%s: %w", customerID, ErrCustomerNotFound)
	}

	cart := c.Cart()
	if cart.ItemCount() == 0 {
		return nil, ErrEmptyCart
	}

	items := cart.Items()
	for _, it := range items {
		if it.Quantity() > it.Product.Stock() {
			return nil, fmt.Errorf("insufficient stock for %s: %w", it.Product.Name, ErrInsufficientStock)
		}
	}

	o, err := newOrder("", customerID, items, s.now())
	if err != nil {
		return nil, err
	}

	n, err := s.seq.NextSequence(ctx, orderSequenceKey)
	if err != nil {
		return nil, fmt.Errorf("order id: %w", err)
	}
	o.ID = fmt.Sprintf("ORD-%06d", n)

	for _, it := range items {
		// checked above
		_ = it.Product.ReduceStock(it.Quantity())
	}
	s.orders = append(s.orders, o)
	c.orders = append(c.orders, o)
	cart.Clear()

	s.logger.Debug("order created",
		zap.String("orderId", o.ID),
		zap.String("customerId", customerID),
		zap.Stringer("total", o.Total()),
	)
	if err := s.publisher.PublishOrderCreated(ctx, o); err != nil {
		s.logger.Warn("publish order created", zap.String("orderId", o.ID), zap.Error(err))
	}
	return o, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, orderID string, status Status) error {
	o, ok := s.Order(orderID)
	if !ok {
		return fmt.Errorf("%s: %w", orderID, ErrOrderNotFound)
	}

	prev, err := o.UpdateStatus(status)
	if err != nil {
		return err
	}

	s.logger.Debug("order status updated",
		zap.String("orderId", o.ID),
		zap.String("from", string(prev)),
		zap.String("to", string(status)),
	)
	if err := s.publisher.PublishOrderStatusChanged(ctx, o, prev); err != nil {
		s.logger.Warn("publish order status changed", zap.String("orderId", o.ID), zap.Error(err))
	}
	return nil
}

type Stats struct {
	Products  int
	Customers int
	Orders    int
	Revenue   Money
}

func (s Stats) String() string {
	return fmt.Sprintf(`📊 E-COMMERCE STORE STATISTICS:
- Total Products: %d
- Total Customers: %d
- Total Orders: %d
- Total Revenue: %s`, s.Products, s.Customers, s.Orders, s.Revenue)
}

func (s *Store) Stats() (Stats, error) {
	currency := DefaultCurrency
	totals := make([]Money, 0, len(s.orders))
	for _, o := range s.orders {
		totals = append(totals, o.Total())
	}
	if len(totals) > 0 {
		currency = totals[0].Currency()
	}

	revenue, err := sum(currency, totals...)
	if err != nil {
		return Stats{}, fmt.Errorf("revenue: %w", err)
	}
	return Stats{
		Products:  len(s.products),
		Customers: len(s.customers),
		Orders:    len(s.orders),
		Revenue:   revenue,
	}, nil
}
