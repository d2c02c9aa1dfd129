package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/events"
	"github.com/jasperayawan/oop-showcase-go/internal/shop"
)

// newTransport publishes to RabbitMQ when a broker is configured and to the
// debug log otherwise.
func (a *app) newTransport() (events.Transport, error) {
	if a.cfg.RabbitMQURL == "" {
		return events.NewLogTransport(a.logger), nil
	}
	conn, err := events.Dial(a.cfg.RabbitMQURL)
	if err != nil {
		return nil, err
	}
	t, err := events.NewRabbitTransport(conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	a.logger.Info("publishing order events", zap.String("exchange", events.EventsExchange))
	return &rabbitConn{RabbitTransport: t, closeConn: conn.Close}, nil
}

// rabbitConn closes the connection after the channel.
type rabbitConn struct {
	*events.RabbitTransport
	closeConn func() error
}

func (c *rabbitConn) Close() error {
	err := c.RabbitTransport.Close()
	if cerr := c.closeConn(); err == nil {
		err = cerr
	}
	return err
}

type cartLine struct {
	productID string
	qty       int
}

func (a *app) runShop(w io.Writer) error {
	ctx := context.Background()
	fmt.Fprintln(w, "=== E-COMMERCE SYSTEM ===")

	transport, err := a.newTransport()
	if err != nil {
		return err
	}
	pub := events.NewPublisher(transport, a.cfg.EventsProducer)
	defer func() {
		if err := pub.Close(); err != nil {
			a.logger.Warn("close event publisher", zap.Error(err))
		}
	}()

	store := shop.NewStore(pub, a.logger)
	products, err := shop.DefaultCatalog(a.cfg.DefaultCurrency)
	if err != nil {
		return err
	}
	for _, p := range products {
		if err := store.AddProduct(p); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Added product: %s\n", p.Name)
	}

	customers := []*shop.Customer{
		shop.NewCustomer("C001", "John Doe", "john@email.com", "123 Main St"),
		shop.NewCustomer("C002", "Jane Smith", "jane@email.com", "456 Oak Ave"),
	}
	for _, c := range customers {
		if err := store.AddCustomer(c); err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Added customer: %s\n", c.Name)
	}

	plans := []struct {
		title    string
		customer *shop.Customer
		lines    []cartLine
		statuses []shop.Status
	}{
		{"CUSTOMER 1 SHOPPING", customers[0], []cartLine{{"P001", 1}, {"P002", 2}, {"P003", 1}}, []shop.Status{shop.StatusConfirmed, shop.StatusShipped}},
		{"CUSTOMER 2 SHOPPING", customers[1], []cartLine{{"P004", 1}, {"P002", 1}}, []shop.Status{shop.StatusConfirmed}},
	}

	var orders []*shop.Order
	for _, plan := range plans {
		heading(w, plan.title)
		for _, l := range plan.lines {
			p, ok := store.Product(l.productID)
			if !ok {
				return fmt.Errorf("product %s missing from catalog", l.productID)
			}
			if err := plan.customer.AddToCart(p, l.qty); err != nil {
				fmt.Fprintf(w, "❌ %v\n", err)
				continue
			}
			fmt.Fprintf(w, "🛒 Added %d x %s to cart\n", l.qty, p.Name)
		}
		fmt.Fprintln(w, plan.customer.Cart().Summary())

		o, err := store.CreateOrder(ctx, plan.customer.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "✅ Order %s created for %s\n", o.ID, plan.customer.Name)
		for _, s := range plan.statuses {
			if err := store.UpdateOrderStatus(ctx, o.ID, s); err != nil {
				return err
			}
			fmt.Fprintf(w, "📦 Order %s status updated to: %s\n", o.ID, s)
		}
		orders = append(orders, o)
	}

	heading(w, "ORDER DETAILS")
	for i, o := range orders {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, o.Info())
	}

	heading(w, "PRODUCT SEARCH")
	for _, p := range store.Search("electronics") {
		fmt.Fprintln(w, p.Info())
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, stats)
	return nil
}
