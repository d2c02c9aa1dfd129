package shop

import "fmt"

// Customer owns exactly one cart for its lifetime.
type Customer struct {
	ID      string
	Name    string
	Email   string
	Address string

	cart   *Cart
	orders []*Order
}

func NewCustomer(id, name, email, address string) *Customer {
	return &Customer{
		ID:      id,
		Name:    name,
		Email:   email,
		Address: address,
		cart:    NewCart(id),
	}
}

func (c *Customer) Cart() *Cart { return c.cart }

func (c *Customer) AddToCart(p *Product, quantity int) error {
	return c.cart.Add(p, quantity)
}

func (c *Customer) Orders() []*Order {
	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

func (c *Customer) Info() string {
	return fmt.Sprintf("Customer: %s (%s) - Orders: %d", c.Name, c.Email, len(c.orders))
}
