package shop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var ErrItemNotFound = errors.New("item not found in cart")

type CartItem struct {
	Product  *Product
	quantity int
}

func (i *CartItem) Quantity() int { return i.quantity }

func (i *CartItem) SetQuantity(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	i.quantity = quantity
	return nil
}

func (i *CartItem) Total() Money {
	return i.Product.Price().times(i.quantity)
}

func (i *CartItem) Info() string {
	return fmt.Sprintf("%s x%d = %s", i.Product.Name, i.quantity, i.Total())
}

// Cart holds at most one line per product.
type Cart struct {
	ID         string
	CustomerID string

	items []*CartItem
}

func NewCart(customerID string) *Cart {
	return &Cart{
		ID:         uuid.NewString(),
		CustomerID: customerID,
	}
}

// Add merges quantities when the product is already in the cart. The merged
// quantity may not exceed the product's stock.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !p.InStock() {
		return fmt.Errorf("%s: %w", p.Name, ErrOutOfStock)
	}

	existing := c.find(p.ID)
	inCart := 0
	if existing != nil {
		inCart = existing.quantity
	}
	if inCart+quantity > p.Stock() {
		return fmt.Errorf("%s: requested %d, available %d: %w", p.Name, inCart+quantity, p.Stock(), ErrInsufficientStock)
	}

	if existing != nil {
		existing.quantity += quantity
		return nil
	}
	c.items = append(c.items, &CartItem{Product: p, quantity: quantity})
	return nil
}

func (c *Cart) Remove(productID string) error {
	for i, it := range c.items {
		if it.Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	it := c.find(productID)
	if it == nil {
		return ErrItemNotFound
	}
	return it.SetQuantity(quantity)
}

// Items returns a copy of the cart lines.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, *it)
	}
	return out
}

func (c *Cart) ItemCount() int {
	n := 0
	for _, it := range c.items {
		n += it.quantity
	}
	return n
}

func (c *Cart) Total() (Money, error) {
	totals := make([]Money, 0, len(c.items))
	for _, it := range c.items {
		totals = append(totals, it.Total())
	}
	return sum(c.currency(), totals...)
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Summary() string {
	if len(c.items) == 0 {
		return "🛒 Cart is empty"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛒 Shopping Cart (%d items):\n", c.ItemCount())
	for i, it := range c.items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it.Info())
	}
	total, err := c.Total()
	if err != nil {
		fmt.Fprintf(&b, "Total: unavailable (%v)", err)
		return b.String()
	}
	fmt.Fprintf(&b, "Total: %s", total)
	return b.String()
}

func (c *Cart) find(productID string) *CartItem {
	for _, it := range c.items {
		if it.Product.ID == productID {
			return it
		}
	}
	return nil
}

func (c *Cart) currency() string {
	if len(c.items) == 0 {
		return DefaultCurrency
	}
	return c.items[0].Product.Price().Currency()
}
