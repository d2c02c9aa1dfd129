package shop

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidStatus = errors.New("invalid order status")

// Line is an order line priced at the moment the order was placed.
type Line struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice Money
}

func (l Line) Total() Money {
	return l.UnitPrice.times(l.Quantity)
}

func (l Line) Info() string {
	return fmt.Sprintf("%s x%d = %s", l.Name, l.Quantity, l.Total())
}

type Order struct {
	ID         string
	CustomerID string
	CreatedAt  time.Time

	lines  []Line
	total  Money
	status Status
}

func newOrder(id, customerID string, items []CartItem, createdAt time.Time) (*Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lines := make([]Line, 0, len(items))
	totals := make([]Money, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Quantity:  it.Quantity(),
			UnitPrice: it.Product.Price(),
		})
		totals = append(totals, it.Total())
	}

	total, err := sum(lines[0].UnitPrice.Currency(), totals...)
	if err != nil {
		return nil, fmt.Errorf("order total: %w", err)
	}

	return &Order{
		ID:         id,
		CustomerID: customerID,
		CreatedAt:  createdAt,
		lines:      lines,
		total:      total,
		status:     StatusPending,
	}, nil
}

func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

func (o *Order) Total() Money   { return o.total }
func (o *Order) Status() Status { return o.status }

// UpdateStatus returns the previous status.
func (o *Order) UpdateStatus(status Status) (Status, error) {
	if !status.Valid() {
		return o.status, fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}
	prev := o.status
	o.status = status
	return prev, nil
}

func (o *Order) Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "📦 Order #%s (%s)\n", o.ID, o.status)
	fmt.Fprintf(&b, "Date: %s\n", o.CreatedAt.Format("2006-01-02"))
	b.WriteString("Items:\n")
	for i, l := range o.lines {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, l.Info())
	}
	fmt.Fprintf(&b, "Total: %s", o.total)
	return b.String()
}
