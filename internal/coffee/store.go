package coffee

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

var (
	ErrNotFound   = errors.New("coffee not found")
	ErrOutOfStock = errors.New("coffee is out of stock")
)

// Store has an owner and an ordered menu of coffees.
type Store struct {
	Owner    *Owner
	Name     string
	Location string

	coffees []*Coffee
	revenue float64
	logger  *zap.Logger
}

func NewStore(owner *Owner, name, location string, logger *zap.Logger) *Store {
	return &Store{
		Owner:    owner,
		Name:     name,
		Location: location,
		logger:   logging.OrNop(logger),
	}
}

func (s *Store) Revenue() float64 { return s.revenue }

func (s *Store) Coffees() []*Coffee {
	out := make([]*Coffee, len(s.coffees))
	copy(out, s.coffees)
	return out
}

func (s *Store) AddCoffee(c *Coffee) {
	s.coffees = append(s.coffees, c)
	s.logger.Debug("coffee added", zap.String("store", s.Name), zap.String("coffee", c.Name))
}

// RemoveCoffee matches the exact name.
func (s *Store) RemoveCoffee(name string) bool {
	for i, c := range s.coffees {
		if c.Name == name {
			s.coffees = append(s.coffees[:i], s.coffees[i+1:]...)
			s.logger.Debug("coffee removed", zap.String("store", s.Name), zap.String("coffee", name))
			return true
		}
	}
	return false
}

// FindCoffee returns the first coffee whose name contains query, ignoring case.
func (s *Store) FindCoffee(query string) (*Coffee, bool) {
	q := strings.ToLower(query)
	for _, c := range s.coffees {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return c, true
		}
	}
	return nil, false
}

func (s *Store) AvailableCoffees() []*Coffee {
	var out []*Coffee
	for _, c := range s.coffees {
		if c.InStock() {
			out = append(out, c)
		}
	}
	return out
}

// Sell returns the sale amount. On failure neither stock nor revenue changes.
func (s *Store) Sell(name string, quantity int) (float64, error) {
	c, ok := s.FindCoffee(name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if !c.InStock() {
		return 0, fmt.Errorf("%s: %w", c.Name, ErrOutOfStock)
	}
	if err := c.ReduceStock(quantity); err != nil {
		return 0, err
	}

	amount := c.Price() * float64(quantity)
	s.revenue += amount
	s.logger.Debug("coffee sold",
		zap.String("coffee", c.Name),
		zap.Int("quantity", quantity),
		zap.Float64("amount", amount),
	)
	return amount, nil
}

func (s *Store) Menu() []string {
	if len(s.coffees) == 0 {
		return []string{"No coffees available"}
	}
	lines := make([]string, 0, len(s.coffees))
	for i, c := range s.coffees {
		status := "❌"
		if c.InStock() {
			status = "✅"
		}
		lines = append(lines, fmt.Sprintf("%d. %s %s", i+1, status, c.Details()))
	}
	return lines
}

func (s *Store) Info() string {
	return fmt.Sprintf(`🏪 %s
📍 Location: %s
👤 Owner: %s
☕ Coffee Varieties: %d
💰 Total Revenue: $%.2f`, s.Name, s.Location, s.Owner.Name, len(s.coffees), s.revenue)
}
