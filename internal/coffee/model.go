package coffee

import (
	"errors"
	"fmt"
)

type RoastLevel string

const (
	RoastLight  RoastLevel = "light"
	RoastMedium RoastLevel = "medium"
	RoastDark   RoastLevel = "dark"
)

var (
	ErrNegativePrice     = errors.New("price cannot be negative")
	ErrNegativeStock     = errors.New("stock cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownRoast      = errors.New("unknown roast level")
)

func ParseRoast(s string) (RoastLevel, error) {
	switch r := RoastLevel(s); r {
	case RoastLight, RoastMedium, RoastDark:
		return r, nil
	case "":
		return RoastMedium, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownRoast)
}

type Coffee struct {
	Name   string
	Origin string
	Roast  RoastLevel

	price float64
	stock int
}

// New defaults an empty roast to medium.
func New(name string, price float64, origin string, roast RoastLevel, stock int) (*Coffee, error) {
	if price < 0 {
		return nil, ErrNegativePrice
	}
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if roast == "" {
		roast = RoastMedium
	}
	return &Coffee{Name: name, Origin: origin, Roast: roast, price: price, stock: stock}, nil
}

func (c *Coffee) Price() float64 { return c.price }
func (c *Coffee) Stock() int     { return c.stock }
func (c *Coffee) InStock() bool  { return c.stock > 0 }

func (c *Coffee) SetPrice(price float64) error {
	if price < 0 {
		return ErrNegativePrice
	}
	c.price = price
	return nil
}

func (c *Coffee) SetStock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	c.stock = stock
	return nil
}

func (c *Coffee) AddStock(amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	c.stock += amount
	return nil
}

func (c *Coffee) ReduceStock(amount int) error {
	if amount <= 0 {
		return ErrInvalidQuantity
	}
	if c.stock < amount {
		return fmt.Errorf("only %d units of %s available: %w", c.stock, c.Name, ErrInsufficientStock)
	}
	c.stock -= amount
	return nil
}

func (c *Coffee) Details() string {
	return fmt.Sprintf("%s from %s (%s roast) - $%.2f (Stock: %d)", c.Name, c.Origin, c.Roast, c.price, c.stock)
}

type Owner struct {
	Name       string
	Experience int // years
}

func (o *Owner) AddExperience(years int) {
	if years > 0 {
		o.Experience += years
	}
}

func (o *Owner) Introduce() string {
	return fmt.Sprintf("👋 Hi! I'm %s, owner with %d years of coffee experience", o.Name, o.Experience)
}
