package shop

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeStock     = errors.New("stock cannot be negative")
	ErrNegativeQuantity  = errors.New("quantity cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOutOfStock        = errors.New("product is out of stock")
)

type Product struct {
	ID          string
	Name        string
	Description string
	Category    string

	price Money
	stock int
}

func NewProduct(id, name, description string, price Money, stock int, category string) (*Product, error) {
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Category:    category,
		price:       price,
		stock:       stock,
	}, nil
}

func (p *Product) Price() Money         { return p.price }
func (p *Product) SetPrice(price Money) { p.price = price }
func (p *Product) Stock() int           { return p.stock }
func (p *Product) InStock() bool        { return p.stock > 0 }

func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	p.stock = stock
	return nil
}

func (p *Product) AddStock(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	p.stock += quantity
	return nil
}

// ReduceStock leaves stock untouched when quantity exceeds it.
func (p *Product) ReduceStock(quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity > p.stock {
		return fmt.Errorf("%s: requested %d, available %d: %w", p.Name, quantity, p.stock, ErrInsufficientStock)
	}
	p.stock -= quantity
	return nil
}

func (p *Product) Info() string {
	return fmt.Sprintf("%s - %s (Stock: %d)", p.Name, p.price, p.stock)
}
