package shop

import (
	"errors"
	"fmt"
	"strings"
)

const DefaultCurrency = "USD"

var (
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrCurrencyMismatch  = errors.New("currencies do not match")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Money is an immutable amount in a single currency.
type Money struct {
	amount   float64
	currency string
}

func NewMoney(amount float64, currency string) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// Zero returns a zero amount in currency (DefaultCurrency when empty).
func Zero(currency string) Money {
	m, _ := NewMoney(0, currency)
	return m
}

func (m Money) Amount() float64  { return m.amount }
func (m Money) Currency() string { return m.currency }

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("add %s to %s: %w", other.currency, m.currency, ErrCurrencyMismatch)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("subtract %s from %s: %w", other.currency, m.currency, ErrCurrencyMismatch)
	}
	if m.amount < other.amount {
		return Money{}, ErrInsufficientFunds
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

func (m Money) Mul(factor float64) (Money, error) {
	return NewMoney(m.amount*factor, m.currency)
}

func (m Money) times(n int) Money {
	return Money{amount: m.amount * float64(n), currency: m.currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%s %.2f", m.currency, m.amount)
}

func sum(currency string, values ...Money) (Money, error) {
	total := Zero(currency)
	for _, v := range values {
		var err error
		if total, err = total.Add(v); err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
