package bank

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusActive Status = "active"
	StatusFrozen Status = "frozen"
	StatusClosed Status = "closed"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrAccountInactive   = errors.New("account not active")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAccountClosed     = errors.New("account is closed")
	ErrNonZeroBalance    = errors.New("account balance must be zero to close")
)

type Account struct {
	Number string

	balance float64
	status  Status
}

func (a *Account) Balance() float64 { return a.balance }
func (a *Account) Status() Status   { return a.status }

func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit %.2f: %w", amount, ErrInvalidAmount)
	}
	if a.status != StatusActive {
		return fmt.Errorf("deposit to %s (%s): %w", a.Number, a.status, ErrAccountInactive)
	}
	a.balance += amount
	return nil
}

// Withdraw leaves the balance untouched on any failure.
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("withdraw %.2f: %w", amount, ErrInvalidAmount)
	}
	if a.status != StatusActive {
		return fmt.Errorf("withdraw from %s (%s): %w", a.Number, a.status, ErrAccountInactive)
	}
	if amount > a.balance {
		return fmt.Errorf("withdraw %.2f of %.2f: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance -= amount
	return nil
}

func (a *Account) Freeze() error {
	if a.status == StatusClosed {
		return ErrAccountClosed
	}
	a.status = StatusFrozen
	return nil
}

func (a *Account) Activate() error {
	if a.status == StatusClosed {
		return ErrAccountClosed
	}
	a.status = StatusActive
	return nil
}

func (a *Account) Close() error {
	if a.balance != 0 {
		return ErrNonZeroBalance
	}
	a.status = StatusClosed
	return nil
}
