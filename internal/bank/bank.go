package bank

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrSameAccount      = errors.New("cannot transfer to the same account")
)

type Bank struct {
	accounts []*Account
	logger   *zap.Logger
}

func New(logger *zap.Logger) *Bank {
	return &Bank{logger: logging.OrNop(logger)}
}

func (b *Bank) CreateAccount(number string, initialBalance float64) (*Account, error) {
	if initialBalance < 0 {
		return nil, fmt.Errorf("opening balance %.2f: %w", initialBalance, ErrInvalidAmount)
	}
	if _, ok := b.Account(number); ok {
		return nil, fmt.Errorf("%s: %w", number, ErrDuplicateAccount)
	}

	acc := &Account{Number: number, balance: initialBalance, status: StatusActive}
	b.accounts = append(b.accounts, acc)
	b.logger.Debug("account created", zap.String("account", number), zap.Float64("balance", initialBalance))
	return acc, nil
}

func (b *Bank) Account(number string) (*Account, bool) {
	for _, a := range b.accounts {
		if a.Number == number {
			return a, true
		}
	}
	return nil, false
}

// Transfer validates both sides before moving money.
func (b *Bank) Transfer(from, to string, amount float64) error {
	if from == to {
		return ErrSameAccount
	}
	src, ok := b.Account(from)
	if !ok {
		return fmt.Errorf("%s: %w", from, ErrAccountNotFound)
	}
	dst, ok := b.Account(to)
	if !ok {
		return fmt.Errorf("%s: %w", to, ErrAccountNotFound)
	}
	if dst.status != StatusActive {
		return fmt.Errorf("transfer to %s (%s): %w", to, dst.status, ErrAccountInactive)
	}

	if err := src.Withdraw(amount); err != nil {
		return err
	}
	// dst is active and amount is positive, so Deposit cannot fail
	_ = dst.Deposit(amount)

	b.logger.Debug("transfer",
		zap.String("from", from),
		zap.String("to", to),
		zap.Float64("amount", amount),
	)
	return nil
}

func (b *Bank) TotalDeposits() float64 {
	var total float64
	for _, a := range b.accounts {
		total += a.balance
	}
	return total
}

func (b *Bank) Accounts() []*Account {
	out := make([]*Account, len(b.accounts))
	copy(out, b.accounts)
	return out
}
