package shop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(12.5, "")
	require.NoError(t, err)
	require.Equal(t, DefaultCurrency, m.Currency())
	require.Equal(t, "USD 12.50", m.String())

	_, err = NewMoney(-1, "USD")
	require.ErrorIs(t, err, ErrNegativeAmount)

	eur, err := NewMoney(3, " eur ")
	require.NoError(t, err)
	require.Equal(t, "EUR", eur.Currency())
}

func TestMoneyArithmetic(t *testing.T) {
	ten := mustMoney(t, 10, "USD")
	four := mustMoney(t, 4, "USD")
	eur := mustMoney(t, 1, "EUR")

	tests := map[string]struct {
		op      func() (Money, error)
		want    float64
		wantErr error
	}{
		"add":               {op: func() (Money, error) { return ten.Add(four) }, want: 14},
		"sub":               {op: func() (Money, error) { return ten.Sub(four) }, want: 6},
		"mul":               {op: func() (Money, error) { return four.Mul(2.5) }, want: 10},
		"add mismatch":      {op: func() (Money, error) { return ten.Add(eur) }, wantErr: ErrCurrencyMismatch},
		"sub mismatch":      {op: func() (Money, error) { return ten.Sub(eur) }, wantErr: ErrCurrencyMismatch},
		"sub below zero":    {op: func() (Money, error) { return four.Sub(ten) }, wantErr: ErrInsufficientFunds},
		"mul negative":      {op: func() (Money, error) { return four.Mul(-1) }, wantErr: ErrNegativeAmount},
		"sub to exact zero": {op: func() (Money, error) { return four.Sub(four) }, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tt.op()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got.Amount(), 1e-9)
		})
	}
}

func mustMoney(t *testing.T, amount float64, currency string) Money {
	t.Helper()
	m, err := NewMoney(amount, currency)
	require.NoError(t, err)
	return m
}

func mustProduct(t *testing.T, id string, price float64, stock int) *Product {
	t.Helper()
	p, err := NewProduct(id, "product-"+id, "desc "+id, mustMoney(t, price, "USD"), stock, "Misc")
	require.NoError(t, err)
	return p
}
