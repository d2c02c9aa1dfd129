package shop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProductStock(t *testing.T) {
	p := mustProduct(t, "p1", 5, 3)

	require.ErrorIs(t, p.ReduceStock(4), ErrInsufficientStock)
	require.Equal(t, 3, p.Stock(), "stock must be unchanged after a failed reduce")

	require.NoError(t, p.ReduceStock(3))
	require.False(t, p.InStock())

	require.ErrorIs(t, p.SetStock(-1), ErrNegativeStock)
	require.ErrorIs(t, p.AddStock(-2), ErrNegativeQuantity)
	require.NoError(t, p.AddStock(2))
	require.Equal(t, 2, p.Stock())

	_, err := NewProduct("bad", "bad", "", mustMoney(t, 1, ""), -1, "")
	require.ErrorIs(t, err, ErrNegativeStock)
}

func TestCartAddMergesQuantities(t *testing.T) {
	p := mustProduct(t, "p1", 2.5, 10)
	c := NewCart("c1")
	require.NotEmpty(t, c.ID)

	require.NoError(t, c.Add(p, 2))
	require.NoError(t, c.Add(p, 3))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 5, items[0].Quantity())
	require.Equal(t, 5, c.ItemCount())

	total, err := c.Total()
	require.NoError(t, err)
	require.InDelta(t, 12.5, total.Amount(), 1e-9)
}

func TestCartAddRejects(t *testing.T) {
	tests := map[string]struct {
		stock   int
		already int
		qty     int
		wantErr error
	}{
		"out of stock":        {stock: 0, qty: 1, wantErr: ErrOutOfStock},
		"more than stock":     {stock: 2, qty: 3, wantErr: ErrInsufficientStock},
		"merge exceeds stock": {stock: 4, already: 3, qty: 2, wantErr: ErrInsufficientStock},
		"zero quantity":       {stock: 4, qty: 0, wantErr: ErrInvalidQuantity},
		"negative quantity":   {stock: 4, qty: -1, wantErr: ErrInvalidQuantity},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := mustProduct(t, "p1", 1, tt.stock)
			c := NewCart("c1")
			if tt.already > 0 {
				require.NoError(t, c.Add(p, tt.already))
			}
			require.ErrorIs(t, c.Add(p, tt.qty), tt.wantErr)
			require.Equal(t, tt.already, c.ItemCount())
		})
	}
}

func TestCartRemoveAndUpdate(t *testing.T) {
	p1 := mustProduct(t, "p1", 1, 10)
	p2 := mustProduct(t, "p2", 2, 10)
	c := NewCart("c1")
	require.NoError(t, c.Add(p1, 1))
	require.NoError(t, c.Add(p2, 1))

	require.ErrorIs(t, c.Remove("missing"), ErrItemNotFound)
	require.ErrorIs(t, c.UpdateQuantity("missing", 1), ErrItemNotFound)
	require.ErrorIs(t, c.UpdateQuantity("p2", -1), ErrNegativeQuantity)

	require.NoError(t, c.UpdateQuantity("p2", 4))
	require.NoError(t, c.Remove("p1"))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, "p2", items[0].Product.ID)
	require.Equal(t, 4, c.ItemCount())

	c.Clear()
	require.Zero(t, c.ItemCount())
	require.Equal(t, "🛒 Cart is empty", c.Summary())
}

func TestCartItemsIsACopy(t *testing.T) {
	p := mustProduct(t, "p1", 1, 10)
	c := NewCart("c1")
	require.NoError(t, c.Add(p, 2))

	items := c.Items()
	require.NoError(t, items[0].SetQuantity(9))
	require.Equal(t, 2, c.ItemCount())
}

func TestCartSummary(t *testing.T) {
	c := NewCart("c1")
	require.NoError(t, c.Add(mustProduct(t, "p1", 10, 5), 2))

	s := c.Summary()
	require.Contains(t, s, "Shopping Cart (2 items)")
	require.Contains(t, s, "1. product-p1 x2 = USD 20.00")
	require.Contains(t, s, "Total: USD 20.00")
}
