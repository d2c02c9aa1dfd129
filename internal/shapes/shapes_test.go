package shapes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustRect(t *testing.T, w, h float64, name string) *Rectangle {
	t.Helper()
	r, err := NewRectangle(0, 0, w, h, "red", name)
	require.NoError(t, err)
	return r
}

func mustCircle(t *testing.T, r float64, name string) *Circle {
	t.Helper()
	c, err := NewCircle(0, 0, r, "green", name)
	require.NoError(t, err)
	return c
}

func mustTriangle(t *testing.T, a, b, c float64, name string) *Triangle {
	t.Helper()
	tr, err := NewTriangle(0, 0, a, b, c, "purple", name)
	require.NoError(t, err)
	return tr
}

func TestRectangle(t *testing.T) {
	r := mustRect(t, 30, 40, "R")
	require.Equal(t, 1200.0, r.Area())
	require.Equal(t, 140.0, r.Perimeter())
	require.False(t, r.IsSquare())

	require.NoError(t, r.SetDimensions(20, 20))
	require.True(t, r.IsSquare())
	require.ErrorIs(t, r.SetDimensions(0, 5), ErrInvalidDimension)
	require.Equal(t, 20.0, r.Width())

	_, err := NewRectangle(0, 0, -1, 2, "red", "bad")
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestCircle(t *testing.T) {
	c := mustCircle(t, 15, "C")
	require.InDelta(t, 706.858, c.Area(), 0.001)
	require.InDelta(t, 94.248, c.Perimeter(), 0.001)
	require.Equal(t, 30.0, c.Diameter())

	require.NoError(t, c.SetRadius(1))
	require.InDelta(t, math.Pi, c.Area(), 1e-9)
	require.ErrorIs(t, c.SetRadius(-2), ErrInvalidDimension)
}

func TestTriangle(t *testing.T) {
	tr := mustTriangle(t, 3, 4, 5, "T")
	require.InDelta(t, 6.0, tr.Area(), 1e-9)
	require.Equal(t, 12.0, tr.Perimeter())
	require.Equal(t, Scalene, tr.Classify())

	require.Equal(t, Equilateral, mustTriangle(t, 10, 10, 10, "E").Classify())
	require.Equal(t, Isosceles, mustTriangle(t, 5, 5, 8, "I").Classify())
	require.Equal(t, Isosceles, mustTriangle(t, 8, 5, 5, "I2").Classify())

	for _, sides := range [][3]float64{{1, 2, 3}, {1, 10, 2}, {10, 1, 2}} {
		_, err := NewTriangle(0, 0, sides[0], sides[1], sides[2], "x", "bad")
		require.ErrorIs(t, err, ErrInvalidTriangle, "sides %v", sides)
	}
	_, err := NewTriangle(0, 0, 0, 1, 1, "x", "zero")
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestShapeCommonBehaviour(t *testing.T) {
	r, err := NewRectangle(10, 20, 30, 40, "red", "Red Rectangle")
	require.NoError(t, err)

	require.Equal(t, "Red Rectangle - Position: (10, 20), Color: red", r.DrawingInfo())
	r.Move(5, 7.5)
	r.SetColor("pink")
	require.Equal(t, Point{X: 5, Y: 7.5}, r.Position())

	want := "📐 Rectangle - Red Rectangle\n" +
		"  Position: (5, 7.5)\n" +
		"  Color: pink\n" +
		"  Area: 1200.00\n" +
		"  Perimeter: 140.00"
	require.Equal(t, want, r.Info())
}

func TestManager(t *testing.T) {
	m := NewManager()
	require.Nil(t, m.Largest())
	require.Nil(t, m.Smallest())

	sq := mustRect(t, 20, 20, "Blue Square")
	big := mustCircle(t, 25, "Yellow Circle")
	tri := mustTriangle(t, 3, 4, 5, "Tiny Triangle")
	rect := mustRect(t, 2, 5, "Small Rect")
	for _, s := range []Shape{sq, big, tri, rect} {
		m.Add(s)
	}

	require.Same(t, big, m.Largest())
	require.Same(t, tri, m.Smallest())
	require.InDelta(t, 400+math.Pi*625+6+10, m.TotalArea(), 1e-9)
	require.InDelta(t, 80+math.Pi*50+12+14, m.TotalPerimeter(), 1e-9)
	require.Len(t, m.ByKind(KindRectangle), 2)

	got, ok := m.Get("Blue Square")
	require.True(t, ok)
	require.Same(t, sq, got)

	all := m.All()
	all[0] = nil
	require.NotNil(t, m.All()[0])

	require.True(t, m.Remove("Blue Square"))
	require.False(t, m.Remove("Blue Square"))
	_, ok = m.Get("Blue Square")
	require.False(t, ok)
	require.Len(t, m.All(), 3)
}

func TestManagerStatistics(t *testing.T) {
	m := NewManager()
	require.Equal(t, "None", m.Statistics().Largest)

	m.Add(mustCircle(t, 1, "c1"))
	m.Add(mustRect(t, 1, 1, "r1"))
	m.Add(mustCircle(t, 2, "c2"))

	st := m.Statistics()
	want := []KindCount{{Kind: KindCircle, Count: 2}, {Kind: KindRectangle, Count: 1}}
	if diff := cmp.Diff(want, st.Kinds); diff != "" {
		t.Fatalf("kind counts (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, st.Total)
	require.Equal(t, "c2", st.Largest)
	require.Equal(t, "r1", st.Smallest)

	out := st.String()
	require.Contains(t, out, "- Total Shapes: 3")
	require.Contains(t, out, "Shape Types:\n  ⭕ Circle: 2\n  📐 Rectangle: 1")
}

func TestDefaultManagerIsShared(t *testing.T) {
	require.Same(t, DefaultManager(), DefaultManager())
}
