package shapes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidDimension = errors.New("dimensions must be positive")
	ErrInvalidTriangle  = errors.New("invalid triangle: sum of any two sides must be greater than the third side")
)

type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindCircle    Kind = "circle"
	KindTriangle  Kind = "triangle"
)

func (k Kind) Label() string {
	switch k {
	case KindRectangle:
		return "📐 Rectangle"
	case KindCircle:
		return "⭕ Circle"
	case KindTriangle:
		return "🔺 Triangle"
	}
	return string(k)
}

type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

type Shape interface {
	Area() float64
	Perimeter() float64
	Kind() Kind
	Name() string
	Color() string
	SetColor(color string)
	Position() Point
	Move(x, y float64)
	Info() string
	DrawingInfo() string
}

type shape struct {
	name  string
	color string
	pos   Point
}

func (s *shape) Name() string          { return s.name }
func (s *shape) Color() string         { return s.color }
func (s *shape) SetColor(color string) { s.color = color }
func (s *shape) Position() Point       { return s.pos }
func (s *shape) Move(x, y float64)     { s.pos = Point{X: x, Y: y} }

func (s *shape) DrawingInfo() string {
	return fmt.Sprintf("%s - Position: %s, Color: %s", s.name, s.pos, s.color)
}

// describe renders the common info block for a concrete shape.
func describe(sh Shape) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", sh.Kind().Label(), sh.Name())
	fmt.Fprintf(&b, "  Position: %s\n", sh.Position())
	fmt.Fprintf(&b, "  Color: %s\n", sh.Color())
	fmt.Fprintf(&b, "  Area: %.2f\n", sh.Area())
	fmt.Fprintf(&b, "  Perimeter: %.2f", sh.Perimeter())
	return b.String()
}
