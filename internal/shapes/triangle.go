package shapes

import "math"

type TriangleClass string

const (
	Equilateral TriangleClass = "Equilateral"
	Isosceles   TriangleClass = "Isosceles"
	Scalene     TriangleClass = "Scalene"
)

type Triangle struct {
	shape
	a, b, c float64
}

// NewTriangle rejects side lengths that violate the triangle inequality.
func NewTriangle(x, y, a, b, c float64, color, name string) (*Triangle, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, ErrInvalidDimension
	}
	if a+b <= c || a+c <= b || b+c <= a {
		return nil, ErrInvalidTriangle
	}
	return &Triangle{shape: shape{name: name, color: color, pos: Point{X: x, Y: y}}, a: a, b: b, c: c}, nil
}

func (t *Triangle) Perimeter() float64 { return t.a + t.b + t.c }
func (t *Triangle) Kind() Kind         { return KindTriangle }
func (t *Triangle) Info() string       { return describe(t) }

func (t *Triangle) Sides() (a, b, c float64) { return t.a, t.b, t.c }

// Area uses Heron's formula.
func (t *Triangle) Area() float64 {
	s := t.Perimeter() / 2
	return math.Sqrt(s * (s - t.a) * (s - t.b) * (s - t.c))
}

func (t *Triangle) Classify() TriangleClass {
	switch {
	case t.a == t.b && t.b == t.c:
		return Equilateral
	case t.a == t.b || t.b == t.c || t.a == t.c:
		return Isosceles
	default:
		return Scalene
	}
}
