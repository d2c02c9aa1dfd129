package shapes

import "math"

type Circle struct {
	shape
	radius float64
}

func NewCircle(x, y, radius float64, color, name string) (*Circle, error) {
	if radius <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Circle{shape: shape{name: name, color: color, pos: Point{X: x, Y: y}}, radius: radius}, nil
}

func (c *Circle) Area() float64      { return math.Pi * c.radius * c.radius }
func (c *Circle) Perimeter() float64 { return 2 * math.Pi * c.radius }
func (c *Circle) Kind() Kind         { return KindCircle }
func (c *Circle) Info() string       { return describe(c) }
func (c *Circle) Radius() float64    { return c.radius }
func (c *Circle) Diameter() float64  { return 2 * c.radius }

func (c *Circle) SetRadius(radius float64) error {
	if radius <= 0 {
		return ErrInvalidDimension
	}
	c.radius = radius
	return nil
}
