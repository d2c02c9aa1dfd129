package shapes

type Rectangle struct {
	shape
	width  float64
	height float64
}

func NewRectangle(x, y, width, height float64, color, name string) (*Rectangle, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}
	return &Rectangle{
		shape:  shape{name: name, color: color, pos: Point{X: x, Y: y}},
		width:  width,
		height: height,
	}, nil
}

func (r *Rectangle) Area() float64      { return r.width * r.height }
func (r *Rectangle) Perimeter() float64 { return 2 * (r.width + r.height) }
func (r *Rectangle) Kind() Kind         { return KindRectangle }
func (r *Rectangle) Info() string       { return describe(r) }
func (r *Rectangle) Width() float64     { return r.width }
func (r *Rectangle) Height() float64    { return r.height }
func (r *Rectangle) IsSquare() bool     { return r.width == r.height }

func (r *Rectangle) SetDimensions(width, height float64) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimension
	}
	r.width, r.height = width, height
	return nil
}
