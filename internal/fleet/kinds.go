package fleet

import "fmt"

type FuelType string

const (
	Gasoline FuelType = "gasoline"
	Electric FuelType = "electric"
	Hybrid   FuelType = "hybrid"
)

type Car struct {
	engine
	Doors int
	Fuel  FuelType
}

func NewCar(brand, model string, year, doors int, fuel FuelType) *Car {
	return &Car{engine: engine{brand: brand, model: model, year: year}, Doors: doors, Fuel: fuel}
}

func (c *Car) Kind() Kind   { return KindCar }
func (c *Car) Honk() string { return "Beep beep!" }

func (c *Car) Details() string {
	return fmt.Sprintf("Doors: %d, Fuel: %s", c.Doors, c.Fuel)
}

type Motorcycle struct {
	engine
	EngineCC   int
	Windshield bool
}

func NewMotorcycle(brand, model string, year, engineCC int, windshield bool) *Motorcycle {
	return &Motorcycle{engine: engine{brand: brand, model: model, year: year}, EngineCC: engineCC, Windshield: windshield}
}

func (m *Motorcycle) Kind() Kind { return KindMotorcycle }

func (m *Motorcycle) Details() string {
	return fmt.Sprintf("Engine: %dcc", m.EngineCC)
}

const wheelieSpeed = 20

func (m *Motorcycle) Wheelie() error {
	if m.speed < wheelieSpeed {
		return ErrTooSlow
	}
	return nil
}

// Truck capacity and cargo are in tons.
type Truck struct {
	engine
	capacity float64
	cargo    float64
}

func NewTruck(brand, model string, year int, capacity float64) *Truck {
	return &Truck{engine: engine{brand: brand, model: model, year: year}, capacity: capacity}
}

func (t *Truck) Kind() Kind        { return KindTruck }
func (t *Truck) Capacity() float64 { return t.capacity }
func (t *Truck) Cargo() float64    { return t.cargo }

func (t *Truck) Details() string {
	return fmt.Sprintf("Cargo: %g/%g tons", t.cargo, t.capacity)
}

// Accelerate gains half the requested speed.
func (t *Truck) Accelerate(delta float64) error {
	return t.engine.Accelerate(delta * 0.5)
}

func (t *Truck) Load(tons float64) error {
	if tons <= 0 {
		return ErrInvalidWeight
	}
	if t.cargo+tons > t.capacity {
		return fmt.Errorf("load %g tons onto %g/%g: %w", tons, t.cargo, t.capacity, ErrOverCapacity)
	}
	t.cargo += tons
	return nil
}

func (t *Truck) Unload(tons float64) error {
	if tons <= 0 {
		return ErrInvalidWeight
	}
	if t.cargo-tons < 0 {
		return fmt.Errorf("unload %g tons from %g: %w", tons, t.cargo, ErrUnderflow)
	}
	t.cargo -= tons
	return nil
}
