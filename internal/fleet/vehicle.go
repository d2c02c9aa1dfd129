package fleet

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyRunning = errors.New("already running")
	ErrAlreadyStopped = errors.New("already stopped")
	ErrNotRunning     = errors.New("cannot accelerate: not running")
	ErrTooSlow        = errors.New("need more speed for a wheelie")
	ErrOverCapacity   = errors.New("load exceeds cargo capacity")
	ErrUnderflow      = errors.New("cannot unload more cargo than currently loaded")
	ErrInvalidWeight  = errors.New("weight must be positive")
)

type Kind string

const (
	KindCar        Kind = "car"
	KindMotorcycle Kind = "motorcycle"
	KindTruck      Kind = "truck"
)

func (k Kind) Icon() string {
	switch k {
	case KindCar:
		return "🚗"
	case KindMotorcycle:
		return "🏍️"
	case KindTruck:
		return "🚛"
	}
	return "🚙"
}

type Vehicle interface {
	Kind() Kind
	Info() string
	Details() string
	Start() error
	Stop() error
	Accelerate(delta float64) error
	Speed() float64
	Running() bool
	Status() string
}

type engine struct {
	brand   string
	model   string
	year    int
	speed   float64
	running bool
}

func (e *engine) Info() string {
	return fmt.Sprintf("%d %s %s", e.year, e.brand, e.model)
}

func (e *engine) Speed() float64 { return e.speed }
func (e *engine) Running() bool  { return e.running }

func (e *engine) Status() string {
	if e.running {
		return "Running"
	}
	return "Stopped"
}

func (e *engine) Start() error {
	if e.running {
		return fmt.Errorf("%s: %w", e.Info(), ErrAlreadyRunning)
	}
	e.running = true
	return nil
}

// Stop also brings the vehicle to a standstill.
func (e *engine) Stop() error {
	if !e.running {
		return fmt.Errorf("%s: %w", e.Info(), ErrAlreadyStopped)
	}
	e.running = false
	e.speed = 0
	return nil
}

func (e *engine) Accelerate(delta float64) error {
	if !e.running {
		return fmt.Errorf("%s: %w", e.Info(), ErrNotRunning)
	}
	e.speed += delta
	return nil
}

// Drive starts v if needed and brings it up by 30 km/h.
func Drive(v Vehicle) error {
	if err := v.Start(); err != nil && !errors.Is(err, ErrAlreadyRunning) {
		return err
	}
	return v.Accelerate(30)
}
