package fleet

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

type Fleet struct {
	vehicles []Vehicle
	logger   *zap.Logger
}

func New(logger *zap.Logger) *Fleet {
	return &Fleet{logger: logging.OrNop(logger)}
}

func (f *Fleet) Add(v Vehicle) {
	f.vehicles = append(f.vehicles, v)
	f.logger.Debug("vehicle added", zap.String("vehicle", v.Info()), zap.String("kind", string(v.Kind())))
}

func (f *Fleet) Vehicles() []Vehicle {
	out := make([]Vehicle, len(f.vehicles))
	copy(out, f.vehicles)
	return out
}

// Result pairs a vehicle with the outcome of a fleet-wide operation.
type Result struct {
	Vehicle Vehicle
	Err     error
}

func (f *Fleet) StartAll() []Result {
	return f.each("start", Vehicle.Start)
}

func (f *Fleet) StopAll() []Result {
	return f.each("stop", Vehicle.Stop)
}

func (f *Fleet) each(op string, fn func(Vehicle) error) []Result {
	out := make([]Result, 0, len(f.vehicles))
	for _, v := range f.vehicles {
		err := fn(v)
		if err != nil {
			f.logger.Debug(op+" skipped", zap.String("vehicle", v.Info()), zap.Error(err))
		}
		out = append(out, Result{Vehicle: v, Err: err})
	}
	return out
}

func (f *Fleet) Roster() []string {
	out := make([]string, 0, len(f.vehicles))
	for i, v := range f.vehicles {
		out = append(out, fmt.Sprintf("%d. %s - Status: %s", i+1, v.Info(), v.Status()))
	}
	return out
}
