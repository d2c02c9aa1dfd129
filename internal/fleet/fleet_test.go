package fleet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEngineLifecycle(t *testing.T) {
	c := NewCar("Toyota", "Camry", 2023, 4, Hybrid)
	require.Equal(t, "2023 Toyota Camry", c.Info())
	require.Equal(t, "Stopped", c.Status())

	require.ErrorIs(t, c.Accelerate(10), ErrNotRunning)
	require.ErrorIs(t, c.Stop(), ErrAlreadyStopped)

	require.NoError(t, c.Start())
	require.ErrorIs(t, c.Start(), ErrAlreadyRunning)
	require.NoError(t, c.Accelerate(25))
	require.NoError(t, c.Accelerate(5))
	require.Equal(t, 30.0, c.Speed())
	require.Equal(t, "Running", c.Status())

	require.NoError(t, c.Stop())
	require.Zero(t, c.Speed())
	require.False(t, c.Running())
}

func TestDrive(t *testing.T) {
	c := NewCar("Tesla", "Model 3", 2023, 4, Electric)
	require.NoError(t, Drive(c))
	require.Equal(t, 30.0, c.Speed())

	// already running is fine
	require.NoError(t, Drive(c))
	require.Equal(t, 60.0, c.Speed())

	tr := NewTruck("Volvo", "FH16", 2023, 25)
	require.NoError(t, Drive(tr))
	require.Equal(t, 15.0, tr.Speed())
}

func TestMotorcycleWheelie(t *testing.T) {
	m := NewMotorcycle("Honda", "CBR600", 2023, 600, true)
	require.ErrorIs(t, m.Wheelie(), ErrTooSlow)

	require.NoError(t, m.Start())
	require.NoError(t, m.Accelerate(19))
	require.ErrorIs(t, m.Wheelie(), ErrTooSlow)
	require.NoError(t, m.Accelerate(1))
	require.NoError(t, m.Wheelie())
	require.Equal(t, "Engine: 600cc", m.Details())
}

func TestTruckCargo(t *testing.T) {
	tr := NewTruck("Ford", "F-150", 2023, 1.5)

	require.ErrorIs(t, tr.Load(2), ErrOverCapacity)
	require.Zero(t, tr.Cargo())

	require.NoError(t, tr.Load(1.5))
	require.ErrorIs(t, tr.Load(0.1), ErrOverCapacity)
	require.ErrorIs(t, tr.Unload(2), ErrUnderflow)
	require.NoError(t, tr.Unload(0.5))
	require.Equal(t, 1.0, tr.Cargo())
	require.ErrorIs(t, tr.Load(-1), ErrInvalidWeight)
	require.Equal(t, "Cargo: 1/1.5 tons", tr.Details())
}

func TestFleet(t *testing.T) {
	f := New(nil)
	car := NewCar("Toyota", "Camry", 2023, 4, Hybrid)
	moto := NewMotorcycle("Ducati", "Monster", 2023, 821, false)
	truck := NewTruck("Volvo", "FH16", 2023, 25)
	f.Add(car)
	f.Add(moto)
	f.Add(truck)

	require.NoError(t, moto.Start())

	res := f.StartAll()
	require.Len(t, res, 3)
	require.NoError(t, res[0].Err)
	require.ErrorIs(t, res[1].Err, ErrAlreadyRunning)
	require.NoError(t, res[2].Err)

	want := []string{
		"1. 2023 Toyota Camry - Status: Running",
		"2. 2023 Ducati Monster - Status: Running",
		"3. 2023 Volvo FH16 - Status: Running",
	}
	if diff := cmp.Diff(want, f.Roster()); diff != "" {
		t.Fatalf("roster (-want +got):\n%s", diff)
	}

	require.NoError(t, car.Stop())
	res = f.StopAll()
	require.ErrorIs(t, res[0].Err, ErrAlreadyStopped)
	require.NoError(t, res[1].Err)
	for _, v := range f.Vehicles() {
		require.False(t, v.Running())
	}
}

func TestCarDetails(t *testing.T) {
	c := NewCar("Toyota", "Camry", 2023, 4, Hybrid)
	require.Equal(t, "Doors: 4, Fuel: hybrid", c.Details())
	require.Equal(t, "Beep beep!", c.Honk())
	require.Equal(t, "🚗", c.Kind().Icon())
}
