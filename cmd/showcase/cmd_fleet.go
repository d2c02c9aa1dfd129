package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/fleet"
)

func (a *app) runFleet(w io.Writer) error {
	fmt.Fprintln(w, "=== VEHICLE HIERARCHY SYSTEM ===")

	f := fleet.New(a.logger)
	for _, v := range []fleet.Vehicle{
		fleet.NewCar("Toyota", "Camry", 2023, 4, fleet.Hybrid),
		fleet.NewCar("Tesla", "Model 3", 2023, 4, fleet.Electric),
		fleet.NewMotorcycle("Honda", "CBR600", 2023, 600, true),
		fleet.NewMotorcycle("Ducati", "Monster", 2023, 821, false),
		fleet.NewTruck("Ford", "F-150", 2023, 1.5),
		fleet.NewTruck("Volvo", "FH16", 2023, 25),
	} {
		f.Add(v)
		fmt.Fprintf(w, "✅ Added %s to fleet\n", v.Info())
	}

	fmt.Fprintln(w, "\n📊 FLEET INFORMATION:")
	lines(w, f.Roster())

	fmt.Fprintln(w, "\n🎭 POLYMORPHISM DEMONSTRATION:")
	for _, v := range f.Vehicles() {
		icon := v.Kind().Icon()
		fmt.Fprintf(w, "\n--- %s ---\n", v.Info())
		fmt.Fprintf(w, "%s %s is ready to drive\n", icon, v.Info())
		if err := fleet.Drive(v); err != nil {
			fmt.Fprintf(w, "%s %v\n", icon, err)
		}
		fmt.Fprintf(w, "Current speed: %g km/h\n", v.Speed())

		switch v := v.(type) {
		case *fleet.Car:
			fmt.Fprintf(w, "%s %s\n", icon, v.Honk())
		case *fleet.Motorcycle:
			if err := v.Wheelie(); err != nil {
				fmt.Fprintf(w, "%s %v!\n", icon, err)
			} else {
				fmt.Fprintf(w, "%s Doing a wheelie! 🎪\n", icon)
			}
		case *fleet.Truck:
			if err := v.Load(2); err != nil {
				fmt.Fprintf(w, "%s Cannot load 2 tons: %v\n", icon, err)
			} else {
				fmt.Fprintf(w, "%s Loaded 2 tons\n", icon)
			}
		}
		fmt.Fprintln(w, v.Details())
	}

	fmt.Fprintln(w, "\n🛑 Stopping all vehicles...")
	printResults(w, f.StopAll(), "stopped")

	fmt.Fprintln(w, "\n🚀 Starting all vehicles...")
	printResults(w, f.StartAll(), "started")

	fmt.Fprintln(w, "\n📊 FLEET INFORMATION:")
	lines(w, f.Roster())

	fmt.Fprintln(w, "\n🛑 Stopping all vehicles...")
	printResults(w, f.StopAll(), "stopped")
	return nil
}

func printResults(w io.Writer, results []fleet.Result, verb string) {
	for _, r := range results {
		icon := r.Vehicle.Kind().Icon()
		if r.Err != nil {
			fmt.Fprintf(w, "%s %v\n", icon, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s %s\n", icon, r.Vehicle.Info(), verb)
	}
}
