package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/coffee"
)

type coffeeSeed struct {
	name   string
	price  float64
	origin string
	roast  coffee.RoastLevel
	stock  int
}

var coffeeMenu = []coffeeSeed{
	{"Native Blend", 100, "Sultan Kudarat", coffee.RoastDark, 50},
	{"Coffee Blanka", 13, "Pitogo", coffee.RoastLight, 30},
	{"Premium Arabica", 25, "Benguet", coffee.RoastMedium, 20},
	{"Espresso Roast", 15, "Sagada", coffee.RoastDark, 0},
}

func (a *app) runCoffee(w io.Writer) error {
	fmt.Fprintln(w, "=== ENHANCED COFFEE SHOP SYSTEM ===")

	owner := &coffee.Owner{Name: "Jasper", Experience: 5}
	fmt.Fprintln(w, owner.Introduce())

	store := coffee.NewStore(owner, "Boss Coffee", "Downtown Manila", a.logger)
	fmt.Fprintln(w, store.Info())

	var first *coffee.Coffee
	for _, s := range coffeeMenu {
		c, err := coffee.New(s.name, s.price, s.origin, s.roast, s.stock)
		if err != nil {
			return fmt.Errorf("create %s: %w", s.name, err)
		}
		if first == nil {
			first = c
		}
		store.AddCoffee(c)
		fmt.Fprintf(w, "✅ Added %s to %s\n", c.Name, store.Name)
	}

	heading(w, "MENU")
	lines(w, store.Menu())

	heading(w, "COFFEE OPERATIONS")
	fmt.Fprintln(w, first.Details())
	if err := first.SetPrice(95); err != nil {
		return err
	}
	if err := first.AddStock(10); err != nil {
		return err
	}
	fmt.Fprintln(w, "After price change and restock:")
	fmt.Fprintln(w, first.Details())

	heading(w, "SALES DEMONSTRATION")
	sales := []struct {
		name string
		qty  int
	}{
		{"Native Blend", 2},
		{"Coffee Blanka", 1},
		{"Premium Arabica", 3},
		{"Espresso Roast", 1},
	}
	for _, s := range sales {
		amount, err := store.Sell(s.name, s.qty)
		if err != nil {
			fmt.Fprintf(w, "❌ Cannot sell %s: %v\n", s.name, err)
			continue
		}
		fmt.Fprintf(w, "💰 Sold %d %s for $%.2f\n", s.qty, s.name, amount)
	}

	heading(w, "UPDATED STORE INFO")
	fmt.Fprintln(w, store.Info())

	heading(w, "SEARCH FUNCTIONALITY")
	if c, ok := store.FindCoffee("arabica"); ok {
		fmt.Fprintf(w, "Found: %s\n", c.Details())
	}

	heading(w, "AVAILABLE COFFEES")
	for _, c := range store.AvailableCoffees() {
		fmt.Fprintln(w, c.Details())
	}
	return nil
}
