package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/shapes"
)

func (a *app) runShapes(w io.Writer) error {
	fmt.Fprintln(w, "=== SHAPE CALCULATOR SYSTEM ===")

	redRect, err := shapes.NewRectangle(10, 20, 30, 40, "red", "Red Rectangle")
	if err != nil {
		return err
	}
	blueSquare, err := shapes.NewRectangle(50, 60, 20, 20, "blue", "Blue Square")
	if err != nil {
		return err
	}
	green, err := shapes.NewCircle(100, 100, 15, "green", "Green Circle")
	if err != nil {
		return err
	}
	yellow, err := shapes.NewCircle(200, 200, 25, "yellow", "Yellow Circle")
	if err != nil {
		return err
	}
	purple, err := shapes.NewTriangle(300, 300, 10, 10, 10, "purple", "Purple Triangle")
	if err != nil {
		return err
	}
	orange, err := shapes.NewTriangle(400, 400, 15, 20, 25, "orange", "Orange Triangle")
	if err != nil {
		return err
	}
	if _, err := shapes.NewTriangle(0, 0, 1, 2, 10, "grey", "Broken Triangle"); err != nil {
		fmt.Fprintf(w, "❌ Broken Triangle rejected: %v\n", err)
	}

	m := shapes.NewManager()
	for _, s := range []shapes.Shape{redRect, blueSquare, green, yellow, purple, orange} {
		m.Add(s)
		fmt.Fprintf(w, "✅ Added %s to shape manager\n", s.Name())
	}

	heading(w, "INDIVIDUAL SHAPE INFO")
	for _, s := range m.All() {
		fmt.Fprintf(w, "%s\n\n", s.Info())
	}

	fmt.Fprintln(w, "🎨 DRAWING ALL SHAPES:")
	for _, s := range m.All() {
		fmt.Fprintf(w, "🎨 Drawing %s\n", s.DrawingInfo())
	}

	heading(w, "MOVING SHAPES")
	rng := a.rng()
	for _, s := range m.All() {
		s.Move(float64(rng.IntN(100)), float64(rng.IntN(100)))
		fmt.Fprintf(w, "%s %s moved to %s\n", s.Kind().Label(), s.Name(), s.Position())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, m.Statistics())

	heading(w, "SPECIFIC SHAPE OPERATIONS")
	fmt.Fprintf(w, "Is %s a square? %t\n", blueSquare.Name(), blueSquare.IsSquare())
	fmt.Fprintf(w, "%s diameter: %g\n", green.Name(), green.Diameter())
	fmt.Fprintf(w, "%s type: %s\n", purple.Name(), purple.Classify())
	fmt.Fprintf(w, "%s type: %s\n", orange.Name(), orange.Classify())

	heading(w, "COLOR CHANGES")
	redRect.SetColor("pink")
	fmt.Fprintf(w, "🎨 %s color changed to pink\n", redRect.Name())
	green.SetColor("cyan")
	fmt.Fprintf(w, "🎨 %s color changed to cyan\n", green.Name())

	heading(w, "UPDATED SHAPE INFO")
	fmt.Fprintln(w, redRect.Info())
	fmt.Fprintln(w, green.Info())

	if m.Remove(purple.Name()) {
		fmt.Fprintf(w, "\n✅ Removed %s from shape manager (%d left)\n", purple.Name(), len(m.All()))
	}
	return nil
}
