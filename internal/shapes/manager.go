package shapes

import (
	"fmt"
	"strings"
	"sync"
)

// Manager keeps shapes in insertion order.
type Manager struct {
	mu     sync.RWMutex
	shapes []Shape
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// DefaultManager returns the process-wide Manager.
func DefaultManager() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

func NewManager() *Manager { return &Manager{} }

func (m *Manager) Add(s Shape) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.shapes = append(m.shapes, s)
}

// Remove deletes the first shape with the given name.
func (m *Manager) Remove(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.shapes {
		if s.Name() == name {
			m.shapes = append(m.shapes[:i], m.shapes[i+1:]...)
			return true
		}
	}
	return false
}

func (m *Manager) Get(name string) (Shape, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.shapes {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func (m *Manager) All() []Shape {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Shape, len(m.shapes))
	copy(out, m.shapes)
	return out
}

func (m *Manager) TotalArea() float64 {
	var total float64
	for _, s := range m.All() {
		total += s.Area()
	}
	return total
}

func (m *Manager) TotalPerimeter() float64 {
	var total float64
	for _, s := range m.All() {
		total += s.Perimeter()
	}
	return total
}

func (m *Manager) ByKind(kind Kind) []Shape {
	var out []Shape
	for _, s := range m.All() {
		if s.Kind() == kind {
			out = append(out, s)
		}
	}
	return out
}

// Largest returns the first shape with the greatest area, or nil.
func (m *Manager) Largest() Shape {
	return m.pick(func(cur, best float64) bool { return cur > best })
}

// Smallest returns the first shape with the least area, or nil.
func (m *Manager) Smallest() Shape {
	return m.pick(func(cur, best float64) bool { return cur < best })
}

func (m *Manager) pick(better func(cur, best float64) bool) Shape {
	all := m.All()
	if len(all) == 0 {
		return nil
	}
	best := all[0]
	for _, s := range all[1:] {
		if better(s.Area(), best.Area()) {
			best = s
		}
	}
	return best
}

type KindCount struct {
	Kind  Kind
	Count int
}

type Statistics struct {
	Total          int
	TotalArea      float64
	TotalPerimeter float64
	Largest        string
	Smallest       string
	Kinds          []KindCount
}

func (m *Manager) Statistics() Statistics {
	all := m.All()
	st := Statistics{
		Total:          len(all),
		TotalArea:      m.TotalArea(),
		TotalPerimeter: m.TotalPerimeter(),
		Largest:        "None",
		Smallest:       "None",
	}
	if s := m.Largest(); s != nil {
		st.Largest = s.Name()
	}
	if s := m.Smallest(); s != nil {
		st.Smallest = s.Name()
	}

	idx := make(map[Kind]int)
	for _, s := range all {
		i, ok := idx[s.Kind()]
		if !ok {
			i = len(st.Kinds)
			idx[s.Kind()] = i
			st.Kinds = append(st.Kinds, KindCount{Kind: s.Kind()})
		}
		st.Kinds[i].Count++
	}
	return st
}

func (st Statistics) String() string {
	var b strings.Builder
	b.WriteString("📊 SHAPE STATISTICS:\n")
	fmt.Fprintf(&b, "- Total Shapes: %d\n", st.Total)
	fmt.Fprintf(&b, "- Total Area: %.2f\n", st.TotalArea)
	fmt.Fprintf(&b, "- Total Perimeter: %.2f\n", st.TotalPerimeter)
	fmt.Fprintf(&b, "- Largest Shape: %s\n", st.Largest)
	fmt.Fprintf(&b, "- Smallest Shape: %s\n", st.Smallest)
	b.WriteString("\nShape Types:")
	for _, kc := range st.Kinds {
		fmt.Fprintf(&b, "\n  %s: %d", kc.Kind.Label(), kc.Count)
	}
	return b.String()
}
