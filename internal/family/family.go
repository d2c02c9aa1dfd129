package family

import "fmt"

// Member is anything built on a Person.
type Member interface {
	Self() *Person
	Introduce() string
}

type Family struct {
	members []Member
}

func (f *Family) Add(m Member) {
	f.members = append(f.members, m)
}

func (f *Family) Members() []Member {
	out := make([]Member, len(f.members))
	copy(out, f.members)
	return out
}

func (f *Family) Roster() []string {
	lines := make([]string, 0, len(f.members))
	for _, m := range f.members {
		p := m.Self()
		lines = append(lines, fmt.Sprintf("- %s, %d years old (%s)", p.Name, p.Age, p.Gender))
	}
	return lines
}

// Parents and Children filter members by their concrete kind.
func (f *Family) Parents() []*Parent {
	var out []*Parent
	for _, m := range f.members {
		if p, ok := m.(*Parent); ok {
			out = append(out, p)
		}
	}
	return out
}

func (f *Family) Children() []*Child {
	var out []*Child
	for _, m := range f.members {
		if c, ok := m.(*Child); ok {
			out = append(out, c)
		}
	}
	return out
}
