package library

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

type Library struct {
	Name string

	items   []Item
	members []*Member
	logger  *zap.Logger
}

func New(name string, logger *zap.Logger) *Library {
	return &Library{Name: name, logger: logging.OrNop(logger)}
}

func (l *Library) AddItem(it Item) {
	l.items = append(l.items, it)
	l.logger.Debug("item added", zap.String("itemId", it.ID()), zap.String("title", it.Title()))
}

func (l *Library) AddMember(m *Member) {
	l.members = append(l.members, m)
	l.logger.Debug("member added", zap.String("memberId", m.ID))
}

func (l *Library) Item(id string) (Item, bool) {
	for _, it := range l.items {
		if it.ID() == id {
			return it, true
		}
	}
	return nil, false
}

func (l *Library) Member(id string) (*Member, bool) {
	for _, m := range l.members {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// SearchByTitle matches against each item's info line, ignoring case.
func (l *Library) SearchByTitle(query string) []Item {
	q := strings.ToLower(query)
	var out []Item
	for _, it := range l.items {
		if strings.Contains(strings.ToLower(it.Info()), q) {
			out = append(out, it)
		}
	}
	return out
}

func (l *Library) AvailableItems() []Item {
	var out []Item
	for _, it := range l.items {
		if b, ok := it.(Borrowable); ok && b.Available() {
			out = append(out, it)
		}
	}
	return out
}

func (l *Library) Items() []Item {
	out := make([]Item, len(l.items))
	copy(out, l.items)
	return out
}

type Stats struct {
	Total     int
	Available int
	Borrowed  int
	Members   int
}

func (s Stats) String() string {
	return fmt.Sprintf(`📊 Library Statistics:
- Total Items: %d
- Available: %d
- Borrowed: %d
- Members: %d`, s.Total, s.Available, s.Borrowed, s.Members)
}

func (l *Library) Stats() Stats {
	available := len(l.AvailableItems())
	return Stats{
		Total:     len(l.items),
		Available: available,
		Borrowed:  len(l.items) - available,
		Members:   len(l.members),
	}
}
