package game

import (
	"fmt"
	"math/rand/v2"
)

// Factory builds characters bound to a Stats instance. The zero value uses
// DefaultStats and the global random source.
type Factory struct {
	Stats *Stats
	Rand  Roller
}

type globalRoller struct{}

func (globalRoller) Float64() float64 { return rand.Float64() }

func (f Factory) NewCharacter(kind Kind, id, name string, level int) (Character, error) {
	if level < 1 {
		return nil, fmt.Errorf("%s: %w", name, ErrInvalidLevel)
	}
	stats := f.Stats
	if stats == nil {
		stats = DefaultStats()
	}

	switch kind {
	case KindWarrior:
		return newWarrior(id, name, level, stats), nil
	case KindMage:
		return newMage(id, name, level, stats), nil
	case KindArcher:
		roll := f.Rand
		if roll == nil {
			roll = globalRoller{}
		}
		return newArcher(id, name, level, stats, roll), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
}

// NewCharacter builds a character registered with DefaultStats.
func NewCharacter(kind Kind, id, name string, level int) (Character, error) {
	return Factory{}.NewCharacter(kind, id, name, level)
}
