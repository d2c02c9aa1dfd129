package game

import "fmt"

type Kind string

const (
	KindWarrior Kind = "warrior"
	KindMage    Kind = "mage"
	KindArcher  Kind = "archer"
)

func (k Kind) Label() string {
	switch k {
	case KindWarrior:
		return "⚔️ Warrior"
	case KindMage:
		return "🧙 Mage"
	case KindArcher:
		return "🏹 Archer"
	}
	return string(k)
}

// Roller yields values in [0, 1). *rand.Rand satisfies it.
type Roller interface {
	Float64() float64
}

type Warrior struct {
	base
}

func newWarrior(id, name string, level int, stats *Stats) *Warrior {
	w := &Warrior{base: newBase(KindWarrior, id, name, level, stats)}
	w.attack += 5
	return w
}

// SpecialAttack is Power Strike: double attack.
func (w *Warrior) SpecialAttack(target Character) (Hit, error) {
	if !w.alive || !target.Alive() {
		return Hit{}, ErrDead
	}
	h := w.strike(target, 2)
	h.LeveledUp = w.GainExperience(20)
	return h, nil
}

const fireballCost = 20

type Mage struct {
	base
	mana    int
	maxMana int
}

func newMage(id, name string, level int, stats *Stats) *Mage {
	m := &Mage{base: newBase(KindMage, id, name, level, stats)}
	m.defense -= 2
	m.maxMana = 50 + (level-1)*10
	m.mana = m.maxMana
	return m
}

func (m *Mage) Mana() int    { return m.mana }
func (m *Mage) MaxMana() int { return m.maxMana }

// SpecialAttack is Fireball: triple attack for 20 mana.
func (m *Mage) SpecialAttack(target Character) (Hit, error) {
	if !m.alive || !target.Alive() {
		return Hit{}, ErrDead
	}
	if m.mana < fireballCost {
		return Hit{}, ErrNoMana
	}
	m.mana -= fireballCost
	h := m.strike(target, 3)
	h.LeveledUp = m.GainExperience(25)
	return h, nil
}

func (m *Mage) Info() string {
	return fmt.Sprintf("%s\n  Mana: %d/%d", m.base.Info(), m.mana, m.maxMana)
}

type Archer struct {
	base
	accuracy int
	roll     Roller
}

func newArcher(id, name string, level int, stats *Stats, roll Roller) *Archer {
	a := &Archer{base: newBase(KindArcher, id, name, level, stats), roll: roll}
	a.accuracy = 80 + (level-1)*5
	return a
}

func (a *Archer) Accuracy() int { return a.accuracy }

// SpecialAttack is Precision Shot: 2.5x attack if the roll lands within
// accuracy.
func (a *Archer) SpecialAttack(target Character) (Hit, error) {
	if !a.alive || !target.Alive() {
		return Hit{}, ErrDead
	}
	if a.roll.Float64()*100 > float64(a.accuracy) {
		return Hit{}, ErrMissed
	}
	h := a.strike(target, 2.5)
	h.LeveledUp = a.GainExperience(15)
	return h, nil
}

func (a *Archer) Info() string {
	return fmt.Sprintf("%s\n  Accuracy: %d%%", a.base.Info(), a.accuracy)
}
