package game

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrDead         = errors.New("character is dead")
	ErrNoMana       = errors.New("not enough mana")
	ErrMissed       = errors.New("attack missed")
	ErrUnknownKind  = errors.New("unknown character kind")
	ErrInvalidLevel = errors.New("level must be at least 1")
)

const attackExperience = 10

// Character is implemented by Warrior, Mage and Archer.
type Character interface {
	ID() string
	Name() string
	Kind() Kind
	Level() int
	Health() int
	MaxHealth() int
	Alive() bool
	Experience() int
	TotalAttack() int
	TotalDefense() int

	SetWeapon(w *Weapon)
	SetArmor(a *Armor)
	Attack(target Character) (Hit, error)
	SpecialAttack(target Character) (Hit, error)
	TakeDamage(damage int) bool
	GainExperience(amount int) bool
	Heal(amount int) error
	Info() string
}

// Hit describes the outcome of one successful attack.
type Hit struct {
	Damage      int
	Defeated    bool
	WeaponBroke string
	LeveledUp   bool
}

type base struct {
	id         string
	name       string
	kind       Kind
	level      int
	health     int
	maxHealth  int
	attack     int
	defense    int
	experience int
	expToNext  int
	alive      bool

	weapon *Weapon
	armor  *Armor
	stats  *Stats
}

func newBase(kind Kind, id, name string, level int, stats *Stats) base {
	b := base{
		id:        id,
		name:      name,
		kind:      kind,
		level:     level,
		maxHealth: maxHealthFor(level),
		attack:    10 + (level-1)*5,
		defense:   5 + (level-1)*3,
		expToNext: level * 100,
		alive:     true,
		stats:     stats,
	}
	b.health = b.maxHealth
	stats.characterCreated()
	return b
}

func maxHealthFor(level int) int { return 100 + (level-1)*20 }

func (b *base) ID() string      { return b.id }
func (b *base) Name() string    { return b.name }
func (b *base) Kind() Kind      { return b.kind }
func (b *base) Level() int      { return b.level }
func (b *base) Health() int     { return b.health }
func (b *base) MaxHealth() int  { return b.maxHealth }
func (b *base) Alive() bool     { return b.alive }
func (b *base) Experience() int { return b.experience }
func (b *base) Weapon() *Weapon { return b.weapon }
func (b *base) Armor() *Armor   { return b.armor }

// SetHealth clamps h into [0, MaxHealth]. Reaching zero is permanent.
func (b *base) SetHealth(h int) {
	b.health = max(0, min(h, b.maxHealth))
	if b.health == 0 {
		b.alive = false
	}
}

func (b *base) SetWeapon(w *Weapon) { b.weapon = w }
func (b *base) SetArmor(a *Armor)   { b.armor = a }

// Equipment lists what the character currently wears.
func (b *base) Equipment() []Equipment {
	var out []Equipment
	if b.weapon != nil {
		out = append(out, b.weapon)
	}
	if b.armor != nil {
		out = append(out, b.armor)
	}
	return out
}

func (b *base) TotalAttack() int {
	if b.weapon == nil {
		return b.attack
	}
	return b.attack + b.weapon.AttackBonus()
}

func (b *base) TotalDefense() int {
	if b.armor == nil {
		return b.defense
	}
	return b.defense + b.armor.DefenseBonus()
}

// TakeDamage reports whether the hit was fatal.
func (b *base) TakeDamage(damage int) bool {
	b.SetHealth(b.health - damage)
	return !b.alive
}

func (b *base) Attack(target Character) (Hit, error) {
	if !b.alive || !target.Alive() {
		return Hit{}, ErrDead
	}

	h := b.strike(target, 1)
	if b.weapon != nil {
		b.weapon.Use()
		if b.weapon.Broken() {
			h.WeaponBroke = b.weapon.Name()
			b.weapon = nil
		}
	}
	h.LeveledUp = b.GainExperience(attackExperience)
	return h, nil
}

// strike applies multiplier times total attack, less the target's defense,
// with a floor of one point.
func (b *base) strike(target Character, multiplier float64) Hit {
	raw := int(math.Floor(float64(b.TotalAttack()) * multiplier))
	damage := max(1, raw-target.TotalDefense())
	return Hit{Damage: damage, Defeated: target.TakeDamage(damage)}
}

// GainExperience reports whether the character levelled up.
func (b *base) GainExperience(amount int) bool {
	b.experience += amount
	b.stats.experienceGained(amount)
	if b.experience < b.expToNext {
		return false
	}
	b.levelUp()
	return true
}

func (b *base) levelUp() {
	b.level++
	old := b.maxHealth
	b.maxHealth = maxHealthFor(b.level)
	b.health += b.maxHealth - old
	b.attack += 5
	b.defense += 3
	b.experience -= b.expToNext
	b.expToNext = b.level * 100
}

func (b *base) Heal(amount int) error {
	if !b.alive {
		return ErrDead
	}
	b.SetHealth(b.health + amount)
	return nil
}

func (b *base) Info() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s - %s (Level %d)\n", b.kind.Label(), b.name, b.level)
	fmt.Fprintf(&s, "  HP: %d/%d\n", b.health, b.maxHealth)
	fmt.Fprintf(&s, "  ATK: %d (Base: %d)\n", b.TotalAttack(), b.attack)
	fmt.Fprintf(&s, "  DEF: %d (Base: %d)\n", b.TotalDefense(), b.defense)
	fmt.Fprintf(&s, "  EXP: %d/%d", b.experience, b.expToNext)
	if b.weapon != nil {
		fmt.Fprintf(&s, "\n  Weapon: %s", b.weapon.Info())
	}
	if b.armor != nil {
		fmt.Fprintf(&s, "\n  Armor: %s", b.armor.Info())
	}
	status := "Alive"
	if !b.alive {
		status = "Dead"
	}
	fmt.Fprintf(&s, "\n  Status: %s", status)
	return s.String()
}
