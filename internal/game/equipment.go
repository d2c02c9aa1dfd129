package game

import "fmt"

type Equipment interface {
	Name() string
	AttackBonus() int
	DefenseBonus() int
	Durability() int
	Use()
	Broken() bool
	Info() string
}

type gear struct {
	name         string
	attackBonus  int
	defenseBonus int
	durability   int
}

func (g *gear) Name() string      { return g.name }
func (g *gear) AttackBonus() int  { return g.attackBonus }
func (g *gear) DefenseBonus() int { return g.defenseBonus }
func (g *gear) Durability() int   { return g.durability }
func (g *gear) Broken() bool      { return g.durability <= 0 }

// Use wears the item down by one point, never below zero.
func (g *gear) Use() {
	g.durability = max(0, g.durability-1)
}

func (g *gear) Info() string {
	return fmt.Sprintf("%s (ATK: +%d, DEF: +%d, DUR: %d)", g.name, g.attackBonus, g.defenseBonus, g.durability)
}

type Weapon struct{ gear }

func NewWeapon(name string, attackBonus, defenseBonus, durability int) *Weapon {
	return &Weapon{gear{name: name, attackBonus: attackBonus, defenseBonus: defenseBonus, durability: durability}}
}

type Armor struct{ gear }

func NewArmor(name string, attackBonus, defenseBonus, durability int) *Armor {
	return &Armor{gear{name: name, attackBonus: attackBonus, defenseBonus: defenseBonus, durability: durability}}
}
