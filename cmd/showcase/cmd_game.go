package main

import (
	"fmt"
	"io"

	"github.com/jasperayawan/oop-showcase-go/internal/game"
)

type equipSeed struct {
	weapon *game.Weapon
	armor  *game.Armor
}

func (a *app) runGame(w io.Writer) error {
	fmt.Fprintln(w, "=== GAME CHARACTER SYSTEM ===")

	stats := game.DefaultStats()
	factory := game.Factory{Stats: stats, Rand: a.rng()}
	arena := game.Arena{MaxRounds: a.cfg.BattleMaxRounds, Stats: stats, Logger: a.logger}

	newChar := func(kind game.Kind, id, name string, level int) (game.Character, error) {
		c, err := factory.NewCharacter(kind, id, name, level)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", name, err)
		}
		return c, nil
	}

	warrior, err := newChar(game.KindWarrior, "C001", "Thorin", 3)
	if err != nil {
		return err
	}
	mage, err := newChar(game.KindMage, "C002", "Gandalf", 2)
	if err != nil {
		return err
	}
	archer, err := newChar(game.KindArcher, "C003", "Legolas", 4)
	if err != nil {
		return err
	}

	loadouts := map[game.Character]equipSeed{
		warrior: {game.NewWeapon("Excalibur", 15, 2, 100), game.NewArmor("Plate Mail", 0, 20, 120)},
		mage:    {game.NewWeapon("Staff of Power", 8, 5, 80), game.NewArmor("Mage Robe", 2, 8, 60)},
		archer:  {game.NewWeapon("Elven Bow", 12, 1, 90), game.NewArmor("Leather Armor", 1, 12, 100)},
	}
	for _, c := range []game.Character{warrior, mage, archer} {
		eq := loadouts[c]
		c.SetWeapon(eq.weapon)
		fmt.Fprintf(w, "⚔️ %s equipped %s\n", c.Name(), eq.weapon.Name())
		c.SetArmor(eq.armor)
		fmt.Fprintf(w, "🛡️ %s equipped %s\n", c.Name(), eq.armor.Name())
	}

	for _, c := range []game.Character{warrior, mage, archer} {
		fmt.Fprintf(w, "\n%s\n", c.Info())
	}

	fmt.Fprintln(w)
	first := arena.Fight(warrior, mage)
	lines(w, first.Log)

	fmt.Fprintln(w)
	for _, c := range []game.Character{warrior, mage} {
		if err := c.Heal(50); err != nil {
			fmt.Fprintf(w, "❌ Cannot heal %s: %v\n", c.Name(), err)
			continue
		}
		fmt.Fprintf(w, "💚 %s healed for 50 HP\n", c.Name())
	}

	if first.Winner != nil {
		fmt.Fprintln(w)
		final := arena.Fight(first.Winner, archer)
		lines(w, final.Log)
		champion := "No one"
		if final.Winner != nil {
			champion = final.Winner.Name()
		}
		fmt.Fprintf(w, "\n🎊 FINAL CHAMPION: %s\n", champion)
	}

	heading(w, "SPECIAL ATTACKS")
	dummy, err := newChar(game.KindWarrior, "C100", "Training Dummy", 5)
	if err != nil {
		return err
	}
	specials := []struct {
		kind  game.Kind
		name  string
		verb  string
		tries int
	}{
		{game.KindWarrior, "Brom", "uses POWER STRIKE on", 1},
		{game.KindMage, "Elara", "casts FIREBALL on", 3},
		{game.KindArcher, "Fen", "uses PRECISION SHOT on", 2},
	}
	for i, s := range specials {
		c, err := newChar(s.kind, fmt.Sprintf("C1%02d", i+1), s.name, 1)
		if err != nil {
			return err
		}
		for range s.tries {
			h, err := c.SpecialAttack(dummy)
			if err != nil {
				fmt.Fprintf(w, "❌ %s's special attack failed: %v\n", c.Name(), err)
				continue
			}
			lines(w, game.Narrate(c, dummy, s.verb, h))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, stats.Snapshot())
	return nil
}
