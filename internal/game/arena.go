package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jasperayawan/oop-showcase-go/internal/logging"
)

const DefaultMaxRounds = 20

type Arena struct {
	MaxRounds int
	Stats     *Stats
	Logger    *zap.Logger
}

type Result struct {
	// Winner is nil when both fighters died.
	Winner Character
	Rounds int
	Log    []string
}

// Fight runs alternating attacks, a first, until one side falls or the round
// limit is hit. When both survive, a is reported as the winner.
func (ar Arena) Fight(a, b Character) Result {
	maxRounds := ar.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	stats := ar.Stats
	if stats == nil {
		stats = DefaultStats()
	}
	logger := logging.OrNop(ar.Logger)

	res := Result{Log: []string{fmt.Sprintf("⚔️ BATTLE: %s vs %s", a.Name(), b.Name())}}
	for round := 1; round <= maxRounds && a.Alive() && b.Alive(); round++ {
		res.Rounds = round
		res.Log = append(res.Log, fmt.Sprintf("--- Round %d ---", round))

		res.exchange(a, b)
		if !b.Alive() {
			break
		}
		res.exchange(b, a)
		if !a.Alive() {
			break
		}
	}
	stats.battleFought()

	switch {
	case a.Alive():
		res.Winner = a
	case b.Alive():
		res.Winner = b
	}
	if res.Winner != nil {
		res.Log = append(res.Log, fmt.Sprintf("🏆 %s wins!", res.Winner.Name()))
	} else {
		res.Log = append(res.Log, "💀 It's a draw - both characters died!")
	}

	logger.Debug("battle finished",
		zap.String("a", a.Name()),
		zap.String("b", b.Name()),
		zap.Int("rounds", res.Rounds),
		zap.Bool("draw", res.Winner == nil),
	)
	return res
}

func (res *Result) exchange(attacker, target Character) {
	h, err := attacker.Attack(target)
	if err != nil {
		res.Log = append(res.Log, fmt.Sprintf("❌ %s cannot attack: %v", attacker.Name(), err))
		return
	}
	res.Log = append(res.Log, Narrate(attacker, target, "attacks", h)...)
}

// Narrate renders the lines printed for a successful hit.
func Narrate(attacker, target Character, verb string, h Hit) []string {
	lines := []string{fmt.Sprintf("⚔️ %s %s %s for %d damage!", attacker.Name(), verb, target.Name(), h.Damage)}
	if h.Defeated {
		lines = append(lines, fmt.Sprintf("💀 %s has been defeated!", target.Name()))
	}
	if h.WeaponBroke != "" {
		lines = append(lines, fmt.Sprintf("💔 %s broke!", h.WeaponBroke))
	}
	if h.LeveledUp {
		lines = append(lines, fmt.Sprintf("🎉 %s leveled up to level %d!", attacker.Name(), attacker.Level()))
	}
	return lines
}
