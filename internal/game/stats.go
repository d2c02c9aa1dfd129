package game

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Stats tracks process-wide game counters.
type Stats struct {
	characters atomic.Int64
	battles    atomic.Int64
	experience atomic.Int64
}

var (
	defaultStats     *Stats
	defaultStatsOnce sync.Once
)

// DefaultStats returns the shared Stats instance.
func DefaultStats() *Stats {
	defaultStatsOnce.Do(func() {
		defaultStats = NewStats()
	})
	return defaultStats
}

func NewStats() *Stats { return &Stats{} }

func (s *Stats) characterCreated()      { s.characters.Add(1) }
func (s *Stats) battleFought()          { s.battles.Add(1) }
func (s *Stats) experienceGained(n int) { s.experience.Add(int64(n)) }

type Snapshot struct {
	CharactersCreated int64
	BattlesFought     int64
	ExperienceGained  int64
}

func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		CharactersCreated: s.characters.Load(),
		BattlesFought:     s.battles.Load(),
		ExperienceGained:  s.experience.Load(),
	}
}

func (s Snapshot) String() string {
	return fmt.Sprintf(`📊 GAME STATISTICS:
- Total Characters Created: %d
- Total Battles Fought: %d
- Total Experience Gained: %d`, s.CharactersCreated, s.BattlesFought, s.ExperienceGained)
}
