package game

import (
	"errors"
	"fmt"
)

// SpawnSpec describes a group of identical enemies placed when a level loads
type SpawnSpec struct {
	Count int     `toml:"count"`
	Speed float64 `toml:"speed"` // pixels per tick
	Boss  bool    `toml:"boss"`
}

// LevelDescriptor is one row of the level table
type LevelDescriptor struct {
	Number     int         `toml:"number"`
	Spawns     []SpawnSpec `toml:"spawns"`
	KillTarget int         `toml:"kill_target"`
}

// EnemyCount returns the number of enemies the level places
func (d LevelDescriptor) EnemyCount() int {
	n := 0
	for _, s := range d.Spawns {
		n += s.Count
	}
	return n
}

// HasBoss reports whether the level places a boss
func (d LevelDescriptor) HasBoss() bool {
	for _, s := range d.Spawns {
		if s.Boss && s.Count > 0 {
			return true
		}
	}
	return false
}

// LevelTable maps level numbers to their descriptors
type LevelTable []LevelDescriptor

// DefaultLevelTable returns the built-in three level campaign
func DefaultLevelTable() LevelTable {
	return LevelTable{
		{
			Number:     1,
			Spawns:     []SpawnSpec{{Count: 3, Speed: 1}},
			KillTarget: 5,
		},
		{
			Number:     2,
			Spawns:     []SpawnSpec{{Count: 5, Speed: 1.2}},
			KillTarget: 7,
		},
		{
			Number: 3,
			Spawns: []SpawnSpec{
				{Count: 3, Speed: 1.5},
				{Count: 1, Speed: 1.2, Boss: true},
			},
			KillTarget: 1, // the boss
		},
	}
}

// Lookup returns the descriptor for a level.
// The returned descriptor does not share memory with the table.
func (t LevelTable) Lookup(level int) (LevelDescriptor, bool) {
	for _, d := range t {
		if d.Number == level {
			d.Spawns = append([]SpawnSpec(nil), d.Spawns...)
			return d, true
		}
	}
	return LevelDescriptor{}, false
}

// FinalLevel returns the highest level number in the table
func (t LevelTable) FinalLevel() int {
	final := 0
	for _, d := range t {
		if d.Number > final {
			final = d.Number
		}
	}
	return final
}

// Validate checks that levels are numbered 1..n without gaps and that the
// final level places a boss, since only a boss kill ends it
func (t LevelTable) Validate() error {
	if len(t) == 0 {
		return errors.New("level table is empty")
	}
	seen := make(map[int]bool, len(t))
	for _, d := range t {
		if d.Number < 1 {
			return fmt.Errorf("level number %d must be at least 1", d.Number)
		}
		if seen[d.Number] {
			return fmt.Errorf("level %d defined twice", d.Number)
		}
		seen[d.Number] = true
		if d.EnemyCount() == 0 {
			return fmt.Errorf("level %d spawns no enemies", d.Number)
		}
		if d.KillTarget <= 0 {
			return fmt.Errorf("level %d kill_target must be positive", d.Number)
		}
	}
	for n := 1; n <= len(t); n++ {
		if !seen[n] {
			return fmt.Errorf("level %d missing", n)
		}
	}
	if final, _ := t.Lookup(t.FinalLevel()); !final.HasBoss() {
		return fmt.Errorf("final level %d has no boss", final.Number)
	}
	return nil
}
