package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLevelTable(t *testing.T) {
	table := DefaultLevelTable()
	require.NoError(t, table.Validate())
	assert.Equal(t, 3, table.FinalLevel())

	tests := []struct {
		level   int
		enemies int
		target  int
		boss    bool
	}{
		{level: 1, enemies: 3, target: 5},
		{level: 2, enemies: 5, target: 7},
		{level: 3, enemies: 4, target: 1, boss: true},
	}
	for _, tt := range tests {
		d, ok := table.Lookup(tt.level)
		require.True(t, ok, "level %d", tt.level)
		assert.Equal(t, tt.level, d.Number)
		assert.Equal(t, tt.enemies, d.EnemyCount(), "level %d", tt.level)
		assert.Equal(t, tt.target, d.KillTarget, "level %d", tt.level)
		assert.Equal(t, tt.boss, d.HasBoss(), "level %d", tt.level)
	}

	_, ok := table.Lookup(4)
	assert.False(t, ok)
}

func TestLevelTableLookupReturnsCopy(t *testing.T) {
	table := DefaultLevelTable()
	d, ok := table.Lookup(1)
	require.True(t, ok)

	d.Spawns[0].Count = 99
	again, _ := table.Lookup(1)
	assert.Equal(t, 3, again.Spawns[0].Count)
}

func TestLevelTableValidate(t *testing.T) {
	spawn := []SpawnSpec{{Count: 1, Speed: 1}}
	boss := []SpawnSpec{{Count: 1, Speed: 1, Boss: true}}

	tests := []struct {
		name  string
		table LevelTable
	}{
		{name: "empty", table: LevelTable{}},
		{name: "gap", table: LevelTable{{Number: 1, Spawns: spawn, KillTarget: 1}, {Number: 3, Spawns: spawn, KillTarget: 1}}},
		{name: "duplicate", table: LevelTable{{Number: 1, Spawns: spawn, KillTarget: 1}, {Number: 1, Spawns: spawn, KillTarget: 1}}},
		{name: "no enemies", table: LevelTable{{Number: 1, KillTarget: 1}}},
		{name: "no target", table: LevelTable{{Number: 1, Spawns: spawn}}},
		{name: "final level without boss", table: LevelTable{{Number: 1, Spawns: boss, KillTarget: 1}, {Number: 2, Spawns: []SpawnSpec{{Count: 2, Speed: 1}}, KillTarget: 1}}},
		{name: "boss count zero", table: LevelTable{{Number: 1, Spawns: []SpawnSpec{{Count: 2, Speed: 1}, {Count: 0, Boss: true}}, KillTarget: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.table.Validate())
		})
	}
}

func TestLevelTableValidateSingleBossLevel(t *testing.T) {
	table := LevelTable{{Number: 1, Spawns: []SpawnSpec{{Count: 2, Speed: 1}, {Count: 1, Speed: 1, Boss: true}}, KillTarget: 1}}
	assert.NoError(t, table.Validate())
	assert.Equal(t, 1, table.FinalLevel())
}

func TestWorldLoadLevelKeepsSessionCounters(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), testRNG())
	require.NoError(t, err)
	require.Equal(t, 1, w.Level)
	require.Len(t, w.Enemies, 3)

	w.Player.Score = 42
	w.Player.Lives = 1
	w.EnemyEscapes = 4
	w.EnemiesDefeated = 5

	require.NoError(t, w.LoadLevel(2))
	assert.Equal(t, 2, w.Level)
	assert.Len(t, w.Enemies, 5)
	assert.Equal(t, 7, w.KillTarget)
	assert.Zero(t, w.EnemiesDefeated)
	assert.Equal(t, 42, w.Player.Score)
	assert.Equal(t, 1, w.Player.Lives)
	assert.Equal(t, 4, w.EnemyEscapes)
	for _, e := range w.Enemies {
		assert.Equal(t, 1.2, e.Speed)
		assert.Less(t, e.Y, float64(0), "enemies start above the arena")
	}
}

func TestWorldLoadFinalLevelHasBoss(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), testRNG())
	require.NoError(t, err)

	require.NoError(t, w.LoadLevel(3))
	require.Len(t, w.Enemies, 4)
	boss := w.Boss()
	require.NotNil(t, boss)
	assert.Equal(t, float64(250), boss.MaxHealth)
	assert.Equal(t, 1.2, boss.Speed)
	assert.False(t, w.LevelCleared(), "the final level never reports cleared")

	w.EnemiesDefeated = 10
	assert.False(t, w.LevelCleared())
}

func TestWorldLoadUnknownLevel(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), testRNG())
	require.NoError(t, err)

	assert.Error(t, w.LoadLevel(4))
	assert.Equal(t, 1, w.Level, "failed load leaves the level alone")
}

func TestWorldResetStartsOver(t *testing.T) {
	w, err := NewWorld(DefaultConfig(), testRNG())
	require.NoError(t, err)
	session := w.SessionID

	require.NoError(t, w.LoadLevel(3))
	w.Player.Score = 12
	w.EnemyEscapes = 3
	w.Collectibles = append(w.Collectibles, NewCollectible(100, 100, CollectibleExtraLife))

	require.NoError(t, w.Reset())
	assert.Equal(t, 1, w.Level)
	assert.Len(t, w.Enemies, 3)
	assert.Zero(t, w.Player.Score)
	assert.Equal(t, 3, w.Player.Lives)
	assert.Zero(t, w.EnemyEscapes)
	assert.Empty(t, w.Collectibles)
	assert.NotEqual(t, session, w.SessionID)
}

func TestWorldDropsCollectiblesOnTimer(t *testing.T) {
	config := DefaultConfig()
	w, err := NewWorld(config, testRNG())
	require.NoError(t, err)

	for i := 1; i < config.CollectibleSpawnTicks; i++ {
		require.Nil(t, w.UpdateCollectibles())
	}
	c := w.UpdateCollectibles()
	require.NotNil(t, c)
	assert.Len(t, w.Collectibles, 1)
	assert.Zero(t, w.CollectibleTimer)
	assert.Equal(t, float64(-30), c.Y+c.Height/2)
	assert.Contains(t, []CollectibleKind{CollectibleHealthBoost, CollectibleExtraLife, CollectibleScoreBoost}, c.Kind)
}
