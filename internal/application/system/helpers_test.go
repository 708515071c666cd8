package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/griddefense/internal/domain/entity"
	"github.com/younwookim/griddefense/internal/infrastructure/config"
)

// straightRows is a start cell followed by five path cells along row 0
var straightRows = []string{
	"0PPPPP....",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
}

// fakeLevels builds a fresh level from config on every request
type fakeLevels struct {
	levels map[int]*config.LevelConfig
	err    error
}

func (f *fakeLevels) Level(n int) (*entity.Level, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg, ok := f.levels[n]
	if !ok {
		return nil, nil
	}
	return LoadLevel(cfg, entity.DefaultCatalog(), nil)
}

func grunts(wave, n int) []config.EnemySpawnConfig {
	spawns := make([]config.EnemySpawnConfig, n)
	for i := range spawns {
		spawns[i] = config.EnemySpawnConfig{Type: "Grunt", Level: 1, Wave: wave, Path: 0}
	}
	return spawns
}

func levelConfig(number, budget int, spawns ...[]config.EnemySpawnConfig) *config.LevelConfig {
	cfg := &config.LevelConfig{
		Number:  number,
		Budget:  budget,
		Terrain: straightRows,
	}
	for _, s := range spawns {
		cfg.Enemies = append(cfg.Enemies, s...)
	}
	return cfg
}

func newTestEngine(t *testing.T, levels ...*config.LevelConfig) *Engine {
	t.Helper()
	src := &fakeLevels{levels: make(map[int]*config.LevelConfig)}
	for _, l := range levels {
		src.levels[l.Number] = l
	}
	g, err := NewEngine(entity.DefaultCatalog(), DefaultRules(), src)
	require.NoError(t, err)
	return g
}

func tickN(g *Engine, n int) {
	for i := 0; i < n; i++ {
		g.Tick()
	}
}
