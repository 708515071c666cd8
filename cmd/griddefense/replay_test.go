package main

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/griddefense/internal/application/replay"
	"github.com/younwookim/griddefense/internal/application/state"
	"github.com/younwookim/griddefense/internal/domain/entity"
)

func TestConfigSource(t *testing.T) {
	fsys, err := configSource("")
	require.NoError(t, err)

	_, err = fsys.Open("levels/level01.csv")
	assert.NoError(t, err)

	_, err = configSource("does-not-exist")
	assert.Error(t, err)
}

func TestNewSession(t *testing.T) {
	fsys, err := configSource("")
	require.NoError(t, err)

	engine, cfg, err := newSession(fsys, 1)
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Rules.Display.ScreenWidth)
	assert.Equal(t, 1, engine.Level().Number())
	assert.Equal(t, 5, engine.Budget())
	assert.Equal(t, 5, engine.Lives())
	assert.Equal(t, entity.TowerArcher, engine.SelectedTowerType())
}

func TestNewSession_BadRules(t *testing.T) {
	fsys := fstest.MapFS{
		"rules.json": {Data: []byte(`{"rules": {"defaultTower": "laser"}}`)},
	}
	_, _, err := newSession(fsys, 1)
	assert.ErrorIs(t, err, entity.ErrUnsupportedType)
}

func TestRunReplay_FirstWaveUndefended(t *testing.T) {
	fsys, err := configSource("")
	require.NoError(t, err)
	engine, _, err := newSession(fsys, 3)
	require.NoError(t, err)

	data := replay.ReplayData{
		Seed:   3,
		Level:  1,
		Pulses: 1000,
		Frames: []replay.FrameIntent{
			{T: 0, K: replay.KindStartWave},
		},
	}

	res, err := runReplay(engine, data, 0)
	require.NoError(t, err)

	// three grunts walk the whole path, then the wave closes with a refund
	assert.Equal(t, state.OutcomeNone, res.Outcome)
	assert.Equal(t, 1000, res.Pulses)
	assert.Equal(t, 2, engine.Lives())
	assert.Equal(t, 1, engine.WaveNumber())
	assert.Equal(t, 10, engine.Budget())
	assert.False(t, engine.IsActiveWave())
}

func TestRunReplay_MaxPulses(t *testing.T) {
	fsys, err := configSource("")
	require.NoError(t, err)
	engine, _, err := newSession(fsys, 3)
	require.NoError(t, err)

	data := replay.ReplayData{
		Pulses: 1000,
		Frames: []replay.FrameIntent{
			{T: 0, K: replay.KindPlace, R: 0, C: 0, P: true},
			{T: 0, K: replay.KindStartWave},
		},
	}

	res, err := runReplay(engine, data, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, res.Pulses)
	assert.Equal(t, 10, engine.Ticks())
	assert.Equal(t, 4, engine.Budget())
	assert.True(t, engine.IsActiveWave())
}

func TestRunReplay_LevelMismatch(t *testing.T) {
	fsys, err := configSource("")
	require.NoError(t, err)
	engine, _, err := newSession(fsys, 3)
	require.NoError(t, err)

	data := replay.ReplayData{
		Level:  2,
		Pulses: 10,
		Frames: []replay.FrameIntent{{T: 0, K: replay.KindStartWave}},
	}

	_, err = runReplay(engine, data, 0)
	assert.ErrorContains(t, err, "replay starts on level 2")
	assert.Equal(t, 0, engine.Ticks())
	assert.False(t, engine.IsActiveWave())
}
