package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/griddefense/internal/application/state"
	"github.com/younwookim/griddefense/internal/domain/entity"
)

func TestWaveRunner_RunsWaveToEnd(t *testing.T) {
	g := newTestEngine(t, levelConfig(1, 5, grunts(1, 2), grunts(2, 1)))
	r := NewWaveRunner(g)

	assert.False(t, r.Running())
	outcome, err := r.Step()
	require.NoError(t, err)
	assert.Equal(t, state.OutcomeNone, outcome)
	assert.Equal(t, 0, g.Ticks(), "idle runner does not tick")

	require.True(t, r.Start())
	assert.False(t, r.Start(), "already running")

	steps := 0
	for r.Running() {
		_, err := r.Step()
		require.NoError(t, err)
		steps++
		require.Less(t, steps, 1000)
	}

	// two escapes at ticks 120 and 128, then one pulse to close the wave
	assert.Equal(t, 128, g.Ticks())
	assert.Equal(t, 129, steps)
	assert.Equal(t, 3, g.Lives())
	assert.Equal(t, 10, g.Budget())
	assert.Equal(t, 1, g.WaveNumber())
}

func TestWaveRunner_EmptyWaveEndsImmediately(t *testing.T) {
	// rosters for waves 1 and 3 give a total of two, so wave 2 is empty and final
	g := newTestEngine(t,
		levelConfig(1, 5, grunts(1, 1), grunts(3, 1)),
		levelConfig(2, 5, grunts(1, 1)),
	)
	r := NewWaveRunner(g)

	require.True(t, r.Start())
	for r.Running() {
		_, err := r.Step()
		require.NoError(t, err)
	}
	require.Equal(t, 1, g.Level().Number())

	require.True(t, r.Start())
	assert.False(t, g.IsActiveWave())

	outcome, err := r.Step()
	require.NoError(t, err)
	assert.Equal(t, state.OutcomeLevelComplete, outcome)
	assert.False(t, r.Running())
	assert.Equal(t, 2, g.Level().Number())
}

func TestWaveRunner_StopsOnGameOver(t *testing.T) {
	g := newTestEngine(t, levelConfig(1, 5, grunts(1, 6)))
	r := NewWaveRunner(g)
	require.True(t, r.Start())

	var outcome state.Outcome
	for r.Running() {
		var err error
		outcome, err = r.Step()
		require.NoError(t, err)
	}

	assert.Equal(t, state.OutcomeGameOver, outcome)
	assert.False(t, r.Start())
	assert.Equal(t, entity.TowerArcher, g.SelectedTowerType())
}

func TestWaveRunner_Apply(t *testing.T) {
	g := newTestEngine(t, levelConfig(1, 5, grunts(1, 1)))
	r := NewWaveRunner(g)

	require.NoError(t, r.Apply(PlaceTowerIntent{Cell: entity.Cell{Row: 1, Col: 1}, Primary: true}))
	assert.Equal(t, 4, g.Budget())

	require.NoError(t, r.Apply(StartWaveIntent{}))
	assert.True(t, r.Running())
	assert.True(t, g.IsActiveWave())

	require.NoError(t, r.Apply(StartWaveIntent{}), "second start is ignored")
	assert.Equal(t, 1, g.WaveNumber())

	err := r.Apply(UpgradeIntent{})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Budget())
}
