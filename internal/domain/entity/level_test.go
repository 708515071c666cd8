package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var twoPathRows = []string{
	"0PPPP.....",
	"....P.....",
	"....P.....",
	"....P.x...",
	"1P..P.....",
	".P..PPPPPP",
	".P........",
	".PPPPPPPP#",
}

func newTestLevel(t *testing.T) *Level {
	t.Helper()
	terrain, err := ParseTerrain(twoPathRows)
	require.NoError(t, err)
	return NewLevel(2, 8, terrain)
}

func addGrunts(t *testing.T, l *Level, wave, path, n int) {
	t.Helper()
	start, ok := l.PathStart(path)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		l.AddEnemy(WaveKey{Wave: wave, Path: path}, newTestEnemy(t, EnemyGrunt, start))
	}
}

func TestLevel_Queries(t *testing.T) {
	l := newTestLevel(t)

	tests := []struct {
		name      string
		cell      Cell
		buildable bool
		path      bool
	}{
		{"grass", Cell{Row: 1, Col: 0}, true, false},
		{"path", Cell{Row: 0, Col: 1}, false, true},
		{"path start", Cell{Row: 0, Col: 0}, false, true},
		{"sand", Cell{Row: 3, Col: 6}, false, false},
		{"unknown symbol", Cell{Row: 7, Col: 9}, false, false},
		{"out of bounds", Cell{Row: -1, Col: 0}, false, false},
		{"past last column", Cell{Row: 0, Col: NumCols}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.buildable, l.IsValidTowerLocation(tt.cell))
			assert.Equal(t, tt.path, l.IsPathCell(tt.cell))
		})
	}
}

func TestLevel_PathStart(t *testing.T) {
	l := newTestLevel(t)

	start, ok := l.PathStart(1)
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 4, Col: 0}, start)

	_, ok = l.PathStart(5)
	assert.False(t, ok)
}

func TestLevel_NextWave(t *testing.T) {
	l := newTestLevel(t)
	addGrunts(t, l, 1, 0, 2)
	addGrunts(t, l, 2, 1, 1)
	addGrunts(t, l, 1, 1, 3)

	assert.Equal(t, 0, l.WaveNumber())

	first := l.NextWave()
	assert.Len(t, first, 5)
	assert.Equal(t, 1, l.WaveNumber())
	// path 0 roster was seen first
	c, _ := first[0].Cell()
	assert.Equal(t, Cell{Row: 0, Col: 0}, c)
	c, _ = first[4].Cell()
	assert.Equal(t, Cell{Row: 4, Col: 0}, c)

	assert.Len(t, l.NextWave(), 1)
	assert.Empty(t, l.NextWave())
	assert.Equal(t, 3, l.WaveNumber())
}

func TestLevel_TotalWaves_CountsRosters(t *testing.T) {
	l := newTestLevel(t)
	addGrunts(t, l, 1, 0, 2)
	addGrunts(t, l, 1, 1, 1)
	addGrunts(t, l, 2, 0, 1)

	assert.Equal(t, 3, l.TotalWaves())
	assert.Equal(t, 2, l.DistinctWaves())
}

func TestLevel_EnemiesWalkToPathEnd(t *testing.T) {
	l := newTestLevel(t)
	start, _ := l.PathStart(1)
	e := newTestEnemy(t, EnemyGrunt, start)
	e.Pace = 1

	steps := 0
	for e.Advance(l) {
		steps++
		require.Less(t, steps, 100)
	}

	c, _ := e.Cell()
	assert.Equal(t, Cell{Row: 7, Col: 8}, c)
	assert.Equal(t, 11, steps)
	assert.True(t, e.Removed())
}
