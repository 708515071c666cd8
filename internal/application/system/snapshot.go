package system

import (
	"github.com/younwookim/griddefense/internal/application/state"
	"github.com/younwookim/griddefense/internal/domain/entity"
)

// TowerView is a read-only copy of a tower for rendering
type TowerView struct {
	ID                 entity.TowerID
	Kind               entity.TowerKind
	Cell               entity.Cell
	Level              int
	CostToUpgrade      int
	LaunchAngleDegrees float64
}

// EnemyView is a read-only copy of an enemy for rendering
type EnemyView struct {
	Kind          entity.EnemyKind
	Cell          entity.Cell
	Box           entity.Rect
	HitPointRatio float64
	// Delayed enemies have not left their spawn cell yet
	Delayed bool
}

// ProjectileView is a read-only copy of a projectile for rendering
type ProjectileView struct {
	Kind         entity.ProjectileKind
	X, Y         float64
	AngleDegrees float64
	Box          entity.Rect
}

// Snapshot is the state a renderer needs for one frame
type Snapshot struct {
	Tick       int
	Budget     int
	Lives      int
	Level      int
	Wave       int
	TotalWaves int
	ActiveWave bool
	Outcome    state.Outcome

	// DistinctWaves counts wave indices rather than (wave, path) rosters
	DistinctWaves int

	SelectedKind entity.TowerKind
	Selected     *TowerView

	Terrain     *entity.Terrain
	SquareSize  int
	Towers      []TowerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
}

// Snapshot copies the current state
func (g *Engine) Snapshot() Snapshot {
	size := g.catalog.Field.SquareSize()
	snap := Snapshot{
		Tick:         g.ticks,
		Budget:       g.budget,
		Lives:        g.lives,
		Level:        g.level.Number(),
		Wave:         g.level.WaveNumber(),
		TotalWaves:   g.level.TotalWaves(),
		ActiveWave:   g.IsActiveWave(),
		Outcome:      g.outcome,
		SelectedKind: g.selectedKind,

		DistinctWaves: g.level.DistinctWaves(),

		Terrain:      g.level.Terrain(),
		SquareSize:   size,
		Towers:       make([]TowerView, 0, len(g.towers)),
		Enemies:      make([]EnemyView, 0, len(g.combat.GetEnemies())),
		Projectiles:  make([]ProjectileView, 0, len(g.combat.GetProjectiles())),
	}

	for _, t := range g.towers {
		v := towerView(t)
		snap.Towers = append(snap.Towers, v)
		if t.ID == g.selected {
			sel := v
			snap.Selected = &sel
		}
	}

	for _, e := range g.combat.GetEnemies() {
		cell, _ := e.Cell()
		snap.Enemies = append(snap.Enemies, EnemyView{
			Kind:          e.Kind,
			Cell:          cell,
			Box:           e.Box(size),
			HitPointRatio: e.HitPointRatio(),
			Delayed:       e.TicksSinceLastMove() < 0,
		})
	}

	for _, p := range g.combat.GetProjectiles() {
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Kind:         p.Kind,
			X:            p.X,
			Y:            p.Y,
			AngleDegrees: p.AngleDegrees,
			Box:          p.Box(),
		})
	}

	return snap
}

// SelectedTower returns a copy of the selected tower
func (g *Engine) SelectedTower() (TowerView, bool) {
	t := g.selectedTower()
	if t == nil {
		return TowerView{}, false
	}
	return towerView(t), true
}

func towerView(t *entity.Tower) TowerView {
	return TowerView{
		ID:                 t.ID,
		Kind:               t.Kind,
		Cell:               t.Cell,
		Level:              t.Level,
		CostToUpgrade:      t.CostToUpgrade,
		LaunchAngleDegrees: t.LaunchAngleDegrees,
	}
}
