package system

import "github.com/younwookim/griddefense/internal/domain/entity"

// Intent represents a player action applied to the engine
type Intent interface {
	isIntent()
}

// PlaceTowerIntent builds on an empty cell or rotates/selects an existing tower
type PlaceTowerIntent struct {
	Cell    entity.Cell
	Primary bool // primary button rotates clockwise
}

func (PlaceTowerIntent) isIntent() {}

// UpgradeIntent upgrades the selected tower
type UpgradeIntent struct{}

func (UpgradeIntent) isIntent() {}

// StartWaveIntent releases the next wave
type StartWaveIntent struct{}

func (StartWaveIntent) isIntent() {}

// SelectTowerIntent changes the tower kind built by PlaceTowerIntent
type SelectTowerIntent struct {
	Kind entity.TowerKind
}

func (SelectTowerIntent) isIntent() {}
