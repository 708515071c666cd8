package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTower(t *testing.T, kind TowerKind) *Tower {
	t.Helper()
	tower, err := DefaultCatalog().NewTower(1, kind, Cell{Row: 2, Col: 3})
	require.NoError(t, err)
	return tower
}

func TestCatalog_NewTower(t *testing.T) {
	tests := []struct {
		kind     TowerKind
		cost     int
		fireRate int
	}{
		{TowerArcher, 1, 5},
		{TowerMissile, 3, 12},
		{TowerCannon, 5, 20},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tower := newTestTower(t, tt.kind)
			assert.Equal(t, 1, tower.Level)
			assert.Equal(t, tt.cost, tower.CostToBuild)
			assert.Equal(t, 1, tower.CostToUpgrade)
			assert.Equal(t, tt.fireRate, tower.FireRate)
			assert.Equal(t, tt.fireRate, tower.TicksRemaining)
			assert.Equal(t, 0.0, tower.LaunchAngleDegrees)
		})
	}

	_, err := DefaultCatalog().NewTower(1, TowerNone, Cell{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestTower_FireCadence(t *testing.T) {
	tower := newTestTower(t, TowerArcher)

	var fired []int
	for tick := 1; tick <= 20; tick++ {
		if p := tower.Update(); p != nil {
			fired = append(fired, tick)
		}
	}

	assert.Equal(t, []int{5, 10, 15, 20}, fired)
}

func TestTower_ProjectileFromCellCenter(t *testing.T) {
	tower := newTestTower(t, TowerCannon)
	tower.Upgrade()
	tower.Rotate(RotateClockwise)

	var p *Projectile
	for i := 0; i < tower.FireRate; i++ {
		p = tower.Update()
	}
	require.NotNil(t, p)

	assert.Equal(t, ProjectileCannonBall, p.Kind)
	assert.Equal(t, 280.0, p.X)
	assert.Equal(t, 200.0, p.Y)
	assert.Equal(t, 15.0, p.AngleDegrees)
	assert.Equal(t, 10, p.Damage)
}

func TestTower_Upgrade(t *testing.T) {
	tower := newTestTower(t, TowerArcher)
	initial := tower.CostToUpgrade

	for k := 1; k <= 6; k++ {
		tower.Upgrade()
		assert.Equal(t, initial<<k, tower.CostToUpgrade)
		assert.Equal(t, 1+k, tower.Level)
	}
}

func TestTower_Rotate(t *testing.T) {
	tower := newTestTower(t, TowerMissile)

	tower.Rotate(RotateClockwise)
	tower.Rotate(RotateClockwise)
	assert.Equal(t, 30.0, tower.LaunchAngleDegrees)

	tower.Rotate(RotateCounterClockwise)
	assert.Equal(t, 15.0, tower.LaunchAngleDegrees)
	assert.Equal(t, 12, tower.FireRate)
	assert.Equal(t, 3, tower.CostToBuild)
}

func TestParseTowerKind(t *testing.T) {
	tests := []struct {
		name    string
		want    TowerKind
		wantErr bool
	}{
		{"Archer", TowerArcher, false},
		{"missile", TowerMissile, false},
		{"CANNON", TowerCannon, false},
		{"Catapult", TowerNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTowerKind(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
