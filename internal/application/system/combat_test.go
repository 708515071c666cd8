package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/griddefense/internal/domain/entity"
)

func newCombatEnemy(t *testing.T, kind entity.EnemyKind, cell entity.Cell) *entity.Enemy {
	t.Helper()
	e, err := entity.DefaultCatalog().NewEnemy(kind, 1, cell, nil)
	require.NoError(t, err)
	return e
}

func TestCombatSystem_SpawnWave_Staggers(t *testing.T) {
	s := NewCombatSystem(entity.DefaultField())
	wave := []*entity.Enemy{
		newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{}),
		newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{}),
		newCombatEnemy(t, entity.EnemyHeavy, entity.Cell{}),
	}

	s.SpawnWave(wave, 8)

	require.Len(t, s.GetEnemies(), 3)
	assert.Equal(t, 0, wave[0].TicksSinceLastMove())
	assert.Equal(t, -8, wave[1].TicksSinceLastMove())
	assert.Equal(t, -16, wave[2].TicksSinceLastMove())
	assert.True(t, s.HasEnemies())
}

func TestCombatSystem_FlyProjectiles_PrunesOutOfBounds(t *testing.T) {
	s := NewCombatSystem(entity.DefaultField())
	s.SpawnProjectile(&entity.Projectile{X: 795, Y: 100, Speed: 10})
	s.SpawnProjectile(&entity.Projectile{X: 100, Y: 100, Speed: 10})

	s.FlyProjectiles()
	s.ResolveCollisions()

	require.Len(t, s.GetProjectiles(), 1)
	assert.Equal(t, 110.0, s.GetProjectiles()[0].X)
}

func TestCombatSystem_ResolveCollisions(t *testing.T) {
	t.Run("projectile hits only one enemy", func(t *testing.T) {
		s := NewCombatSystem(entity.DefaultField())
		first := newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{})
		second := newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{})
		s.SpawnWave([]*entity.Enemy{first, second}, 0)
		s.SpawnProjectile(&entity.Projectile{X: 40, Y: 40, Damage: 1, Width: 3, Length: 10})

		s.ResolveCollisions()

		assert.Equal(t, 1, first.HitPoints)
		assert.Equal(t, 2, second.HitPoints)
		assert.Empty(t, s.GetProjectiles())
		assert.Len(t, s.GetEnemies(), 2)
	})

	t.Run("overkill projectiles are consumed", func(t *testing.T) {
		s := NewCombatSystem(entity.DefaultField())
		var killed []*entity.Enemy
		s.OnEnemyKilled = func(e *entity.Enemy) { killed = append(killed, e) }

		target := newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{})
		other := newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{Row: 5, Col: 5})
		s.SpawnWave([]*entity.Enemy{target, other}, 0)
		s.SpawnProjectile(&entity.Projectile{X: 40, Y: 40, Damage: 1, Width: 3, Length: 10})
		s.SpawnProjectile(&entity.Projectile{X: 35, Y: 35, Damage: 1, Width: 3, Length: 10})
		s.SpawnProjectile(&entity.Projectile{X: 42, Y: 42, Damage: 1, Width: 3, Length: 10})

		s.ResolveCollisions()

		assert.Equal(t, []*entity.Enemy{target}, killed)
		assert.Equal(t, []*entity.Enemy{other}, s.GetEnemies())
		assert.Empty(t, s.GetProjectiles(), "all three arrows overlap the dying grunt")
		assert.Equal(t, 2, other.HitPoints)
	})

	t.Run("escaped enemy absorbs projectiles", func(t *testing.T) {
		s := NewCombatSystem(entity.DefaultField())
		var killed []*entity.Enemy
		s.OnEnemyKilled = func(e *entity.Enemy) { killed = append(killed, e) }

		runner := newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{Row: 3, Col: 3})
		runner.Pace = 1
		s.SpawnWave([]*entity.Enemy{runner}, 0)

		terrain, err := entity.ParseTerrain(straightRows)
		require.NoError(t, err)
		require.Equal(t, 1, s.AdvanceEnemies(entity.NewLevel(1, 0, terrain)))

		s.SpawnProjectile(&entity.Projectile{X: 280, Y: 280, Damage: 1, Width: 3, Length: 10})
		s.ResolveCollisions()

		assert.Empty(t, s.GetProjectiles())
		assert.False(t, s.HasEnemies())
		assert.Empty(t, killed, "an escape is not a kill")
	})

	t.Run("armor consumes weak projectiles", func(t *testing.T) {
		s := NewCombatSystem(entity.DefaultField())
		heavy := newCombatEnemy(t, entity.EnemyHeavy, entity.Cell{})
		s.SpawnWave([]*entity.Enemy{heavy}, 0)
		s.SpawnProjectile(&entity.Projectile{X: 40, Y: 40, Damage: 1, Width: 3, Length: 10})

		s.ResolveCollisions()

		assert.Equal(t, 2, heavy.HitPoints)
		assert.Empty(t, s.GetProjectiles())
	})
}

func TestCombatSystem_AdvanceEnemies(t *testing.T) {
	s := NewCombatSystem(entity.DefaultField())
	var escaped []*entity.Enemy
	s.OnEnemyEscaped = func(e *entity.Enemy) { escaped = append(escaped, e) }

	stuck := newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{Row: 3, Col: 3})
	stuck.Pace = 1
	s.SpawnWave([]*entity.Enemy{stuck}, 0)

	terrain, err := entity.ParseTerrain(straightRows)
	require.NoError(t, err)
	level := entity.NewLevel(1, 0, terrain)

	assert.Equal(t, 1, s.AdvanceEnemies(level))
	assert.Equal(t, []*entity.Enemy{stuck}, escaped)
	// removed enemies are skipped until pruned
	assert.Equal(t, 0, s.AdvanceEnemies(level))

	s.ResolveCollisions()
	assert.False(t, s.HasEnemies())
}

func TestCombatSystem_Clear(t *testing.T) {
	s := NewCombatSystem(entity.DefaultField())
	s.SpawnWave([]*entity.Enemy{newCombatEnemy(t, entity.EnemyGrunt, entity.Cell{})}, 0)
	s.SpawnProjectile(&entity.Projectile{})

	s.ClearProjectiles()
	assert.Empty(t, s.GetProjectiles())
	assert.True(t, s.HasEnemies())
}
