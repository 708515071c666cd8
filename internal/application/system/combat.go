package system

import (
	"github.com/younwookim/griddefense/internal/domain/entity"
)

// CombatSystem owns the live enemies and projectiles
type CombatSystem struct {
	field       entity.Field
	enemies     []*entity.Enemy
	projectiles []*entity.Projectile

	// Event callbacks
	OnEnemyKilled  func(e *entity.Enemy)
	OnEnemyEscaped func(e *entity.Enemy)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(field entity.Field) *CombatSystem {
	return &CombatSystem{
		field:       field,
		enemies:     make([]*entity.Enemy, 0, 32),
		projectiles: make([]*entity.Projectile, 0, 64),
	}
}

// SpawnWave adds a wave, delaying the i-th enemy by i*delayStep ticks
func (s *CombatSystem) SpawnWave(wave []*entity.Enemy, delayStep int) {
	for i, e := range wave {
		e.SetSpawnDelay(i * delayStep)
		s.enemies = append(s.enemies, e)
	}
}

// SpawnProjectile adds a projectile to the live set
func (s *CombatSystem) SpawnProjectile(p *entity.Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// AdvanceEnemies moves every live enemy one tick along the path.
// Returns how many enemies reached the end of the path.
func (s *CombatSystem) AdvanceEnemies(path entity.PathChecker) int {
	escaped := 0
	for _, e := range s.enemies {
		if e.Removed() {
			continue
		}
		if !e.Advance(path) {
			escaped++
			if s.OnEnemyEscaped != nil {
				s.OnEnemyEscaped(e)
			}
		}
	}
	return escaped
}

// FlyProjectiles moves every live projectile and retires those that left the field
func (s *CombatSystem) FlyProjectiles() {
	for _, p := range s.projectiles {
		if p.Removed() {
			continue
		}
		if p.Fly(s.field) {
			p.MarkRemoved()
		}
	}
}

// ResolveCollisions tests every enemy against every projectile, then prunes removed actors.
// A projectile hits at most one enemy. Enemies killed or escaped this tick still
// absorb the projectiles overlapping them.
func (s *CombatSystem) ResolveCollisions() {
	size := s.field.SquareSize()

	for _, e := range s.enemies {
		for _, p := range s.projectiles {
			if p.Removed() {
				continue
			}
			if !p.Intersects(e, size) {
				continue
			}
			wasRemoved := e.Removed()
			e.CollideWith(p)
			if !wasRemoved && e.Removed() && s.OnEnemyKilled != nil {
				s.OnEnemyKilled(e)
			}
		}
	}

	s.prune()
}

func (s *CombatSystem) prune() {
	enemies := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.Removed() {
			enemies = append(enemies, e)
		}
	}
	clear(s.enemies[len(enemies):])
	s.enemies = enemies

	projectiles := s.projectiles[:0]
	for _, p := range s.projectiles {
		if !p.Removed() {
			projectiles = append(projectiles, p)
		}
	}
	clear(s.projectiles[len(projectiles):])
	s.projectiles = projectiles
}

// ClearProjectiles drops every live projectile
func (s *CombatSystem) ClearProjectiles() {
	clear(s.projectiles)
	s.projectiles = s.projectiles[:0]
}

// GetEnemies returns all live enemies
func (s *CombatSystem) GetEnemies() []*entity.Enemy {
	return s.enemies
}

// GetProjectiles returns all live projectiles
func (s *CombatSystem) GetProjectiles() []*entity.Projectile {
	return s.projectiles
}

// HasEnemies returns true while any enemy is alive
func (s *CombatSystem) HasEnemies() bool {
	return len(s.enemies) > 0
}
