package system

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"

	"github.com/younwookim/griddefense/internal/domain/entity"
	"github.com/younwookim/griddefense/internal/infrastructure/config"
)

// NewCatalog converts the rules and entity configs into an entity catalog
func NewCatalog(cfg *config.GameConfig) (*entity.Catalog, error) {
	c := &entity.Catalog{
		Field: entity.Field{
			Width:  cfg.Rules.Display.ScreenWidth,
			Height: cfg.Rules.Display.ScreenHeight,
		},
		RotateStepDegrees: cfg.Rules.Rules.RotateStepDegrees,
		Towers:            make(map[entity.TowerKind]entity.TowerStats),
		Enemies:           make(map[entity.EnemyKind]entity.EnemyStats),
		Projectiles:       make(map[entity.ProjectileKind]entity.ProjectileStats),
	}

	for name, p := range cfg.Entities.Projectiles {
		kind, err := entity.ParseProjectileKind(name)
		if err != nil {
			return nil, err
		}
		c.Projectiles[kind] = entity.ProjectileStats{
			Speed:          p.Speed,
			DamagePerLevel: p.DamagePerLevel,
			Width:          p.Width,
			Length:         p.Length,
			Centered:       p.Centered,
			ArmorPiercing:  p.ArmorPiercing,
		}
	}

	for name, t := range cfg.Entities.Towers {
		kind, err := entity.ParseTowerKind(name)
		if err != nil {
			return nil, err
		}
		projectile, err := entity.ParseProjectileKind(t.Projectile)
		if err != nil {
			return nil, fmt.Errorf("tower %s: %w", name, err)
		}
		c.Towers[kind] = entity.TowerStats{
			Cost:        t.Cost,
			UpgradeCost: t.UpgradeCost,
			FireRate:    t.FireRate,
			Projectile:  projectile,
		}
	}

	for name, e := range cfg.Entities.Enemies {
		kind, err := entity.ParseEnemyKind(name)
		if err != nil {
			return nil, err
		}
		c.Enemies[kind] = entity.EnemyStats{
			HitPoints: e.HitPoints,
			Pace:      e.Pace,
			Armor:     e.Armor,
			Width:     e.Width,
			Height:    e.Height,
		}
	}

	return c, nil
}

// LoadLevel converts a LevelConfig into a Level entity with its enemies bound to their path starts
func LoadLevel(cfg *config.LevelConfig, catalog *entity.Catalog, rng *rand.Rand) (*entity.Level, error) {
	terrain, err := entity.ParseTerrain(cfg.Terrain)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", cfg.Number, err)
	}

	level := entity.NewLevel(cfg.Number, cfg.Budget, terrain)
	for _, spawn := range cfg.Enemies {
		kind, err := entity.ParseEnemyKind(spawn.Type)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", cfg.Number, err)
		}
		start, ok := level.PathStart(spawn.Path)
		if !ok {
			return nil, fmt.Errorf("level %d: no start cell for path %d", cfg.Number, spawn.Path)
		}
		enemy, err := catalog.NewEnemy(kind, spawn.Level, start, rng)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", cfg.Number, err)
		}
		level.AddEnemy(entity.WaveKey{Wave: spawn.Wave, Path: spawn.Path}, enemy)
	}

	return level, nil
}

// LevelSource provides levels by number
type LevelSource interface {
	// Level returns level n, or nil without error when no such level exists.
	Level(n int) (*entity.Level, error)
}

// FileLevelSource reads levels/levelNN.csv through a config loader
type FileLevelSource struct {
	loader  *config.Loader
	catalog *entity.Catalog
	rng     *rand.Rand
}

// NewFileLevelSource creates a level source. rng drives enemy jitter and may be nil.
func NewFileLevelSource(loader *config.Loader, catalog *entity.Catalog, rng *rand.Rand) *FileLevelSource {
	return &FileLevelSource{
		loader:  loader,
		catalog: catalog,
		rng:     rng,
	}
}

// Level loads and converts level n
func (s *FileLevelSource) Level(n int) (*entity.Level, error) {
	cfg, err := s.loader.LoadLevel(n)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return LoadLevel(cfg, s.catalog, s.rng)
}
