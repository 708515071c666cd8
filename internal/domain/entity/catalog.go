package entity

import (
	"fmt"
	"image/color"
	"math/rand"
	"strings"
)

// TowerKind identifies a buildable tower type
type TowerKind int

const (
	TowerNone TowerKind = iota
	TowerArcher
	TowerMissile
	TowerCannon
)

// String returns the string representation of the tower kind
func (k TowerKind) String() string {
	switch k {
	case TowerArcher:
		return "Archer"
	case TowerMissile:
		return "Missile"
	case TowerCannon:
		return "Cannon"
	default:
		return "None"
	}
}

// TowerKinds lists every buildable tower kind in menu order
var TowerKinds = []TowerKind{TowerArcher, TowerMissile, TowerCannon}

// ParseTowerKind resolves a tower name such as "Archer" or "archer"
func ParseTowerKind(name string) (TowerKind, error) {
	for _, k := range TowerKinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return TowerNone, fmt.Errorf("tower %q: %w", name, ErrUnsupportedType)
}

// EnemyKind identifies an enemy type
type EnemyKind int

const (
	EnemyGrunt EnemyKind = iota
	EnemyHeavy
)

// String returns the string representation of the enemy kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyGrunt:
		return "Grunt"
	case EnemyHeavy:
		return "Heavy"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// ParseEnemyKind resolves an enemy name from level data
func ParseEnemyKind(name string) (EnemyKind, error) {
	for _, k := range []EnemyKind{EnemyGrunt, EnemyHeavy} {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("enemy %q: %w", name, ErrUnsupportedType)
}

// ProjectileKind identifies a projectile type
type ProjectileKind int

const (
	ProjectileArrow ProjectileKind = iota
	ProjectileMissile
	ProjectileCannonBall
)

// String returns the string representation of the projectile kind
func (k ProjectileKind) String() string {
	switch k {
	case ProjectileArrow:
		return "Arrow"
	case ProjectileMissile:
		return "Missile"
	case ProjectileCannonBall:
		return "CannonBall"
	default:
		return fmt.Sprintf("ProjectileKind(%d)", int(k))
	}
}

// ParseProjectileKind resolves a projectile name such as "cannonBall"
func ParseProjectileKind(name string) (ProjectileKind, error) {
	for _, k := range []ProjectileKind{ProjectileArrow, ProjectileMissile, ProjectileCannonBall} {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("projectile %q: %w", name, ErrUnsupportedType)
}

// TowerColors maps tower kinds to their draw colors
var TowerColors = map[TowerKind]color.RGBA{
	TowerArcher:  {139, 90, 43, 255},
	TowerMissile: {90, 90, 110, 255},
	TowerCannon:  {40, 40, 40, 255},
}

// EnemyColors maps enemy kinds to their draw colors
var EnemyColors = map[EnemyKind]color.RGBA{
	EnemyGrunt: {200, 60, 60, 255},
	EnemyHeavy: {120, 30, 120, 255},
}

type TowerStats struct {
	Cost        int
	UpgradeCost int
	FireRate    int
	Projectile  ProjectileKind
}

type EnemyStats struct {
	HitPoints int
	Pace      int
	Armor     int
	Width     int
	Height    int
}

type ProjectileStats struct {
	Speed          float64
	DamagePerLevel int
	Width          int
	Length         int
	Centered       bool
	ArmorPiercing  bool
}

// Catalog is the closed registry of actor kinds and their constants.
// All towers, enemies and projectiles are built through it.
type Catalog struct {
	Field             Field
	RotateStepDegrees float64

	Towers      map[TowerKind]TowerStats
	Enemies     map[EnemyKind]EnemyStats
	Projectiles map[ProjectileKind]ProjectileStats
}

// DefaultCatalog returns the stock stats
func DefaultCatalog() *Catalog {
	return &Catalog{
		Field:             DefaultField(),
		RotateStepDegrees: 15,
		Towers: map[TowerKind]TowerStats{
			TowerArcher:  {Cost: 1, UpgradeCost: 1, FireRate: 5, Projectile: ProjectileArrow},
			TowerMissile: {Cost: 3, UpgradeCost: 1, FireRate: 12, Projectile: ProjectileMissile},
			TowerCannon:  {Cost: 5, UpgradeCost: 1, FireRate: 20, Projectile: ProjectileCannonBall},
		},
		Enemies: map[EnemyKind]EnemyStats{
			EnemyGrunt: {HitPoints: 2, Pace: 20, Width: 20, Height: 20},
			EnemyHeavy: {HitPoints: 2, Pace: 20, Armor: 1, Width: 20, Height: 20},
		},
		Projectiles: map[ProjectileKind]ProjectileStats{
			ProjectileArrow:      {Speed: 10, DamagePerLevel: 1, Width: 3, Length: 10},
			ProjectileMissile:    {Speed: 10, DamagePerLevel: 1, Width: 3, Length: 10, ArmorPiercing: true},
			ProjectileCannonBall: {Speed: 10, DamagePerLevel: 5, Width: 8, Length: 8, Centered: true},
		},
	}
}

// NewTower builds a level 1 tower of the given kind on a cell
func (c *Catalog) NewTower(id TowerID, kind TowerKind, cell Cell) (*Tower, error) {
	stats, ok := c.Towers[kind]
	if !ok {
		return nil, fmt.Errorf("tower %s: %w", kind, ErrUnsupportedType)
	}
	if _, ok := c.Projectiles[stats.Projectile]; !ok {
		return nil, fmt.Errorf("tower %s projectile %s: %w", kind, stats.Projectile, ErrUnsupportedType)
	}

	return &Tower{
		ID:             id,
		Kind:           kind,
		Cell:           cell,
		Level:          1,
		CostToBuild:    stats.Cost,
		CostToUpgrade:  stats.UpgradeCost,
		FireRate:       stats.FireRate,
		TicksRemaining: stats.FireRate,
		catalog:        c,
	}, nil
}

// NewProjectile builds a projectile at (x, y) flying along angleDeg.
// Damage scales with the level of the firing tower.
func (c *Catalog) NewProjectile(kind ProjectileKind, x, y, angleDeg float64, towerLevel int) (*Projectile, error) {
	stats, ok := c.Projectiles[kind]
	if !ok {
		return nil, fmt.Errorf("projectile %s: %w", kind, ErrUnsupportedType)
	}

	return &Projectile{
		Kind:          kind,
		X:             x,
		Y:             y,
		AngleDegrees:  angleDeg,
		Speed:         stats.Speed,
		Damage:        stats.DamagePerLevel * towerLevel,
		ArmorPiercing: stats.ArmorPiercing,
		Width:         stats.Width,
		Length:        stats.Length,
		Centered:      stats.Centered,
	}, nil
}

// NewEnemy builds an enemy standing on start. Hit points scale with level.
// rng supplies the cosmetic jitter; nil places the enemy dead center.
func (c *Catalog) NewEnemy(kind EnemyKind, level int, start Cell, rng *rand.Rand) (*Enemy, error) {
	stats, ok := c.Enemies[kind]
	if !ok {
		return nil, fmt.Errorf("enemy %s: %w", kind, ErrUnsupportedType)
	}
	if level < 1 {
		level = 1
	}

	e := &Enemy{
		Kind:         kind,
		Level:        level,
		MaxHitPoints: stats.HitPoints * level,
		HitPoints:    stats.HitPoints * level,
		Pace:         stats.Pace,
		Armor:        stats.Armor,
		Width:        stats.Width,
		Height:       stats.Height,
	}
	e.SetStart(start)

	if rng != nil && stats.Width > 0 && stats.Height > 0 {
		e.JitterX = rng.Intn(stats.Width) - stats.Width/2
		e.JitterY = rng.Intn(stats.Height) - stats.Height/2
	}
	return e, nil
}
