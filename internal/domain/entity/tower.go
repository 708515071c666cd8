package entity

// TowerID identifies a placed tower within a level. Zero means none.
type TowerID uint32

// Rotation is the direction a tower turns
type Rotation int

const (
	// RotateClockwise increases the angle, turning downward on screen
	RotateClockwise Rotation = 1
	// RotateCounterClockwise decreases the angle
	RotateCounterClockwise Rotation = -1
)

// Tower is a stationary actor that fires every FireRate ticks
type Tower struct {
	ID    TowerID
	Kind  TowerKind
	Cell  Cell
	Level int

	CostToBuild   int
	CostToUpgrade int

	FireRate       int
	TicksRemaining int

	LaunchAngleDegrees float64

	catalog *Catalog
}

// Update counts down one tick and fires when the countdown hits zero.
// Returns nil on ticks without a shot.
func (t *Tower) Update() *Projectile {
	t.TicksRemaining--
	if t.TicksRemaining > 0 {
		return nil
	}
	t.TicksRemaining = t.FireRate

	stats := t.catalog.Towers[t.Kind]
	x, y := t.Cell.Center(t.catalog.Field.SquareSize())
	p, err := t.catalog.NewProjectile(stats.Projectile, x, y, t.LaunchAngleDegrees, t.Level)
	if err != nil {
		// NewTower validated the projectile kind
		return nil
	}
	return p
}

// Rotate turns the launch angle by one step
func (t *Tower) Rotate(dir Rotation) {
	t.LaunchAngleDegrees += float64(dir) * t.catalog.RotateStepDegrees
}

// Upgrade raises the level and doubles the next upgrade cost
func (t *Tower) Upgrade() {
	t.Level++
	t.CostToUpgrade *= 2
}
