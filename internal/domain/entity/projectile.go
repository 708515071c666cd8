package entity

import "math"

// Projectile is a ballistic actor fired by a tower
type Projectile struct {
	Kind          ProjectileKind
	X, Y          float64
	AngleDegrees  float64
	Speed         float64
	Damage        int
	ArmorPiercing bool

	// Box shape
	Width    int
	Length   int
	Centered bool

	removed bool
}

// Fly advances the projectile one step along its launch angle.
// Angles follow screen space: 0 points right, 90 points down.
// Returns true once the projectile is outside the field.
func (p *Projectile) Fly(f Field) bool {
	rad := p.AngleDegrees * math.Pi / 180
	p.X += p.Speed * math.Cos(rad)
	p.Y += p.Speed * math.Sin(rad)
	return !f.Contains(p.X, p.Y)
}

// Box returns the projectile hitbox
func (p *Projectile) Box() Rect {
	if p.Centered {
		return Rect{X: int(p.X) - p.Width/2, Y: int(p.Y) - p.Width/2, W: p.Width, H: p.Width}
	}
	return Rect{X: int(p.X), Y: int(p.Y), W: p.Width, H: p.Length}
}

// Intersects reports whether the projectile box overlaps the enemy box
func (p *Projectile) Intersects(e *Enemy, squareSize int) bool {
	return p.Box().Overlaps(e.Box(squareSize))
}

// MarkRemoved flags the projectile for pruning
func (p *Projectile) MarkRemoved() {
	p.removed = true
}

// Removed returns true if the projectile should be pruned
func (p *Projectile) Removed() bool {
	return p.removed
}
