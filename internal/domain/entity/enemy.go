package entity

// PathChecker answers whether enemies may walk on a cell
type PathChecker interface {
	IsPathCell(c Cell) bool
}

// Enemy walks the path one cell every Pace ticks
type Enemy struct {
	Kind         EnemyKind
	Level        int
	MaxHitPoints int
	HitPoints    int
	Pace         int
	Armor        int

	// Hitbox size and cosmetic offset from the cell center
	Width, Height    int
	JitterX, JitterY int

	// Negative while a spawn delay is pending
	ticksSinceLastMove int

	current     Cell
	hasCurrent  bool
	previous    Cell
	hasPrevious bool
	removed     bool
}

// SetStart places the enemy on its spawn cell and forgets any previous cell
func (e *Enemy) SetStart(c Cell) {
	e.current = c
	e.hasCurrent = true
	e.hasPrevious = false
}

// SetSpawnDelay holds the enemy in place for extra ticks before its first step.
// Non-positive delays are ignored.
func (e *Enemy) SetSpawnDelay(ticks int) {
	if ticks <= 0 {
		return
	}
	e.ticksSinceLastMove = -ticks
}

// Advance runs one tick of movement.
// Returns false when the enemy has no further path cell and has reached the end.
func (e *Enemy) Advance(path PathChecker) bool {
	e.ticksSinceLastMove++
	if e.ticksSinceLastMove < e.Pace {
		return true
	}
	e.ticksSinceLastMove = 0

	if !e.hasCurrent {
		e.removed = true
		return false
	}

	for _, next := range e.current.Neighbors() {
		if e.hasPrevious && next == e.previous {
			continue
		}
		if !path.IsPathCell(next) {
			continue
		}
		e.previous = e.current
		e.hasPrevious = true
		e.current = next
		return true
	}

	e.removed = true
	return false
}

// CollideWith applies a projectile hit. The projectile is always consumed.
// Armor reduces non-piercing damage, floored at zero.
func (e *Enemy) CollideWith(p *Projectile) {
	damage := p.Damage
	if e.Armor > 0 && !p.ArmorPiercing {
		damage -= e.Armor
		if damage < 0 {
			damage = 0
		}
	}
	e.TakeDamage(damage)
	p.MarkRemoved()
}

// TakeDamage applies damage to the enemy, returns true if it died
func (e *Enemy) TakeDamage(damage int) bool {
	e.HitPoints -= damage
	if e.HitPoints <= 0 {
		e.removed = true
	}
	return e.HitPoints <= 0
}

// IsAlive returns true if enemy is still alive
func (e *Enemy) IsAlive() bool {
	return e.HitPoints > 0 && !e.removed
}

// Removed returns true if the enemy should be pruned
func (e *Enemy) Removed() bool {
	return e.removed
}

// Cell returns the cell the enemy stands on
func (e *Enemy) Cell() (Cell, bool) {
	return e.current, e.hasCurrent
}

// PreviousCell returns the cell the enemy last left
func (e *Enemy) PreviousCell() (Cell, bool) {
	return e.previous, e.hasPrevious
}

// TicksSinceLastMove exposes the movement counter; negative means delayed
func (e *Enemy) TicksSinceLastMove() int {
	return e.ticksSinceLastMove
}

// HitPointRatio returns remaining health in [0, 1] for health bars
func (e *Enemy) HitPointRatio() float64 {
	if e.MaxHitPoints <= 0 || e.HitPoints <= 0 {
		return 0
	}
	return float64(e.HitPoints) / float64(e.MaxHitPoints)
}

// Box returns the hitbox in pixel coordinates
func (e *Enemy) Box(squareSize int) Rect {
	x := e.current.PixelX(squareSize) + squareSize/2 - e.Width/2
	y := e.current.PixelY(squareSize) + squareSize/2 - e.Height/2
	return Rect{X: x + e.JitterX, Y: y + e.JitterY, W: e.Width, H: e.Height}
}
