package entity

// Rect is an axis-aligned hitbox in pixel coordinates
type Rect struct {
	X, Y int
	W, H int
}

// Overlaps reports whether two rects intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}
