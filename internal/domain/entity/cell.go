package entity

// Grid dimensions in cells
const (
	NumRows = 8
	NumCols = 10
)

// Cell addresses one square of the grid
type Cell struct {
	Row, Col int
}

// InBounds reports whether the cell lies inside the grid
func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < NumRows && c.Col >= 0 && c.Col < NumCols
}

// Neighbors returns the adjacent cells in pathing priority order: up, right, down, left.
// Cells outside the grid are included; callers filter them.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row, Col: c.Col + 1},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
	}
}

// PixelX returns the left edge of the cell
func (c Cell) PixelX(squareSize int) int {
	return c.Col * squareSize
}

// PixelY returns the top edge of the cell
func (c Cell) PixelY(squareSize int) int {
	return c.Row * squareSize
}

// Center returns the pixel center of the cell
func (c Cell) Center(squareSize int) (x, y float64) {
	half := float64(squareSize) / 2
	return float64(c.PixelX(squareSize)) + half, float64(c.PixelY(squareSize)) + half
}

// Field is the pixel extent of the playing area
type Field struct {
	Width  int
	Height int
}

// DefaultField returns the 800x640 playing area
func DefaultField() Field {
	return Field{Width: 800, Height: 640}
}

// SquareSize returns the side of one cell in pixels
func (f Field) SquareSize() int {
	return f.Width / NumCols
}

// Contains reports whether a point lies inside the field, edges included
func (f Field) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(f.Width) && y >= 0 && y <= float64(f.Height)
}

// CellAt returns the cell under a pixel coordinate
func (f Field) CellAt(px, py int) (Cell, bool) {
	size := f.SquareSize()
	if px < 0 || py < 0 || size <= 0 {
		return Cell{}, false
	}
	c := Cell{Row: py / size, Col: px / size}
	return c, c.InBounds()
}
