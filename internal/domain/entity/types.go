package entity

import "fmt"

// TerrainKind classifies a grid square
type TerrainKind int

const (
	TerrainUnknown TerrainKind = iota
	TerrainGrass
	TerrainPath
	TerrainPathStart
	TerrainSand
)

// String returns the string representation of the terrain kind
func (k TerrainKind) String() string {
	switch k {
	case TerrainGrass:
		return "Grass"
	case TerrainPath:
		return "Path"
	case TerrainPathStart:
		return "PathStart"
	case TerrainSand:
		return "Sand"
	default:
		return "Unknown"
	}
}

// KindOf maps a terrain symbol to its kind
func KindOf(symbol byte) TerrainKind {
	switch {
	case symbol == '.':
		return TerrainGrass
	case symbol == 'P':
		return TerrainPath
	case symbol >= '0' && symbol <= '9':
		return TerrainPathStart
	case symbol == 'x' || symbol == 'X':
		return TerrainSand
	default:
		return TerrainUnknown
	}
}

// Terrain is the immutable grid of terrain symbols
type Terrain struct {
	symbols [NumRows][NumCols]byte
}

// ParseTerrain builds a terrain from NumRows lines of NumCols symbols
func ParseTerrain(rows []string) (*Terrain, error) {
	if len(rows) != NumRows {
		return nil, fmt.Errorf("terrain has %d rows, want %d", len(rows), NumRows)
	}

	t := &Terrain{}
	for r, row := range rows {
		if len(row) != NumCols {
			return nil, fmt.Errorf("terrain row %d has %d columns, want %d", r, len(row), NumCols)
		}
		for c := 0; c < NumCols; c++ {
			t.symbols[r][c] = row[c]
		}
	}
	return t, nil
}

// Symbol returns the raw symbol at a cell, or 0 outside the grid
func (t *Terrain) Symbol(c Cell) byte {
	if !c.InBounds() {
		return 0
	}
	return t.symbols[c.Row][c.Col]
}

// Kind returns the terrain kind at a cell. Cells outside the grid are TerrainUnknown.
func (t *Terrain) Kind(c Cell) TerrainKind {
	if !c.InBounds() {
		return TerrainUnknown
	}
	return KindOf(t.symbols[c.Row][c.Col])
}

// IsPath reports whether enemies may walk on a cell
func (t *Terrain) IsPath(c Cell) bool {
	k := t.Kind(c)
	return k == TerrainPath || k == TerrainPathStart
}

// PathStarts scans the grid for numbered start cells.
// When a digit repeats, the last one in row-major order wins.
func (t *Terrain) PathStarts() map[int]Cell {
	starts := make(map[int]Cell)
	for r := 0; r < NumRows; r++ {
		for c := 0; c < NumCols; c++ {
			s := t.symbols[r][c]
			if s >= '0' && s <= '9' {
				starts[int(s-'0')] = Cell{Row: r, Col: c}
			}
		}
	}
	return starts
}
