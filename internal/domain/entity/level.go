package entity

// WaveKey addresses one roster: the enemies of a wave that walk one path
type WaveKey struct {
	Wave int
	Path int
}

// Roster is the ordered list of enemies for one WaveKey
type Roster struct {
	Key     WaveKey
	Enemies []*Enemy
}

// Level holds the terrain, budget and enemy rosters of one level
type Level struct {
	number    int
	budget    int
	waveIndex int
	terrain   *Terrain
	starts    map[int]Cell

	// Rosters in first-seen order of their key
	rosters []*Roster
}

// NewLevel creates a level with no enemies
func NewLevel(number, budget int, terrain *Terrain) *Level {
	return &Level{
		number:  number,
		budget:  budget,
		terrain: terrain,
		starts:  terrain.PathStarts(),
	}
}

// Number returns the 1-based level number
func (l *Level) Number() int {
	return l.number
}

// Budget returns the level budget used for wave refunds
func (l *Level) Budget() int {
	return l.budget
}

// Terrain returns the level terrain
func (l *Level) Terrain() *Terrain {
	return l.terrain
}

// PathStart returns the spawn cell of a path index
func (l *Level) PathStart(path int) (Cell, bool) {
	c, ok := l.starts[path]
	return c, ok
}

// AddEnemy appends an enemy to the roster of (wave, path)
func (l *Level) AddEnemy(key WaveKey, e *Enemy) {
	for _, r := range l.rosters {
		if r.Key == key {
			r.Enemies = append(r.Enemies, e)
			return
		}
	}
	l.rosters = append(l.rosters, &Roster{Key: key, Enemies: []*Enemy{e}})
}

// Rosters returns the rosters in first-seen order
func (l *Level) Rosters() []*Roster {
	return l.rosters
}

// IsValidTowerLocation reports whether a tower may be built on the cell
func (l *Level) IsValidTowerLocation(c Cell) bool {
	return l.terrain.Kind(c) == TerrainGrass
}

// IsPathCell reports whether enemies may walk on the cell. Out of bounds is false.
func (l *Level) IsPathCell(c Cell) bool {
	return l.terrain.IsPath(c)
}

// NextWave advances the wave index and returns every enemy of that wave
// across all paths. Past the last wave the result is empty.
func (l *Level) NextWave() []*Enemy {
	l.waveIndex++

	var wave []*Enemy
	for _, r := range l.rosters {
		if r.Key.Wave == l.waveIndex {
			wave = append(wave, r.Enemies...)
		}
	}
	return wave
}

// WaveNumber returns the index of the last wave handed out, 0 before the first
func (l *Level) WaveNumber() int {
	return l.waveIndex
}

// TotalWaves returns the number of non-empty (wave, path) rosters.
// A wave split across two paths counts twice.
func (l *Level) TotalWaves() int {
	n := 0
	for _, r := range l.rosters {
		if len(r.Enemies) > 0 {
			n++
		}
	}
	return n
}

// DistinctWaves returns the number of distinct wave indices with enemies
func (l *Level) DistinctWaves() int {
	seen := make(map[int]struct{})
	for _, r := range l.rosters {
		if len(r.Enemies) > 0 {
			seen[r.Key.Wave] = struct{}{}
		}
	}
	return len(seen)
}
