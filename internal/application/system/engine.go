package system

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/younwookim/griddefense/internal/application/state"
	"github.com/younwookim/griddefense/internal/domain/entity"
	"github.com/younwookim/griddefense/internal/infrastructure/config"
)

var (
	// ErrGameFinished is returned for intents after game over or victory
	ErrGameFinished = errors.New("game finished")
	// ErrWaveInProgress is returned when ending a wave that still has enemies
	ErrWaveInProgress = errors.New("wave in progress")
)

// Rules are the engine constants outside the entity catalog
type Rules struct {
	StartingLives        int
	SpawnDelayTicks      int
	BudgetWaveMultiplier int
	DefaultTower         entity.TowerKind
	FirstLevel           int
}

// DefaultRules returns the stock rules
func DefaultRules() Rules {
	return Rules{
		StartingLives:        5,
		SpawnDelayTicks:      8,
		BudgetWaveMultiplier: 1,
		DefaultTower:         entity.TowerArcher,
		FirstLevel:           1,
	}
}

// RulesFromConfig converts the rules section of rules.json
func RulesFromConfig(cfg config.GameRules) (Rules, error) {
	kind, err := entity.ParseTowerKind(cfg.DefaultTower)
	if err != nil {
		return Rules{}, fmt.Errorf("default tower: %w", err)
	}
	return Rules{
		StartingLives:        cfg.StartingLives,
		SpawnDelayTicks:      cfg.SpawnDelayTicks,
		BudgetWaveMultiplier: cfg.BudgetWaveMultiplier,
		DefaultTower:         kind,
		FirstLevel:           cfg.FirstLevel,
	}, nil
}

// Engine runs the tower defense simulation.
// It is driven by one caller; methods must not be called concurrently.
type Engine struct {
	catalog *entity.Catalog
	rules   Rules
	levels  LevelSource
	combat  *CombatSystem
	logger  *slog.Logger

	level   *entity.Level
	towers  []*entity.Tower
	lastID  entity.TowerID
	outcome state.Outcome
	ticks   int

	budget       int
	lives        int
	selectedKind entity.TowerKind
	selected     entity.TowerID

	// Event callbacks
	OnEnemyKilled  func(e *entity.Enemy)
	OnEnemyEscaped func(e *entity.Enemy, livesLeft int)
	OnLevelChanged func(level *entity.Level)
}

// NewEngine creates an engine positioned on the first level
func NewEngine(catalog *entity.Catalog, rules Rules, levels LevelSource) (*Engine, error) {
	first, err := levels.Level(rules.FirstLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %d: %w", rules.FirstLevel, err)
	}
	if first == nil {
		return nil, fmt.Errorf("level %d not found", rules.FirstLevel)
	}

	g := &Engine{
		catalog:      catalog,
		rules:        rules,
		levels:       levels,
		combat:       NewCombatSystem(catalog.Field),
		logger:       slog.Default(),
		level:        first,
		budget:       first.Budget(),
		lives:        rules.StartingLives,
		selectedKind: rules.DefaultTower,
	}
	g.combat.OnEnemyKilled = func(e *entity.Enemy) {
		if g.OnEnemyKilled != nil {
			g.OnEnemyKilled(e)
		}
	}
	g.combat.OnEnemyEscaped = func(e *entity.Enemy) {
		g.lives--
		if g.OnEnemyEscaped != nil {
			g.OnEnemyEscaped(e, g.lives)
		}
	}
	return g, nil
}

// SetLogger replaces the structured logger
func (g *Engine) SetLogger(l *slog.Logger) {
	g.logger = l
}

// Tick advances the simulation by one step:
// enemies move, projectiles fly, towers fire, collisions resolve.
func (g *Engine) Tick() state.Outcome {
	if g.outcome.Terminal() {
		return g.outcome
	}
	g.ticks++

	if g.combat.AdvanceEnemies(g.level) > 0 && g.lives <= 0 {
		g.lives = 0
		return g.finish(state.OutcomeGameOver)
	}

	g.combat.FlyProjectiles()

	for _, t := range g.towers {
		if p := t.Update(); p != nil {
			g.combat.SpawnProjectile(p)
		}
	}

	g.combat.ResolveCollisions()
	return state.OutcomeNone
}

// PlaceOrRotateTower builds the selected tower kind on an empty cell.
// On an occupied cell it rotates the tower if selected, otherwise selects it.
// primary rotates clockwise, secondary counter-clockwise.
func (g *Engine) PlaceOrRotateTower(cell entity.Cell, primary bool) error {
	if g.outcome.Terminal() {
		return ErrGameFinished
	}
	if g.selectedKind == entity.TowerNone {
		return nil
	}
	if !g.level.IsValidTowerLocation(cell) {
		return fmt.Errorf("cell %d,%d: %w", cell.Row, cell.Col, entity.ErrInvalidLocation)
	}

	if t := g.towerAt(cell); t != nil {
		if t.ID != g.selected {
			g.selected = t.ID
			return nil
		}
		dir := entity.RotateCounterClockwise
		if primary {
			dir = entity.RotateClockwise
		}
		t.Rotate(dir)
		return nil
	}

	tower, err := g.catalog.NewTower(g.lastID+1, g.selectedKind, cell)
	if err != nil {
		return err
	}
	if tower.CostToBuild > g.budget {
		return fmt.Errorf("%s costs %d, budget %d: %w", tower.Kind, tower.CostToBuild, g.budget, entity.ErrInsufficientBudget)
	}

	g.lastID = tower.ID
	g.budget -= tower.CostToBuild
	g.towers = append(g.towers, tower)
	g.selected = tower.ID
	return nil
}

// UpgradeSelectedTower spends the upgrade cost of the selected tower
func (g *Engine) UpgradeSelectedTower() error {
	if g.outcome.Terminal() {
		return ErrGameFinished
	}
	t := g.selectedTower()
	if t == nil {
		return entity.ErrNoTowerSelected
	}
	if t.CostToUpgrade > g.budget {
		return fmt.Errorf("upgrade costs %d, budget %d: %w", t.CostToUpgrade, g.budget, entity.ErrInsufficientBudget)
	}

	g.budget -= t.CostToUpgrade
	t.Upgrade()
	return nil
}

// StartWave releases the next wave with staggered spawn delays.
// Returns false if a wave is already active or the game has finished.
func (g *Engine) StartWave() bool {
	if g.outcome.Terminal() || g.IsActiveWave() {
		return false
	}

	wave := g.level.NextWave()
	g.combat.SpawnWave(wave, g.rules.SpawnDelayTicks)
	g.logger.Info("wave started",
		"level", g.level.Number(),
		"wave", g.level.WaveNumber(),
		"enemies", len(wave))
	return true
}

// EndWave refunds budget for the finished wave and, after the final wave,
// moves to the next level or declares victory.
// The next level is loaded before anything is paid, so a failed load leaves
// the engine untouched and the call can be retried.
func (g *Engine) EndWave() (state.Outcome, error) {
	if g.outcome.Terminal() {
		return g.outcome, ErrGameFinished
	}
	if g.IsActiveWave() {
		return state.OutcomeNone, ErrWaveInProgress
	}

	wave := g.level.WaveNumber()
	final := wave >= g.level.TotalWaves()

	var next *entity.Level
	if final {
		var err error
		next, err = g.levels.Level(g.level.Number() + 1)
		if err != nil {
			return state.OutcomeNone, fmt.Errorf("failed to load level %d: %w", g.level.Number()+1, err)
		}
	}

	g.combat.ClearProjectiles()
	refund := g.rules.BudgetWaveMultiplier * wave * g.level.Budget()
	g.budget += refund
	g.logger.Info("wave ended",
		"level", g.level.Number(),
		"wave", wave,
		"refund", refund,
		"budget", g.budget)

	if !final {
		return state.OutcomeNone, nil
	}

	g.towers = nil
	g.selected = 0
	if next == nil {
		return g.finish(state.OutcomeVictory), nil
	}

	g.level = next
	g.logger.Info("level advanced", "level", next.Number(), "budget", g.budget)
	if g.OnLevelChanged != nil {
		g.OnLevelChanged(next)
	}
	return state.OutcomeLevelComplete, nil
}

// Apply dispatches an intent to the matching operation
func (g *Engine) Apply(intent Intent) error {
	if g.outcome.Terminal() {
		return ErrGameFinished
	}
	switch i := intent.(type) {
	case PlaceTowerIntent:
		return g.PlaceOrRotateTower(i.Cell, i.Primary)
	case UpgradeIntent:
		return g.UpgradeSelectedTower()
	case StartWaveIntent:
		g.StartWave()
		return nil
	case SelectTowerIntent:
		g.SetSelectedTowerType(i.Kind)
		return nil
	default:
		return fmt.Errorf("intent %T: %w", intent, entity.ErrUnsupportedType)
	}
}

// IsActiveWave returns true while enemies are alive
func (g *Engine) IsActiveWave() bool {
	return g.combat.HasEnemies()
}

// SetSelectedTowerType sets the kind built by PlaceOrRotateTower. TowerNone disables building.
func (g *Engine) SetSelectedTowerType(kind entity.TowerKind) {
	g.selectedKind = kind
}

// SelectedTowerType returns the kind built by PlaceOrRotateTower
func (g *Engine) SelectedTowerType() entity.TowerKind {
	return g.selectedKind
}

// Budget returns the remaining budget
func (g *Engine) Budget() int {
	return g.budget
}

// Lives returns the remaining lives
func (g *Engine) Lives() int {
	return g.lives
}

// WaveNumber returns the current wave of the current level
func (g *Engine) WaveNumber() int {
	return g.level.WaveNumber()
}

// TotalWaves returns the wave count of the current level
func (g *Engine) TotalWaves() int {
	return g.level.TotalWaves()
}

// Level returns the current level
func (g *Engine) Level() *entity.Level {
	return g.level
}

// Outcome returns the terminal outcome, or OutcomeNone while playing
func (g *Engine) Outcome() state.Outcome {
	return g.outcome
}

// Ticks returns the number of processed ticks
func (g *Engine) Ticks() int {
	return g.ticks
}

func (g *Engine) finish(o state.Outcome) state.Outcome {
	g.outcome = o
	g.logger.Info("game finished",
		"outcome", o.String(),
		"level", g.level.Number(),
		"wave", g.level.WaveNumber(),
		"lives", g.lives,
		"budget", g.budget)
	return o
}

func (g *Engine) towerAt(cell entity.Cell) *entity.Tower {
	for _, t := range g.towers {
		if t.Cell == cell {
			return t
		}
	}
	return nil
}

func (g *Engine) selectedTower() *entity.Tower {
	if g.selected == 0 {
		return nil
	}
	for _, t := range g.towers {
		if t.ID == g.selected {
			return t
		}
	}
	return nil
}
