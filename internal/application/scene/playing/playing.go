// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/griddefense/internal/application/scene"
	"github.com/younwookim/griddefense/internal/application/state"
	"github.com/younwookim/griddefense/internal/application/system"
	"github.com/younwookim/griddefense/internal/domain/entity"
	"github.com/younwookim/griddefense/internal/infrastructure/config"
)

// HUDHeight is the strip below the grid used for status text
const HUDHeight = 40

// statusPulses is how long a HUD message stays up
const statusPulses = 40

// Colors for rendering
var (
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorGrass     = color.RGBA{0, 228, 71, 255}
	colorPath      = color.RGBA{45, 47, 87, 255}
	colorStart     = color.RGBA{255, 236, 39, 255}
	colorSand      = color.RGBA{248, 121, 23, 180}
	colorGrid      = color.RGBA{0, 0, 0, 60}
	colorSelected  = color.RGBA{255, 255, 255, 255}
	colorBarrel    = color.RGBA{230, 230, 230, 255}
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorText      = color.RGBA{240, 240, 240, 255}
	colorWarning   = color.RGBA{255, 140, 120, 255}
	colorGameOver  = color.RGBA{100, 0, 0, 180}
	colorVictory   = color.RGBA{0, 60, 120, 180}
	colorHUDBorder = color.RGBA{80, 80, 100, 255}

	projectileColors = map[entity.ProjectileKind]color.RGBA{
		entity.ProjectileArrow:      {60, 40, 20, 255},
		entity.ProjectileMissile:    {220, 60, 20, 255},
		entity.ProjectileCannonBall: {10, 10, 10, 255},
	}
)

// Playing is the main gameplay scene
type Playing struct {
	engine *system.Engine
	runner *system.WaveRunner
	input  *system.InputSystem
	field  entity.Field
	phase  state.Phase

	// Timer pulses
	pulseSeconds float64
	elapsed      float64

	face      font.Face
	status    string
	statusTTL int // pulses left before status clears

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene over an engine.
// If recordPath is not empty, applied intents are recorded.
func New(engine *system.Engine, display config.DisplayConfig, seed int64, recordPath string) *Playing {
	field := entity.Field{Width: display.ScreenWidth, Height: display.ScreenHeight}

	tickMillis := display.TickMillis
	if tickMillis <= 0 {
		tickMillis = config.DefaultRules().Display.TickMillis
	}

	p := &Playing{
		engine:         engine,
		runner:         system.NewWaveRunner(engine),
		input:          system.NewInputSystem(field),
		field:          field,
		phase:          state.PhaseBuilding,
		pulseSeconds:   float64(tickMillis) / 1000,
		face:           basicfont.Face7x13,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(seed, engine.Level().Number())
		log.Printf("Recording enabled: %s (seed: %d)", recordPath, seed)
	}

	engine.OnLevelChanged = func(level *entity.Level) {
		p.setStatus(fmt.Sprintf("Level %d", level.Number()))
	}
	engine.OnEnemyEscaped = func(_ *entity.Enemy, livesLeft int) {
		p.setStatus(fmt.Sprintf("Enemy escaped, %d lives left", livesLeft))
	}

	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return nil, scene.ErrQuit
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	p.HandleInput(p.input.GetInput())
	p.Advance(dt)

	return nil, nil
}

// HandleInput applies one frame of input. Rejected intents show in the HUD.
func (p *Playing) HandleInput(in system.InputState) {
	if p.finished() {
		return
	}

	for _, intent := range p.input.Intents(in) {
		if p.recorder != nil {
			if err := p.recorder.RecordIntent(intent); err != nil {
				log.Printf("Failed to record intent: %v", err)
			}
		}

		wave := p.engine.WaveNumber()
		if err := p.runner.Apply(intent); err != nil {
			p.setStatus(describe(err))
			continue
		}
		if p.engine.WaveNumber() != wave {
			p.setStatus(fmt.Sprintf("Wave %d started", p.engine.WaveNumber()))
			continue
		}
		if _, ok := intent.(system.StartWaveIntent); !ok {
			p.status = ""
		}
	}
	p.syncPhase()
}

// Advance accumulates wall time and runs one timer pulse per tick interval
func (p *Playing) Advance(dt float64) {
	p.elapsed += dt
	for p.elapsed >= p.pulseSeconds && !p.finished() {
		p.elapsed -= p.pulseSeconds
		p.pulse()
	}
}

func (p *Playing) pulse() {
	outcome, err := p.runner.Step()
	if p.recorder != nil {
		p.recorder.Pulse()
	}
	if p.statusTTL > 0 {
		p.statusTTL--
		if p.statusTTL == 0 {
			p.status = ""
		}
	}
	if err != nil {
		log.Printf("Wave step failed: %v", err)
		p.setStatus(err.Error())
	}

	switch outcome {
	case state.OutcomeGameOver:
		p.phase = state.PhaseGameOver
	case state.OutcomeVictory:
		p.phase = state.PhaseVictory
	default:
		p.syncPhase()
	}

	if p.finished() {
		p.saveRecording()
		if p.recorder != nil {
			p.recorder.Stop()
		}
	}
}

func (p *Playing) syncPhase() {
	if p.finished() {
		return
	}
	if p.runner.Running() {
		p.phase = state.PhaseWave
	} else {
		p.phase = state.PhaseBuilding
	}
}

func (p *Playing) finished() bool {
	return p.phase == state.PhaseGameOver || p.phase == state.PhaseVictory
}

func (p *Playing) setStatus(msg string) {
	p.status = msg
	p.statusTTL = statusPulses
}

// Phase returns what the scene is currently doing
func (p *Playing) Phase() state.Phase {
	return p.phase
}

// Status returns the last HUD message
func (p *Playing) Status() string {
	return p.status
}

// Recorder returns the active recorder, or nil
func (p *Playing) Recorder() *Recorder {
	return p.recorder
}

func describe(err error) string {
	switch {
	case errors.Is(err, entity.ErrInsufficientBudget):
		return "Not enough budget"
	case errors.Is(err, entity.ErrInvalidLocation):
		return "Cannot build there"
	case errors.Is(err, entity.ErrNoTowerSelected):
		return "No tower selected"
	default:
		return err.Error()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d intents)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := p.engine.Snapshot()
	p.drawTerrain(screen, snap)
	p.drawTowers(screen, snap)
	p.drawEnemies(screen, snap)
	p.drawProjectiles(screen, snap)
	p.drawHUD(screen, snap)

	switch p.phase {
	case state.PhaseGameOver:
		p.drawOverlay(screen, colorGameOver, fmt.Sprintf("GAME OVER\n\nLevel %d, wave %d", snap.Level, snap.Wave))
	case state.PhaseVictory:
		p.drawOverlay(screen, colorVictory, fmt.Sprintf("VICTORY\n\nLives left: %d", snap.Lives))
	}
}

func (p *Playing) drawTerrain(screen *ebiten.Image, snap system.Snapshot) {
	size := float32(snap.SquareSize)
	for row := 0; row < entity.NumRows; row++ {
		for col := 0; col < entity.NumCols; col++ {
			cell := entity.Cell{Row: row, Col: col}
			x := float32(cell.PixelX(snap.SquareSize))
			y := float32(cell.PixelY(snap.SquareSize))

			var c color.Color
			switch snap.Terrain.Kind(cell) {
			case entity.TerrainGrass:
				c = colorGrass
			case entity.TerrainPath:
				c = colorPath
			case entity.TerrainPathStart:
				c = colorStart
			case entity.TerrainSand:
				c = colorSand
			default:
				continue
			}

			vector.DrawFilledRect(screen, x, y, size, size, c, false)
			vector.StrokeRect(screen, x, y, size, size, 1, colorGrid, false)
		}
	}
}

func (p *Playing) drawTowers(screen *ebiten.Image, snap system.Snapshot) {
	size := snap.SquareSize
	inset := float32(size) / 8

	for _, t := range snap.Towers {
		x := float32(t.Cell.PixelX(size))
		y := float32(t.Cell.PixelY(size))
		vector.DrawFilledRect(screen, x+inset, y+inset, float32(size)-2*inset, float32(size)-2*inset, entity.TowerColors[t.Kind], true)

		// Barrel points along the launch angle
		cx, cy := t.Cell.Center(size)
		rad := t.LaunchAngleDegrees * math.Pi / 180
		reach := float64(size) / 2
		vector.StrokeLine(screen, float32(cx), float32(cy),
			float32(cx+math.Cos(rad)*reach), float32(cy+math.Sin(rad)*reach), 3, colorBarrel, true)

		if t.Level > 1 {
			text.Draw(screen, fmt.Sprintf("%d", t.Level), p.face, int(x+inset)+2, int(y+inset)+12, colorText)
		}
	}

	if snap.Selected != nil {
		x := float32(snap.Selected.Cell.PixelX(size))
		y := float32(snap.Selected.Cell.PixelY(size))
		vector.StrokeRect(screen, x+1, y+1, float32(size)-2, float32(size)-2, 3, colorSelected, false)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, snap system.Snapshot) {
	for _, e := range snap.Enemies {
		if e.Delayed {
			continue
		}
		b := e.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), entity.EnemyColors[e.Kind], true)

		barY := float32(b.Y) - 6
		vector.DrawFilledRect(screen, float32(b.X), barY, float32(b.W), 4, colorHealthBG, false)
		vector.DrawFilledRect(screen, float32(b.X), barY, float32(b.W)*float32(e.HitPointRatio), 4, colorHealthFG, false)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, snap system.Snapshot) {
	for _, proj := range snap.Projectiles {
		b := proj.Box
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), projectileColors[proj.Kind], false)
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image, snap system.Snapshot) {
	top := p.field.Height
	vector.StrokeLine(screen, 0, float32(top), float32(p.field.Width), float32(top), 2, colorHUDBorder, false)

	line := fmt.Sprintf("Level %d  %s  Budget %d  Lives %d  Build: %s",
		snap.Level, waveLabel(snap), snap.Budget, snap.Lives, snap.SelectedKind)
	if snap.Selected != nil {
		line += fmt.Sprintf("  Selected: %s L%d (upgrade %d)", snap.Selected.Kind, snap.Selected.Level, snap.Selected.CostToUpgrade)
	}
	text.Draw(screen, line, p.face, 8, top+16, colorText)

	help := "1-3: tower  LClick/RClick: build, select, rotate  U: upgrade  Space: wave  F5: save  Esc: quit"
	if p.status != "" {
		text.Draw(screen, p.status, p.face, 8, top+32, colorWarning)
	} else {
		text.Draw(screen, help, p.face, 8, top+32, colorText)
	}
}

// waveLabel counts wave indices, not per-path rosters; the trailing empty
// waves a multi-path level produces are shown as the last one.
func waveLabel(snap system.Snapshot) string {
	return fmt.Sprintf("Wave %d/%d", min(snap.Wave, snap.DistinctWaves), snap.DistinctWaves)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, msg string) {
	vector.DrawFilledRect(screen, 0, 0, float32(p.field.Width), float32(p.field.Height), c, false)
	text.Draw(screen, msg, p.face, p.field.Width/2-60, p.field.Height/2-20, colorText)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.syncPhase()
}

// OnExit saves the recording if one is still open
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.recorder != nil {
		p.recorder.Stop()
	}
}

// Layout returns the logical screen size including the HUD strip
func (p *Playing) Layout(_, _ int) (int, int) {
	return p.field.Width, p.field.Height + HUDHeight
}
