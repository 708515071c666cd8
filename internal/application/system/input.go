package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/griddefense/internal/domain/entity"
)

// InputSystem turns mouse and keyboard state into engine intents
type InputSystem struct {
	field entity.Field
}

// NewInputSystem creates a new input system
func NewInputSystem(field entity.Field) *InputSystem {
	return &InputSystem{field: field}
}

// InputState holds the input edges of one frame
type InputState struct {
	MouseX      int
	MouseY      int
	LeftClick   bool
	RightClick  bool
	StartWave   bool
	Upgrade     bool
	SelectTower entity.TowerKind // TowerNone when no selection key was pressed
}

// towerKeys maps number keys to tower kinds in menu order
var towerKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	in := InputState{
		MouseX:     mx,
		MouseY:     my,
		LeftClick:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		StartWave:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Upgrade:    inpututil.IsKeyJustPressed(ebiten.KeyU),
	}
	for i, key := range towerKeys {
		if i < len(entity.TowerKinds) && inpututil.IsKeyJustPressed(key) {
			in.SelectTower = entity.TowerKinds[i]
		}
	}
	return in
}

// Intents converts one frame of input into intents, in the order they apply.
// Clicks outside the grid are dropped.
func (s *InputSystem) Intents(in InputState) []Intent {
	var intents []Intent

	if in.SelectTower != entity.TowerNone {
		intents = append(intents, SelectTowerIntent{Kind: in.SelectTower})
	}

	if in.LeftClick || in.RightClick {
		if cell, ok := s.field.CellAt(in.MouseX, in.MouseY); ok {
			intents = append(intents, PlaceTowerIntent{Cell: cell, Primary: in.LeftClick})
		}
	}

	if in.Upgrade {
		intents = append(intents, UpgradeIntent{})
	}
	if in.StartWave {
		intents = append(intents, StartWaveIntent{})
	}
	return intents
}
