package replay

import (
	"fmt"

	"github.com/younwookim/griddefense/internal/application/system"
	"github.com/younwookim/griddefense/internal/domain/entity"
)

// FromIntent records an intent applied before the given pulse
func FromIntent(pulse int, intent system.Intent) (FrameIntent, error) {
	switch i := intent.(type) {
	case system.PlaceTowerIntent:
		return FrameIntent{T: pulse, K: KindPlace, R: i.Cell.Row, C: i.Cell.Col, P: i.Primary}, nil
	case system.UpgradeIntent:
		return FrameIntent{T: pulse, K: KindUpgrade}, nil
	case system.StartWaveIntent:
		return FrameIntent{T: pulse, K: KindStartWave}, nil
	case system.SelectTowerIntent:
		return FrameIntent{T: pulse, K: KindSelectTower, Tw: int(i.Kind)}, nil
	default:
		return FrameIntent{}, fmt.Errorf("intent %T: %w", intent, entity.ErrUnsupportedType)
	}
}

// Intent rebuilds the recorded intent
func (f FrameIntent) Intent() (system.Intent, error) {
	switch f.K {
	case KindPlace:
		return system.PlaceTowerIntent{Cell: entity.Cell{Row: f.R, Col: f.C}, Primary: f.P}, nil
	case KindUpgrade:
		return system.UpgradeIntent{}, nil
	case KindStartWave:
		return system.StartWaveIntent{}, nil
	case KindSelectTower:
		return system.SelectTowerIntent{Kind: entity.TowerKind(f.Tw)}, nil
	default:
		return nil, fmt.Errorf("intent kind %d: %w", f.K, entity.ErrUnsupportedType)
	}
}
