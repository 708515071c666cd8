package replay

import (
	"fmt"

	"github.com/younwookim/griddefense/internal/application/state"
	"github.com/younwookim/griddefense/internal/application/system"
)

// Replayer hands back recorded intents pulse by pulse
type Replayer struct {
	data  ReplayData
	pulse int
	next  int // index of the first frame not yet returned
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// GetIntents returns the intents recorded before the current pulse and advances.
// ok is false once every recorded pulse has been played.
func (r *Replayer) GetIntents() (intents []system.Intent, ok bool, err error) {
	if r.Done() {
		return nil, false, nil
	}

	for r.next < len(r.data.Frames) && r.data.Frames[r.next].T <= r.pulse {
		intent, err := r.data.Frames[r.next].Intent()
		if err != nil {
			return nil, false, fmt.Errorf("frame %d: %w", r.next, err)
		}
		intents = append(intents, intent)
		r.next++
	}
	r.pulse++
	return intents, true, nil
}

// Done returns true when all pulses have been played
func (r *Replayer) Done() bool {
	return r.pulse >= r.data.Pulses
}

// CurrentPulse returns the next pulse to be played
func (r *Replayer) CurrentPulse() int {
	return r.pulse
}

// TotalPulses returns the number of recorded pulses
func (r *Replayer) TotalPulses() int {
	return r.data.Pulses
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.pulse = 0
	r.next = 0
}

// Result summarizes a headless replay
type Result struct {
	Outcome  state.Outcome
	Pulses   int
	Rejected int // intents the engine refused
}

// Run plays every recorded pulse through a wave runner.
// Intents rejected by the engine are counted, not fatal, matching live play.
func (r *Replayer) Run(runner *system.WaveRunner) (Result, error) {
	var res Result
	for {
		intents, ok, err := r.GetIntents()
		if err != nil {
			return res, err
		}
		if !ok {
			return res, nil
		}

		for _, intent := range intents {
			if err := runner.Apply(intent); err != nil {
				res.Rejected++
			}
		}

		outcome, err := runner.Step()
		if err != nil {
			return res, err
		}
		res.Pulses++
		if outcome != state.OutcomeNone {
			res.Outcome = outcome
		}
		if outcome.Terminal() {
			return res, nil
		}
	}
}
