package system

import "github.com/younwookim/griddefense/internal/application/state"

// WaveRunner pumps engine ticks while a wave is active and closes the wave
// once the last enemy is gone.
type WaveRunner struct {
	engine  *Engine
	running bool
}

// NewWaveRunner creates a wave runner for an engine
func NewWaveRunner(engine *Engine) *WaveRunner {
	return &WaveRunner{engine: engine}
}

// Start releases the next wave and begins ticking.
// Returns false when the engine refused to start a wave.
func (r *WaveRunner) Start() bool {
	if r.running || !r.engine.StartWave() {
		return false
	}
	r.running = true
	return true
}

// Running returns true between Start and the end of the wave
func (r *WaveRunner) Running() bool {
	return r.running
}

// Step runs one timer pulse. An empty wave ends on the first pulse.
func (r *WaveRunner) Step() (state.Outcome, error) {
	if !r.running {
		return state.OutcomeNone, nil
	}

	if !r.engine.IsActiveWave() {
		r.running = false
		return r.engine.EndWave()
	}

	outcome := r.engine.Tick()
	if outcome.Terminal() {
		r.running = false
	}
	return outcome, nil
}

// Apply routes a start-wave intent through the runner so the wave is pumped;
// other intents go straight to the engine.
func (r *WaveRunner) Apply(intent Intent) error {
	if _, ok := intent.(StartWaveIntent); ok {
		if r.engine.Outcome().Terminal() {
			return ErrGameFinished
		}
		r.Start()
		return nil
	}
	return r.engine.Apply(intent)
}
