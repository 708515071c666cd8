package main

import (
	"fmt"

	"github.com/younwookim/griddefense/internal/application/replay"
	"github.com/younwookim/griddefense/internal/application/system"
)

// runReplay feeds recorded intents into engine pulse by pulse.
// maxPulses > 0 cuts playback short. A recording made on another starting
// level is refused; Level 0 skips the check.
func runReplay(engine *system.Engine, data replay.ReplayData, maxPulses int) (replay.Result, error) {
	if data.Level != 0 && data.Level != engine.Level().Number() {
		return replay.Result{}, fmt.Errorf("replay starts on level %d, engine on level %d", data.Level, engine.Level().Number())
	}
	if maxPulses > 0 && maxPulses < data.Pulses {
		data.Pulses = maxPulses
	}
	return replay.NewReplayer(data).Run(system.NewWaveRunner(engine))
}
