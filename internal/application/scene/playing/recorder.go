package playing

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/griddefense/internal/application/replay"
	"github.com/younwookim/griddefense/internal/application/system"
)

const replayVersion = "1.0"

// Recorder collects the intents applied during play, keyed by timer pulse
type Recorder struct {
	data      replay.ReplayData
	recording bool
	pulse     int
}

// NewRecorder creates a recorder for a session started with seed on level
func NewRecorder(seed int64, level int) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replayVersion,
			Seed:      seed,
			Level:     level,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameIntent, 0, 256),
		},
		recording: true,
	}
}

// RecordIntent stores an intent against the pulse it precedes
func (r *Recorder) RecordIntent(intent system.Intent) error {
	if !r.recording {
		return nil
	}

	frame, err := replay.FromIntent(r.pulse, intent)
	if err != nil {
		return err
	}
	r.data.Frames = append(r.data.Frames, frame)
	return nil
}

// Pulse marks the end of one timer pulse
func (r *Recorder) Pulse() {
	if r.recording {
		r.pulse++
	}
}

// Save writes the replay; the extension picks JSON or msgpack
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return errors.New("no intents to save")
	}

	data := r.GetData()
	return replay.SaveReplay(filename, &data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded intents
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GetData returns the replay data so far
func (r *Recorder) GetData() replay.ReplayData {
	data := r.data
	data.Pulses = r.pulse
	return data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
