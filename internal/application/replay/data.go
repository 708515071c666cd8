package replay

// IntentKind tags a recorded intent
type IntentKind int

const (
	KindPlace IntentKind = iota
	KindUpgrade
	KindStartWave
	KindSelectTower
)

// FrameIntent records one intent and the timer pulse it was applied before
type FrameIntent struct {
	T  int        `json:"t" msgpack:"t"`                       // Pulse number
	K  IntentKind `json:"k" msgpack:"k"`                       // Kind
	R  int        `json:"r,omitempty" msgpack:"r,omitempty"`   // Row
	C  int        `json:"c,omitempty" msgpack:"c,omitempty"`   // Col
	P  bool       `json:"p,omitempty" msgpack:"p,omitempty"`   // Primary button
	Tw int        `json:"tw,omitempty" msgpack:"tw,omitempty"` // Tower kind
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string        `json:"version" msgpack:"version"`
	Seed      int64         `json:"seed" msgpack:"seed"`
	Level     int           `json:"level" msgpack:"level"`
	StartTime string        `json:"startTime" msgpack:"startTime"`
	Pulses    int           `json:"pulses" msgpack:"pulses"`
	Frames    []FrameIntent `json:"frames" msgpack:"frames"`
}
