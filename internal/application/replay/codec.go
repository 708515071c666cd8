package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the replay file encoding
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// FormatFor picks the encoding from a file extension: .mpk is msgpack, anything else JSON
func FormatFor(filename string) Format {
	if strings.EqualFold(filepath.Ext(filename), ".mpk") {
		return FormatMsgpack
	}
	return FormatJSON
}

// Encode writes replay data in the given format
func Encode(w io.Writer, data *ReplayData, format Format) error {
	switch format {
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	}
	return nil
}

// Decode reads replay data in the given format
func Decode(r io.Reader, format Format) (*ReplayData, error) {
	var data ReplayData
	var err error
	switch format {
	case FormatMsgpack:
		err = msgpack.NewDecoder(r).Decode(&data)
	default:
		err = json.NewDecoder(r).Decode(&data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// SaveReplay writes replay data to a file, encoded by its extension
func SaveReplay(filename string, data *ReplayData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Encode(file, data, FormatFor(filename))
}

// LoadReplay loads replay data from a file, decoded by its extension
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, FormatFor(filename))
}
