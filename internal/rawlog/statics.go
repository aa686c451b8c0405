package rawlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"acrtelemetry/internal/decode"
)

// staticsSuffix names the one-time statics snapshot sidecar written next
// to a physics raw log, alongside its schema sidecar (.json) and notes
// bundle (.notes.json).
const staticsSuffix = ".statics.json"

// StaticsPathFor returns the statics sidecar path for a physics raw log.
func StaticsPathFor(rawlogPath string) string {
	ext := filepath.Ext(rawlogPath)
	return strings.TrimSuffix(rawlogPath, ext) + staticsSuffix
}

// StaticsWriter implements capture.StaticsSink, writing the single
// per-session statics sample to rawlogPath's statics sidecar as it
// arrives.
type StaticsWriter struct {
	rawlogPath string
}

// NewStaticsWriter targets the statics sidecar for rawlogPath.
func NewStaticsWriter(rawlogPath string) *StaticsWriter {
	return &StaticsWriter{rawlogPath: rawlogPath}
}

// WriteStatics persists f to the statics sidecar.
func (w *StaticsWriter) WriteStatics(f decode.StaticsFrame) error {
	return WriteStaticsFile(w.rawlogPath, f)
}

// WriteStaticsFile writes f as the statics sidecar for rawlogPath.
func WriteStaticsFile(rawlogPath string, f decode.StaticsFrame) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("rawlog: marshal statics: %w", err)
	}
	if err := os.WriteFile(StaticsPathFor(rawlogPath), b, 0o644); err != nil {
		return fmt.Errorf("rawlog: write statics sidecar: %w", err)
	}
	return nil
}

// ReadStaticsFile reads the statics sidecar for rawlogPath. It returns
// (nil, nil) when the sidecar is absent, since a statics snapshot is
// optional context for an export rather than a required input.
func ReadStaticsFile(rawlogPath string) (*decode.StaticsFrame, error) {
	b, err := os.ReadFile(StaticsPathFor(rawlogPath))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("rawlog: read statics sidecar: %w", err)
	}
	var f decode.StaticsFrame
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("rawlog: unmarshal statics sidecar: %w", err)
	}
	return &f, nil
}
