// Package notes ingests free-form driver notes and fixed-field annotations
// dropped into the notes directory by an external tool (a stream overlay, a
// pit-wall script) while a recording is in progress, and folds them into a
// single JSON bundle once the recording stops.
package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxReadBytes caps how much of any single notes file is read, guarding
// against a runaway or malicious writer on the other end of the file.
const maxReadBytes = 64 * 1024

// notesFilename and elapsedFilename are the fixed names polled for inside
// a notes directory.
const (
	notesFilename   = "acr_notes"
	elapsedFilename = "acr_elapsed_secs"
)

// FieldNames lists the fixed per-recording fields that each get their own
// acr_<field> file inside the notes directory.
var FieldNames = []string{
	"laptime",
	"result",
	"driver_impression",
	"tested_parameters",
	"conditions",
	"setup_notes",
	"session_goal",
	"incident",
}

// Annotation is a single point or range marker on the recording's time
// axis, suitable for rendering as a Grafana annotation.
type Annotation struct {
	TimeOffsetSec float64  `json:"time_offset_sec"`
	TimeEndSec    *float64 `json:"time_end_sec,omitempty"`
	Text          string   `json:"text"`
	Tag           string   `json:"tag"`
}

// Bundle is the root structure written as <stem>.notes.json.
type Bundle struct {
	RecordingStartUTC string            `json:"recording_start_utc"`
	RecordingEndUTC   string            `json:"recording_end_utc"`
	Notes             string            `json:"notes"`
	Fields            map[string]string `json:"fields"`
	Annotations       []Annotation      `json:"annotations"`
}

// ResetAtStart deletes any stale acr_notes, acr_elapsed_secs, and acr_<field>
// files left over in dir from a previous recording. Call it once when a new
// recording begins.
func ResetAtStart(dir string) error {
	remove(filepath.Join(dir, notesFilename))
	remove(filepath.Join(dir, elapsedFilename))
	for _, field := range FieldNames {
		remove(filepath.Join(dir, "acr_"+field))
	}
	return nil
}

func remove(path string) {
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
}

// WriteElapsedSecs writes the current elapsed recording time to
// dir/acr_elapsed_secs, so external batch scripts can poll progress without
// reading the raw logs.
func WriteElapsedSecs(dir string, elapsedSecs uint64) error {
	path := filepath.Join(dir, elapsedFilename)
	if err := os.WriteFile(path, []byte(strconv.FormatUint(elapsedSecs, 10)), 0o644); err != nil {
		return fmt.Errorf("notes: write elapsed secs: %w", err)
	}
	return nil
}

// LoadBundleFor reads the notes bundle saved alongside rawlogPath by
// SaveToJSON, named filepath.Join(dir(rawlogPath), stem(rawlogPath)+
// ".notes.json"). It returns (nil, nil) when no bundle was ever written
// for this recording, since notes are optional context for an export.
func LoadBundleFor(rawlogPath string) (*Bundle, error) {
	ext := filepath.Ext(rawlogPath)
	stem := strings.TrimSuffix(filepath.Base(rawlogPath), ext)
	jsonPath := filepath.Join(filepath.Dir(rawlogPath), stem+".notes.json")

	b, err := os.ReadFile(jsonPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("notes: read %s: %w", jsonPath, err)
	}

	var bundle Bundle
	if err := json.Unmarshal(b, &bundle); err != nil {
		return nil, fmt.Errorf("notes: unmarshal %s: %w", jsonPath, err)
	}
	return &bundle, nil
}

// readFileTrim reads up to maxReadBytes from path and returns the
// trailing-whitespace-trimmed contents, or ("", false) if the file is
// absent or empty after trimming.
func readFileTrim(path string) (string, bool, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("notes: open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, maxReadBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, fmt.Errorf("notes: read %s: %w", path, err)
	}
	text := strings.TrimRight(string(buf[:n]), " \t\r\n")
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}

// SaveToJSON is called when recording stops: it reads acr_notes and every
// acr_<field> file from notesDir, parses embedded annotations out of
// acr_notes, writes the combined bundle to
// filepath.Join(dir(rawlogPath), stem(rawlogPath)+".notes.json"), and
// deletes the consumed source files.
func SaveToJSON(rawlogPath, notesDir, recordingStartUTC, recordingEndUTC string) error {
	ext := filepath.Ext(rawlogPath)
	stem := strings.TrimSuffix(filepath.Base(rawlogPath), ext)
	parent := filepath.Dir(rawlogPath)

	notesPath := filepath.Join(notesDir, notesFilename)
	notesBody, _, err := readFileTrim(notesPath)
	if err != nil {
		return err
	}

	var annotations []Annotation
	for _, line := range strings.Split(notesBody, "\n") {
		ann, ok := parseAnnotationLine(line)
		if ok {
			annotations = append(annotations, ann)
		}
	}

	fields := make(map[string]string)
	for _, field := range FieldNames {
		src := filepath.Join(notesDir, "acr_"+field)
		text, ok, err := readFileTrim(src)
		if err == nil && ok {
			fields[field] = text
		}
		remove(src)
	}

	bundle := Bundle{
		RecordingStartUTC: recordingStartUTC,
		RecordingEndUTC:   recordingEndUTC,
		Notes:             notesBody,
		Fields:            fields,
		Annotations:       annotations,
	}

	jsonPath := filepath.Join(parent, stem+".notes.json")
	b, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("notes: marshal bundle: %w", err)
	}
	if err := os.WriteFile(jsonPath, b, 0o644); err != nil {
		return fmt.Errorf("notes: write %s: %w", jsonPath, err)
	}

	remove(notesPath)
	remove(filepath.Join(notesDir, elapsedFilename))
	return nil
}

// parseAnnotationLine extracts an Annotation from a single line of
// acr_notes. Only lines containing the literal substring "#marker " are
// turned into annotations; plain free-text lines are left as part of the
// notes body only. "[elapsed Ns]" (or "[elapsed N s]") sets the time
// offset; "#marker TAG#" sets the tag (default "marker" if empty or
// unparsable).
func parseAnnotationLine(line string) (Annotation, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, "#marker ") {
		return Annotation{}, false
	}

	timeOffsetSec := 0.0
	tag := "marker"

	if start := strings.Index(line, "[elapsed "); start >= 0 {
		rest := line[start+len("[elapsed "):]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			end = len(rest)
		}
		numStr := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(rest[:end]), "s"))
		if n, err := strconv.ParseFloat(numStr, 64); err == nil {
			timeOffsetSec = n
		}
	}

	if start := strings.Index(line, "#marker "); start >= 0 {
		rest := line[start+len("#marker "):]
		end := strings.IndexByte(rest, '#')
		if end < 0 {
			end = len(rest)
		}
		parsed := strings.TrimSpace(rest[:end])
		if parsed != "" {
			tag = parsed
		}
	}

	return Annotation{
		TimeOffsetSec: timeOffsetSec,
		TimeEndSec:    nil,
		Text:          tag,
		Tag:           tag,
	}, true
}
