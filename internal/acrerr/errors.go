// Package acrerr defines the sentinel error taxonomy shared by every layer
// of the capture and export pipeline, so callers can test failure classes
// with errors.Is/errors.As instead of matching strings.
package acrerr

import "errors"

var (
	// ErrSharedMemoryUnavailable is returned when the platform cannot open
	// or map a named shared-memory segment (including every non-Windows
	// build, where the segment never exists).
	ErrSharedMemoryUnavailable = errors.New("shared memory unavailable")

	// ErrOutOfBounds is returned when a decode would read past the end of
	// the mapped segment.
	ErrOutOfBounds = errors.New("read exceeds segment bounds")

	// ErrInvalidEnumValue is returned when a strict enum field holds a
	// value outside its known range.
	ErrInvalidEnumValue = errors.New("invalid enum value")

	// ErrInvalidUTF16 is returned when a fixed-width wide-character field
	// cannot be decoded as UTF-16LE.
	ErrInvalidUTF16 = errors.New("invalid utf-16 data")

	// ErrTimeout is returned when a bounded wait (for fresh frames, for a
	// subprocess, for an HTTP call) elapses without success.
	ErrTimeout = errors.New("operation timed out")

	// ErrSerializationFailed is returned when encoding or decoding a
	// persisted artefact (raw log chunk, sidecar, notes bundle) fails.
	ErrSerializationFailed = errors.New("serialization failed")

	// ErrEmptyRecording is returned when a raw log exists but holds zero
	// samples, letting callers tell an empty-but-valid file apart from a
	// corrupt or unreadable one.
	ErrEmptyRecording = errors.New("recording has no samples")
)
