// Package rawlog implements the chunked append-only log format raw
// telemetry samples are captured into, plus the JSON schema sidecar
// written once per recording so downstream tooling never has to guess the
// binary layout.
package rawlog

// HeaderSize is the fixed size of a raw-log file header.
const HeaderSize = 16

// FormatVersion is the current raw-log container version.
const FormatVersion uint16 = 1

// PhysicsMagic and GraphicsMagic identify which segment a raw log holds.
var (
	PhysicsMagic  = [4]byte{'A', 'C', 'C', 'R'}
	GraphicsMagic = [4]byte{'A', 'C', 'C', 'G'}
)

// Header is the 16-byte record every raw log opens with: a 4-byte magic,
// a 2-byte little-endian version, a 4-byte little-endian target sample
// rate, and 6 reserved bytes.
type Header struct {
	Magic    [4]byte
	Version  uint16
	TargetHz uint32
}
