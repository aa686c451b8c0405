package decode

import (
	"encoding/binary"
	"fmt"
	"math"

	"acrtelemetry/internal/acrerr"
	"acrtelemetry/internal/sharedmem"
)

// cursor walks a byte slice sequentially, exactly mirroring the upstream
// parsers' running-offset macros: every read advances the cursor by the
// exact number of bytes consumed, including fields whose value is
// discarded.
type cursor struct {
	data []byte
	off  int
	err  error
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data}
}

func (c *cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if c.off+n > len(c.data) {
		c.err = fmt.Errorf("decode: read %d bytes at offset %d exceeds segment size %d: %w", n, c.off, len(c.data), acrerr.ErrOutOfBounds)
		return nil
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b
}

func (c *cursor) skip(n int) {
	c.take(n)
}

func (c *cursor) i32() int32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

func (c *cursor) u32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (c *cursor) f32() float32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func (c *cursor) boolFromI32() bool {
	return c.i32() != 0
}

func (c *cursor) f32Array(n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = c.f32()
	}
	return out
}

func (c *cursor) vector3f() Vector3f {
	return Vector3f{X: c.f32(), Y: c.f32(), Z: c.f32()}
}

func (c *cursor) wheels() Wheels {
	return Wheels{
		FrontLeft:  c.f32(),
		FrontRight: c.f32(),
		RearLeft:   c.f32(),
		RearRight:  c.f32(),
	}
}

func (c *cursor) contactPoint() ContactPoint {
	return ContactPoint{
		FrontLeft:  c.vector3f(),
		FrontRight: c.vector3f(),
		RearLeft:   c.vector3f(),
		RearRight:  c.vector3f(),
	}
}

func (c *cursor) status() AccStatus {
	v, err := parseAccStatus(c.i32())
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

func (c *cursor) sessionType() AccSessionType {
	v, err := parseAccSessionType(c.i32())
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

func (c *cursor) flagType() AccFlagType {
	v, err := parseAccFlagType(c.i32())
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

func (c *cursor) trackGripStatus() AccTrackGripStatus {
	v, err := parseAccTrackGripStatus(c.i32())
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

func (c *cursor) rainIntensity() AccRainIntensity {
	v, err := parseAccRainIntensity(c.i32())
	if err != nil && c.err == nil {
		c.err = err
	}
	return v
}

// wideString reads maxChars*2 bytes (plus paddingBytes, which are
// consumed but never part of the string) and decodes a UTF-16LE string
// terminated at the first null char16 cell.
func (c *cursor) wideString(maxChars, paddingBytes int) string {
	raw := c.take(maxChars * 2)
	c.skip(paddingBytes)
	if raw == nil {
		return ""
	}
	s, err := sharedmem.DecodeWideString(raw, maxChars)
	if err != nil && c.err == nil {
		c.err = err
	}
	return s
}
