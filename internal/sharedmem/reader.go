// Package sharedmem maps the named shared-memory segments ACC/AC Rally
// publish (physics, graphics, statics) and exposes bounds-checked reads
// over them. Only Windows actually supports the underlying mapping; on
// every other platform Open fails immediately with
// acrerr.ErrSharedMemoryUnavailable, matching the upstream simulator's own
// platform restriction.
package sharedmem

import (
	"fmt"

	"acrtelemetry/internal/acrerr"
)

// Reader is a read-only view over a mapped shared-memory segment.
type Reader struct {
	name    string
	size    int
	mapping *mapping
}

// Open maps the named segment, which must be exactly size bytes.
func Open(name string, size int) (*Reader, error) {
	m, err := openMapping(name, size)
	if err != nil {
		return nil, err
	}
	return &Reader{name: name, size: size, mapping: m}, nil
}

// Name returns the segment name this reader was opened with.
func (r *Reader) Name() string {
	if r == nil {
		return ""
	}
	return r.name
}

// Size returns the declared segment size in bytes.
func (r *Reader) Size() int {
	if r == nil {
		return 0
	}
	return r.size
}

// Bytes returns the full mapped segment. Callers must not retain the slice
// beyond Close, and must not write through it.
func (r *Reader) Bytes() []byte {
	if r == nil || r.mapping == nil {
		return nil
	}
	return r.mapping.bytes
}

// ReadAt returns the length bytes starting at offset, bounds-checked
// against the segment size.
func (r *Reader) ReadAt(offset, length int) ([]byte, error) {
	if r == nil || r.mapping == nil {
		return nil, acrerr.ErrSharedMemoryUnavailable
	}
	if offset < 0 || length < 0 || offset+length > r.size {
		return nil, fmt.Errorf("sharedmem: read [%d:%d) exceeds segment %q size %d: %w", offset, offset+length, r.name, r.size, acrerr.ErrOutOfBounds)
	}
	return r.mapping.bytes[offset : offset+length], nil
}

// Close releases the underlying mapping.
func (r *Reader) Close() error {
	if r == nil || r.mapping == nil {
		return nil
	}
	return r.mapping.close()
}
