//go:build !windows

package sharedmem

import (
	"fmt"

	"acrtelemetry/internal/acrerr"
)

// mapping is never constructed on non-Windows platforms; the field exists
// only so Reader's platform-independent code compiles unchanged.
type mapping struct {
	bytes []byte
}

func openMapping(name string, _ int) (*mapping, error) {
	return nil, fmt.Errorf("sharedmem: segment %q: %w", name, acrerr.ErrSharedMemoryUnavailable)
}

func (m *mapping) close() error {
	return nil
}
