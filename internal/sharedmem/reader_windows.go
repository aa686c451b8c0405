//go:build windows

package sharedmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"acrtelemetry/internal/acrerr"
)

// mapping wraps the Windows file-mapping handle and the view it produced.
type mapping struct {
	handle windows.Handle
	addr   uintptr
	bytes  []byte
}

func openMapping(name string, size int) (*mapping, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("sharedmem: invalid segment name %q: %w", name, err)
	}

	handle, err := windows.OpenFileMapping(windows.FILE_MAP_READ, false, namePtr)
	if err != nil {
		return nil, fmt.Errorf("sharedmem: OpenFileMapping(%q): %v: %w", name, err, acrerr.ErrSharedMemoryUnavailable)
	}

	addr, err := windows.MapViewOfFile(handle, windows.FILE_MAP_READ, 0, 0, uintptr(size))
	if err != nil {
		_ = windows.CloseHandle(handle)
		return nil, fmt.Errorf("sharedmem: MapViewOfFile(%q): %v: %w", name, err, acrerr.ErrSharedMemoryUnavailable)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &mapping{handle: handle, addr: addr, bytes: data}, nil
}

func (m *mapping) close() error {
	if m == nil {
		return nil
	}
	var firstErr error
	if err := windows.UnmapViewOfFile(m.addr); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := windows.CloseHandle(m.handle); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
