package rawlog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"acrtelemetry/internal/decode"
)

// ReadHeader reads the fixed 16-byte header from the start of r, which
// must be positioned at offset 0. The magic and version are returned as
// found; they are not checked.
func ReadHeader(r io.Reader) (Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return Header{}, fmt.Errorf("rawlog: read header: %w", err)
	}

	var h Header
	copy(h.Magic[:], buf[0:4])
	h.Version = binary.LittleEndian.Uint16(buf[4:6])
	h.TargetHz = binary.LittleEndian.Uint32(buf[6:10])
	return h, nil
}

// ReadChunks reads length-prefixed batches from r until EOF, invoking fn
// once per decoded batch. A zero-length prefix is the reserved soft
// terminator: readers must accept it as a clean end of stream, even
// though no writer in this package ever emits one.
func ReadChunks[T any](r io.Reader, fn func([]T) error) error {
	var lenBuf [4]byte
	for {
		_, err := io.ReadFull(r, lenBuf[:])
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("rawlog: read chunk length: %w", err)
		}

		n := binary.LittleEndian.Uint32(lenBuf[:])
		if n == 0 {
			return nil
		}

		payload := make([]byte, n)
		if _, err := io.ReadFull(r, payload); err != nil {
			return fmt.Errorf("rawlog: read chunk payload: %w", err)
		}

		batch, err := decodeBatch[T](payload)
		if err != nil {
			return err
		}
		if err := fn(batch); err != nil {
			return err
		}
	}
}

// ReadAllPhysics opens the physics raw log at path and returns its header
// plus every record it holds, decoded in order.
func ReadAllPhysics(path string) (Header, []decode.PhysicsFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("rawlog: open %s: %w", path, err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return Header{}, nil, err
	}

	var records []decode.PhysicsFrame
	err = ReadChunks[decode.PhysicsFrame](f, func(batch []decode.PhysicsFrame) error {
		records = append(records, batch...)
		return nil
	})
	if err != nil {
		return Header{}, nil, err
	}
	return h, records, nil
}

// ReadAllGraphics opens the graphics raw log at path and returns its
// header plus every record it holds, decoded in order.
func ReadAllGraphics(path string) (Header, []decode.GraphicsRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, fmt.Errorf("rawlog: open %s: %w", path, err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return Header{}, nil, err
	}

	var records []decode.GraphicsRecord
	err = ReadChunks[decode.GraphicsRecord](f, func(batch []decode.GraphicsRecord) error {
		records = append(records, batch...)
		return nil
	})
	if err != nil {
		return Header{}, nil, err
	}
	return h, records, nil
}
