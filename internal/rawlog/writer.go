package rawlog

import (
	"encoding/binary"
	"fmt"
	"os"

	"acrtelemetry/internal/decode"
)

// chunkWriter appends length-prefixed, gob-encoded batches to a file that
// opens with a fixed Header. Batches are flushed once batchSize records
// have accumulated, giving roughly one chunk per second of capture at the
// segment's nominal sample rate.
type chunkWriter[T any] struct {
	file      *os.File
	pending   []T
	batchSize int
}

func newChunkWriter[T any](path string, magic [4]byte, targetHz uint32, batchSize int) (*chunkWriter[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("rawlog: create %s: %w", path, err)
	}

	header := make([]byte, HeaderSize)
	copy(header[0:4], magic[:])
	binary.LittleEndian.PutUint16(header[4:6], FormatVersion)
	binary.LittleEndian.PutUint32(header[6:10], targetHz)
	if _, err := f.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("rawlog: write header for %s: %w", path, err)
	}

	return &chunkWriter[T]{file: f, batchSize: batchSize}, nil
}

func (w *chunkWriter[T]) append(v T) error {
	w.pending = append(w.pending, v)
	if len(w.pending) >= w.batchSize {
		return w.flush()
	}
	return nil
}

func (w *chunkWriter[T]) flush() error {
	if len(w.pending) == 0 {
		return nil
	}
	payload, err := encodeBatch(w.pending)
	if err != nil {
		return err
	}
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(len(payload)))
	if _, err := w.file.Write(lenPrefix[:]); err != nil {
		return fmt.Errorf("rawlog: write chunk length: %w", err)
	}
	if _, err := w.file.Write(payload); err != nil {
		return fmt.Errorf("rawlog: write chunk payload: %w", err)
	}
	w.pending = w.pending[:0]
	return nil
}

func (w *chunkWriter[T]) close() error {
	var firstErr error
	if err := w.flush(); err != nil {
		firstErr = err
	}
	if err := w.file.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// PhysicsWriter appends physics frames to an "ACCR"-magic raw log,
// batching one second's worth of samples (targetHz records) per chunk.
type PhysicsWriter struct {
	inner *chunkWriter[decode.PhysicsFrame]
}

// NewPhysicsWriter creates path and writes its header.
func NewPhysicsWriter(path string, targetHz int) (*PhysicsWriter, error) {
	inner, err := newChunkWriter[decode.PhysicsFrame](path, PhysicsMagic, uint32(targetHz), targetHz)
	if err != nil {
		return nil, err
	}
	return &PhysicsWriter{inner: inner}, nil
}

// AppendPhysics buffers f, flushing a chunk once a full second has
// accumulated. Implements capture.PhysicsSink.
func (w *PhysicsWriter) AppendPhysics(f decode.PhysicsFrame) error {
	return w.inner.append(f)
}

// Flush forces any buffered frames to disk as a (possibly short) chunk.
func (w *PhysicsWriter) Flush() error { return w.inner.flush() }

// Close flushes remaining frames and closes the file.
func (w *PhysicsWriter) Close() error { return w.inner.close() }

// GraphicsWriter appends graphics records to an "ACCG"-magic raw log.
type GraphicsWriter struct {
	inner *chunkWriter[decode.GraphicsRecord]
}

// NewGraphicsWriter creates path and writes its header.
func NewGraphicsWriter(path string, targetHz int) (*GraphicsWriter, error) {
	inner, err := newChunkWriter[decode.GraphicsRecord](path, GraphicsMagic, uint32(targetHz), targetHz)
	if err != nil {
		return nil, err
	}
	return &GraphicsWriter{inner: inner}, nil
}

// AppendGraphics flattens f to its persisted form and buffers it.
// Implements capture.GraphicsSink.
func (w *GraphicsWriter) AppendGraphics(f decode.GraphicsFrame) error {
	return w.inner.append(f.ToGraphicsRecord())
}

// Flush forces any buffered records to disk.
func (w *GraphicsWriter) Flush() error { return w.inner.flush() }

// Close flushes remaining records and closes the file.
func (w *GraphicsWriter) Close() error { return w.inner.close() }
