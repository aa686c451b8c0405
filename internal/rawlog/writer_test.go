package rawlog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

func TestPhysicsWriterFlushesOnBatchBoundary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "physics.rawlog")

	w, err := NewPhysicsWriter(path, 2)
	require.NoError(t, err)

	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 1}))
	// not yet flushed: file should only contain the header
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, HeaderSize, info.Size())

	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 2}))
	// batchSize reached -> flush happened, file grew past the header
	info, err = os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(HeaderSize))

	require.NoError(t, w.Close())
}

func TestGraphicsWriterCloseFlushesPartialBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graphics.rawlog")

	w, err := NewGraphicsWriter(path, 60)
	require.NoError(t, err)
	require.NoError(t, w.AppendGraphics(decode.GraphicsFrame{PlayerCarID: 7}))
	require.NoError(t, w.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(HeaderSize))
}

func TestCloseWithNoRecordsWritesOnlyHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.rawlog")

	w, err := NewPhysicsWriter(path, 10)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, HeaderSize, info.Size())
}
