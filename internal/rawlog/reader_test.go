package rawlog

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

func TestReadHeaderRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.rawlog")

	w, err := NewPhysicsWriter(path, 333)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	h, err := ReadHeader(f)
	require.NoError(t, err)
	require.Equal(t, PhysicsMagic, h.Magic)
	require.Equal(t, FormatVersion, h.Version)
	require.EqualValues(t, 333, h.TargetHz)
}

func TestReadChunksRoundTripsWrittenBatches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.rawlog")

	w, err := NewPhysicsWriter(path, 2)
	require.NoError(t, err)
	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 1}))
	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 2}))
	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 3}))
	require.NoError(t, w.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = ReadHeader(f)
	require.NoError(t, err)

	var got []decode.PhysicsFrame
	err = ReadChunks[decode.PhysicsFrame](f, func(batch []decode.PhysicsFrame) error {
		got = append(got, batch...)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.EqualValues(t, 1, got[0].PacketID)
	require.EqualValues(t, 3, got[2].PacketID)
}

func TestReadChunksStopsCleanlyOnSoftTerminator(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, HeaderSize))
	var zero [4]byte
	binary.LittleEndian.PutUint32(zero[:], 0)
	buf.Write(zero[:])
	buf.WriteString("trailing garbage that must never be read")

	r := bytes.NewReader(buf.Bytes())
	_, err := ReadHeader(r)
	require.NoError(t, err)

	err = ReadChunks[decode.PhysicsFrame](r, func([]decode.PhysicsFrame) error {
		t.Fatal("fn should not be invoked after a soft terminator")
		return nil
	})
	require.NoError(t, err)
}

func TestReadAllPhysicsReturnsHeaderAndRecordsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.rawlog")

	w, err := NewPhysicsWriter(path, 2)
	require.NoError(t, err)
	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 1}))
	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 2}))
	require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: 3}))
	require.NoError(t, w.Close())

	h, records, err := ReadAllPhysics(path)
	require.NoError(t, err)
	require.Equal(t, PhysicsMagic, h.Magic)
	require.Len(t, records, 3)
	require.EqualValues(t, 1, records[0].PacketID)
	require.EqualValues(t, 3, records[2].PacketID)
}

func TestReadAllGraphicsReturnsHeaderAndRecordsInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.rawlog")

	w, err := NewGraphicsWriter(path, 60)
	require.NoError(t, err)
	require.NoError(t, w.AppendGraphics(decode.GraphicsFrame{PlayerCarID: 5}))
	require.NoError(t, w.Close())

	h, records, err := ReadAllGraphics(path)
	require.NoError(t, err)
	require.Equal(t, GraphicsMagic, h.Magic)
	require.Len(t, records, 1)
	require.EqualValues(t, 5, records[0].PlayerCarID)
}
