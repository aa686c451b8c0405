package rawlog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWritePhysicsSidecarProducesReadableJSON(t *testing.T) {
	dir := t.TempDir()
	rawlogPath := filepath.Join(dir, "session.physics.rawlog")
	require.NoError(t, os.WriteFile(rawlogPath, []byte{}, 0o644))

	require.NoError(t, WritePhysicsSidecar(rawlogPath, 333))

	b, err := os.ReadFile(filepath.Join(dir, "session.physics.json"))
	require.NoError(t, err)

	var meta FormatMetadata
	require.NoError(t, json.Unmarshal(b, &meta))
	require.Equal(t, uint16(1), meta.FormatVersion)
	require.EqualValues(t, 333, meta.SampleRateHz)
	require.Equal(t, "session.physics.rawlog", meta.BinaryFile)
	require.Equal(t, "[]PhysicsFrame", meta.Schema.RootType)
	require.NotEmpty(t, meta.Schema.Types)
	require.Equal(t, "PhysicsFrame", meta.Schema.Types[0].Name)
}

func TestWriteGraphicsSidecarDescribesFlattenedRecord(t *testing.T) {
	dir := t.TempDir()
	rawlogPath := filepath.Join(dir, "session.graphics.rawlog")
	require.NoError(t, os.WriteFile(rawlogPath, []byte{}, 0o644))

	require.NoError(t, WriteGraphicsSidecar(rawlogPath, 60))

	b, err := os.ReadFile(filepath.Join(dir, "session.graphics.json"))
	require.NoError(t, err)

	var meta FormatMetadata
	require.NoError(t, json.Unmarshal(b, &meta))
	require.Equal(t, "[]GraphicsRecord", meta.Schema.RootType)
	require.Equal(t, "GraphicsRecord", meta.Schema.Types[0].Name)
}
