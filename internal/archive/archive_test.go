package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMirrorThenRestoreRoundTrips(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "session.physics.rawlog")
	payload := make([]byte, 64*1024)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(srcPath, payload, 0o644))

	mirrorPath, err := Mirror(srcPath)
	require.NoError(t, err)
	require.Equal(t, srcPath+MirrorSuffix, mirrorPath)

	info, err := os.Stat(mirrorPath)
	require.NoError(t, err)
	require.Greater(t, info.Size(), int64(0))

	restoredPath := filepath.Join(dir, "restored.rawlog")
	require.NoError(t, Restore(mirrorPath, restoredPath))

	restored, err := os.ReadFile(restoredPath)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestMirrorFailsOnMissingSource(t *testing.T) {
	_, err := Mirror(filepath.Join(t.TempDir(), "nope.rawlog"))
	require.Error(t, err)
}
