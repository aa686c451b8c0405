package rawlog

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/logging"
)

func writeRecordingFiles(t *testing.T, dir, stem string, mod time.Time, physicsBytes, csvBytes int) {
	t.Helper()
	physicsPath := filepath.Join(dir, stem+physicsSuffix)
	require.NoError(t, os.WriteFile(physicsPath, make([]byte, physicsBytes), 0o644))
	csvPath := filepath.Join(dir, stem+".csv")
	require.NoError(t, os.WriteFile(csvPath, make([]byte, csvBytes), 0o644))
	require.NoError(t, os.Chtimes(physicsPath, mod, mod))
	require.NoError(t, os.Chtimes(csvPath, mod, mod))
}

func listRecordingStems(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	seen := map[string]struct{}{}
	for _, e := range entries {
		name := e.Name()
		if len(name) > len(physicsSuffix) && name[len(name)-len(physicsSuffix):] == physicsSuffix {
			seen[name[:len(name)-len(physicsSuffix)]] = struct{}{}
		}
	}
	stems := make([]string, 0, len(seen))
	for s := range seen {
		stems = append(stems, s)
	}
	sort.Strings(stems)
	return stems
}

func TestCleanerEnforcesMaxRecordings(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	writeRecordingFiles(t, tmp, "alpha", now.Add(-3*time.Hour), 64, 16)
	writeRecordingFiles(t, tmp, "bravo", now.Add(-2*time.Hour), 32, 8)
	writeRecordingFiles(t, tmp, "charlie", now.Add(-time.Hour), 48, 12)

	cleaner := NewCleaner(tmp, RetentionPolicy{MaxRecordings: 2}, logging.NewTestLogger())
	cleaner.now = func() time.Time { return now }
	cleaner.RunOnce()

	remaining := listRecordingStems(t, tmp)
	require.Equal(t, []string{"bravo", "charlie"}, remaining)

	stats := cleaner.Stats()
	require.Equal(t, 2, stats.Recordings)
	require.Equal(t, int64(32+8+48+12), stats.Bytes)
	require.False(t, stats.LastSweep.IsZero())
}

func TestCleanerPrunesByAge(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 7, 16, 9, 0, 0, 0, time.UTC)
	writeRecordingFiles(t, tmp, "delta", now.Add(-48*time.Hour), 16, 4)
	writeRecordingFiles(t, tmp, "echo", now.Add(-time.Hour), 20, 4)

	cleaner := NewCleaner(tmp, RetentionPolicy{MaxAge: 36 * time.Hour}, logging.NewTestLogger())
	cleaner.now = func() time.Time { return now }
	cleaner.RunOnce()

	remaining := listRecordingStems(t, tmp)
	require.Equal(t, []string{"echo"}, remaining)
}

func TestCleanerLeavesUnrelatedFilesAlone(t *testing.T) {
	tmp := t.TempDir()
	now := time.Date(2026, 7, 16, 9, 0, 0, 0, time.UTC)
	writeRecordingFiles(t, tmp, "foxtrot", now.Add(-time.Hour), 16, 4)
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "notes.json"), []byte("{}"), 0o644))

	cleaner := NewCleaner(tmp, RetentionPolicy{MaxAge: 36 * time.Hour}, logging.NewTestLogger())
	cleaner.now = func() time.Time { return now }
	cleaner.RunOnce()

	_, err := os.Stat(filepath.Join(tmp, "notes.json"))
	require.NoError(t, err)
}
