package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/analyticaldb"
	"acrtelemetry/internal/cliconfig"
	"acrtelemetry/internal/decode"
	"acrtelemetry/internal/logging"
	"acrtelemetry/internal/rawlog"
)

func writePhysicsRawlog(t *testing.T, dir, name string, n int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	w, err := rawlog.NewPhysicsWriter(path, 333)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, w.AppendPhysics(decode.PhysicsFrame{PacketID: int32(i), SpeedKmh: float32(i)}))
	}
	require.NoError(t, w.Close())
	return path
}

func TestExportSingleCSVWritesCSVAndLD(t *testing.T) {
	dir := t.TempDir()
	path := writePhysicsRawlog(t, dir, "a.physics.rawlog", 5)

	paths := cliconfig.Paths{}
	id, err := exportSingle(path, exportCSV, paths, logging.NewTestLogger())
	require.NoError(t, err)
	require.Zero(t, id)

	_, err = os.Stat(filepath.Join(dir, "a.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "a.ld"))
	require.NoError(t, err)
}

func TestExportSingleSQLiteInsertsRecordingAndSkipsLD(t *testing.T) {
	dir := t.TempDir()
	path := writePhysicsRawlog(t, dir, "b.physics.rawlog", 5)

	paths := cliconfig.Paths{AnalyticalDB: filepath.Join(dir, "telemetry.db")}
	id, err := exportSingle(path, exportSQLite, paths, logging.NewTestLogger())
	require.NoError(t, err)
	require.NotZero(t, id)

	_, err = os.Stat(filepath.Join(dir, "b.ld"))
	require.True(t, os.IsNotExist(err), "sqlite mode must not write a MoTeC .ld sibling")

	exists, err := analyticaldb.RecordingExists(paths.AnalyticalDB, "b.physics.rawlog")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestExportSingleRejectsEmptyRecording(t *testing.T) {
	dir := t.TempDir()
	path := writePhysicsRawlog(t, dir, "empty.physics.rawlog", 0)

	paths := cliconfig.Paths{AnalyticalDB: filepath.Join(dir, "telemetry.db")}
	_, err := exportSingle(path, exportSQLite, paths, logging.NewTestLogger())
	require.Error(t, err)
}

func TestAlreadyExportedCSVDetectsExistingSibling(t *testing.T) {
	dir := t.TempDir()
	path := writePhysicsRawlog(t, dir, "c.physics.rawlog", 2)

	skip, err := alreadyExported(path, exportCSV, cliconfig.Paths{})
	require.NoError(t, err)
	require.False(t, skip)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.csv"), []byte("x"), 0o644))
	skip, err = alreadyExported(path, exportCSV, cliconfig.Paths{})
	require.NoError(t, err)
	require.True(t, skip)
}

func TestBatchExportSkipsAlreadyExportedAndCountsRemainder(t *testing.T) {
	dir := t.TempDir()
	writePhysicsRawlog(t, dir, "r1.physics.rawlog", 3)
	writePhysicsRawlog(t, dir, "r2.physics.rawlog", 3)
	writePhysicsRawlog(t, dir, "empty.physics.rawlog", 0)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "r1.csv"), []byte("already done"), 0o644))

	exported, skipped := batchExport(dir, exportCSV, cliconfig.Paths{}, logging.NewTestLogger())
	require.Equal(t, 1, exported)
	require.Equal(t, 1, skipped)
}

func TestApplyRetentionPrunesWhenPolicySet(t *testing.T) {
	dir := t.TempDir()
	writePhysicsRawlog(t, dir, "old.physics.rawlog", 2)
	writePhysicsRawlog(t, dir, "new.physics.rawlog", 2)

	applyRetention(dir, rawlog.RetentionPolicy{MaxRecordings: 1}, logging.NewTestLogger())

	_, errOld := os.Stat(filepath.Join(dir, "old.physics.rawlog"))
	_, errNew := os.Stat(filepath.Join(dir, "new.physics.rawlog"))
	require.True(t, errOld == nil || errNew == nil)
	require.False(t, errOld == nil && errNew == nil)
}

func TestApplyRetentionIsNoopWhenPolicyUnset(t *testing.T) {
	dir := t.TempDir()
	path := writePhysicsRawlog(t, dir, "keep.physics.rawlog", 2)

	applyRetention(dir, rawlog.RetentionPolicy{}, logging.NewTestLogger())

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestBatchExportIgnoresGraphicsAndDotfiles(t *testing.T) {
	dir := t.TempDir()
	writePhysicsRawlog(t, dir, "r1.physics.rawlog", 3)
	w, err := rawlog.NewGraphicsWriter(filepath.Join(dir, "r1.graphics.rawlog"), 60)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".r1.physics.rawlog"), []byte("hidden"), 0o644))

	exported, skipped := batchExport(dir, exportCSV, cliconfig.Paths{}, logging.NewTestLogger())
	require.Equal(t, 1, exported)
	require.Equal(t, 0, skipped)
}
