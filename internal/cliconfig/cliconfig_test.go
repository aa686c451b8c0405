package cliconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/config"
)

func TestResolvePathsFallsBackToConfigDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	paths := ResolvePaths(cfg, "", "", "", "", "")
	require.Equal(t, cfg.RawLogDir, paths.RawLogDir)
	require.Equal(t, cfg.AnalyticalDBPath, paths.AnalyticalDB)
}

func TestResolvePathsAppliesFlagOverrides(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	paths := ResolvePaths(cfg, "/tmp/raw", "/tmp/telemetry.db", "", "", "")
	require.Equal(t, "/tmp/raw", paths.RawLogDir)
	require.Equal(t, "/tmp/telemetry.db", paths.AnalyticalDB)
	require.Equal(t, filepath.Join("/tmp", "analysis.db"), paths.SlicerAnalysis)
	require.Equal(t, filepath.Join("/tmp", "analysis.db")+".bak", paths.SlicerBackup)
}

func TestResolvePathsSlicerFlagsWin(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	paths := ResolvePaths(cfg, "", "/tmp/telemetry.db", "/custom/analysis.db", "/custom/analysis.db.bak", "/custom/grafana.db")
	require.Equal(t, "/custom/analysis.db", paths.SlicerAnalysis)
	require.Equal(t, "/custom/analysis.db.bak", paths.SlicerBackup)
	require.Equal(t, "/custom/grafana.db", paths.GrafanaDB)
}
