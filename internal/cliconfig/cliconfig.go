// Package cliconfig resolves the file-system paths the aggregation-glue
// binaries need, following a flag-overrides-env-overrides-default chain
// mirroring the teacher pipeline's config/CLI precedence.
package cliconfig

import (
	"os"
	"path/filepath"
	"strings"

	"acrtelemetry/internal/config"
)

// Paths holds the resolved locations the export/slicer binaries operate
// against.
type Paths struct {
	RawLogDir      string
	AnalyticalDB   string
	SlicerAnalysis string
	SlicerBackup   string
	GrafanaDB      string
}

// ResolvePaths builds a Paths value from cfg, applying any non-empty
// flag overrides on top of it. An empty override leaves the
// config-derived default untouched. When slicerAnalysisFlag is empty and
// analyticalDBFlag is set, the slicer's analysis DB defaults to a sibling
// of that flag's path named analysis.db, matching the original tool's
// sibling-of-telemetry-db convention. When slicerBackupFlag is empty the
// backup path is the resolved analysis DB path plus ".bak".
func ResolvePaths(cfg *config.Config, rawLogDirFlag, analyticalDBFlag, slicerAnalysisFlag, slicerBackupFlag, grafanaDBFlag string) Paths {
	p := Paths{
		RawLogDir:      cfg.RawLogDir,
		AnalyticalDB:   cfg.AnalyticalDBPath,
		SlicerAnalysis: cfg.SlicerAnalysisDBPath,
		SlicerBackup:   cfg.SlicerBackupDBPath,
		GrafanaDB:      os.Getenv("ACR_GRAFANA_DB"),
	}

	if v := strings.TrimSpace(rawLogDirFlag); v != "" {
		p.RawLogDir = v
	}
	if v := strings.TrimSpace(analyticalDBFlag); v != "" {
		p.AnalyticalDB = v
	}
	if v := strings.TrimSpace(slicerAnalysisFlag); v != "" {
		p.SlicerAnalysis = v
	} else if v := strings.TrimSpace(analyticalDBFlag); v != "" {
		p.SlicerAnalysis = siblingAnalysisDB(v)
	}
	if v := strings.TrimSpace(slicerBackupFlag); v != "" {
		p.SlicerBackup = v
	} else {
		p.SlicerBackup = p.SlicerAnalysis + ".bak"
	}
	if v := strings.TrimSpace(grafanaDBFlag); v != "" {
		p.GrafanaDB = v
	}

	return p
}

// siblingAnalysisDB returns the default analysis database path for a
// telemetry database path: a file named analysis.db next to it.
func siblingAnalysisDB(telemetryDBPath string) string {
	dir := filepath.Dir(telemetryDBPath)
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "analysis.db")
}
