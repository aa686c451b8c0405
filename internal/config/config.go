package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultSharedMemoryPrefix is the base name ACC/AC Rally publish their
	// shared-memory segments under; the physics/graphics/static suffixes are
	// appended by internal/sharedmem.
	DefaultSharedMemoryPrefix = "acpmf_"

	// DefaultRawLogDir is where sealed chunked raw logs and their schema
	// sidecars are written during capture.
	DefaultRawLogDir = "./telemetry/raw"

	// DefaultNotesDir is the scratch directory the capture engine and the
	// note ingestor share for acr_notes/acr_elapsed_secs/acr_<field> files.
	DefaultNotesDir = "./telemetry/notes"

	// DefaultStopFilePath is the sentinel file whose presence requests a
	// graceful capture stop, polled alongside OS signal delivery.
	DefaultStopFilePath = "./telemetry/notes/acr_stop"

	// DefaultAnalyticalDBPath is the default SQLite database the exporter
	// writes normalized recordings into.
	DefaultAnalyticalDBPath = "./telemetry/analysis.db"

	// DefaultPhysicsHz and DefaultGraphicsHz are the nominal sample rates
	// the capture engine targets for the two high-rate segments.
	DefaultPhysicsHz  = 333
	DefaultGraphicsHz = 60

	// DefaultLogLevel controls verbosity for pipeline logs.
	DefaultLogLevel = "info"
	// DefaultLogPath is where structured logs are written.
	DefaultLogPath = "acrtelemetry.log"
	// DefaultLogMaxSizeMB caps the size of a single log file before rotation.
	DefaultLogMaxSizeMB = 100
	// DefaultLogMaxBackups limits retained rotated log files.
	DefaultLogMaxBackups = 10
	// DefaultLogMaxAgeDays controls how long rotated log files are kept on disk.
	DefaultLogMaxAgeDays = 7
	// DefaultLogCompress toggles gzip compression for rotated log files.
	DefaultLogCompress = true

	// DefaultSlicerAnalysisDBPath is the database the annotation-driven
	// slicer copies annotation-selected recording segments into.
	DefaultSlicerAnalysisDBPath = "./telemetry/analysis.db"
	// DefaultSlicerBackupDBPath is where the slicer copies the analysis
	// database to before mutating it.
	DefaultSlicerBackupDBPath = "./telemetry/analysis.db.bak"
)

// Config captures all runtime tunables for the capture/export pipeline.
type Config struct {
	SharedMemoryPrefix string
	RawLogDir          string
	NotesDir           string
	StopFilePath       string
	AnalyticalDBPath   string
	PhysicsHz          int
	GraphicsHz         int
	Logging            LoggingConfig

	SlicerAnalysisDBPath string
	SlicerBackupDBPath   string
}

// LoggingConfig captures structured logging configuration options.
type LoggingConfig struct {
	Level      string
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Load reads pipeline configuration from environment variables, applying
// sane defaults and returning descriptive errors for invalid overrides.
func Load() (*Config, error) {
	cfg := &Config{
		SharedMemoryPrefix: getString("ACR_SHM_PREFIX", DefaultSharedMemoryPrefix),
		RawLogDir:          getString("ACR_RAWLOG_DIR", DefaultRawLogDir),
		NotesDir:           getString("ACR_NOTES_DIR", DefaultNotesDir),
		StopFilePath:       getString("ACR_STOP_FILE", DefaultStopFilePath),
		AnalyticalDBPath:   getString("ACR_ANALYTICAL_DB", DefaultAnalyticalDBPath),
		PhysicsHz:          DefaultPhysicsHz,
		GraphicsHz:         DefaultGraphicsHz,
		Logging: LoggingConfig{
			Level:      strings.TrimSpace(getString("ACR_LOG_LEVEL", DefaultLogLevel)),
			Path:       strings.TrimSpace(getString("ACR_LOG_PATH", DefaultLogPath)),
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
			MaxAgeDays: DefaultLogMaxAgeDays,
			Compress:   DefaultLogCompress,
		},
		SlicerAnalysisDBPath: getString("ACR_SLICER_ANALYSIS_DB", DefaultSlicerAnalysisDBPath),
		SlicerBackupDBPath:   getString("ACR_SLICER_BACKUP_DB", DefaultSlicerBackupDBPath),
	}

	var problems []string

	if raw := strings.TrimSpace(os.Getenv("ACR_PHYSICS_HZ")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ACR_PHYSICS_HZ must be a positive integer, got %q", raw))
		} else {
			cfg.PhysicsHz = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ACR_GRAPHICS_HZ")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ACR_GRAPHICS_HZ must be a positive integer, got %q", raw))
		} else {
			cfg.GraphicsHz = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ACR_LOG_MAX_SIZE_MB")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value <= 0 {
			problems = append(problems, fmt.Sprintf("ACR_LOG_MAX_SIZE_MB must be a positive integer, got %q", raw))
		} else {
			cfg.Logging.MaxSizeMB = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ACR_LOG_MAX_BACKUPS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("ACR_LOG_MAX_BACKUPS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Logging.MaxBackups = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ACR_LOG_MAX_AGE_DAYS")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil || value < 0 {
			problems = append(problems, fmt.Sprintf("ACR_LOG_MAX_AGE_DAYS must be a non-negative integer, got %q", raw))
		} else {
			cfg.Logging.MaxAgeDays = value
		}
	}

	if raw := strings.TrimSpace(os.Getenv("ACR_LOG_COMPRESS")); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			problems = append(problems, fmt.Sprintf("ACR_LOG_COMPRESS must be a boolean value, got %q", raw))
		} else {
			cfg.Logging.Compress = value
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

