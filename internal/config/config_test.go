package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ACR_SHM_PREFIX", "")
	t.Setenv("ACR_RAWLOG_DIR", "")
	t.Setenv("ACR_NOTES_DIR", "")
	t.Setenv("ACR_STOP_FILE", "")
	t.Setenv("ACR_ANALYTICAL_DB", "")
	t.Setenv("ACR_PHYSICS_HZ", "")
	t.Setenv("ACR_GRAPHICS_HZ", "")
	t.Setenv("ACR_LOG_LEVEL", "")
	t.Setenv("ACR_LOG_PATH", "")
	t.Setenv("ACR_LOG_MAX_SIZE_MB", "")
	t.Setenv("ACR_LOG_MAX_BACKUPS", "")
	t.Setenv("ACR_LOG_MAX_AGE_DAYS", "")
	t.Setenv("ACR_LOG_COMPRESS", "")
	t.Setenv("ACR_SLICER_ANALYSIS_DB", "")
	t.Setenv("ACR_SLICER_BACKUP_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.SharedMemoryPrefix != DefaultSharedMemoryPrefix {
		t.Fatalf("expected default shm prefix %q, got %q", DefaultSharedMemoryPrefix, cfg.SharedMemoryPrefix)
	}
	if cfg.RawLogDir != DefaultRawLogDir {
		t.Fatalf("expected default raw log dir %q, got %q", DefaultRawLogDir, cfg.RawLogDir)
	}
	if cfg.NotesDir != DefaultNotesDir {
		t.Fatalf("expected default notes dir %q, got %q", DefaultNotesDir, cfg.NotesDir)
	}
	if cfg.StopFilePath != DefaultStopFilePath {
		t.Fatalf("expected default stop file %q, got %q", DefaultStopFilePath, cfg.StopFilePath)
	}
	if cfg.AnalyticalDBPath != DefaultAnalyticalDBPath {
		t.Fatalf("expected default analytical db %q, got %q", DefaultAnalyticalDBPath, cfg.AnalyticalDBPath)
	}
	if cfg.PhysicsHz != DefaultPhysicsHz {
		t.Fatalf("expected default physics hz %d, got %d", DefaultPhysicsHz, cfg.PhysicsHz)
	}
	if cfg.GraphicsHz != DefaultGraphicsHz {
		t.Fatalf("expected default graphics hz %d, got %d", DefaultGraphicsHz, cfg.GraphicsHz)
	}
	if cfg.Logging.Level != DefaultLogLevel {
		t.Fatalf("expected default log level %q, got %q", DefaultLogLevel, cfg.Logging.Level)
	}
	if cfg.Logging.Path != DefaultLogPath {
		t.Fatalf("expected default log path %q, got %q", DefaultLogPath, cfg.Logging.Path)
	}
	if cfg.Logging.MaxSizeMB != DefaultLogMaxSizeMB {
		t.Fatalf("expected default log max size %d, got %d", DefaultLogMaxSizeMB, cfg.Logging.MaxSizeMB)
	}
	if cfg.Logging.MaxBackups != DefaultLogMaxBackups {
		t.Fatalf("expected default log max backups %d, got %d", DefaultLogMaxBackups, cfg.Logging.MaxBackups)
	}
	if cfg.Logging.MaxAgeDays != DefaultLogMaxAgeDays {
		t.Fatalf("expected default log max age %d, got %d", DefaultLogMaxAgeDays, cfg.Logging.MaxAgeDays)
	}
	if !cfg.Logging.Compress {
		t.Fatalf("expected default log compress to be true")
	}
	if cfg.SlicerAnalysisDBPath != DefaultSlicerAnalysisDBPath {
		t.Fatalf("expected default slicer analysis db %q, got %q", DefaultSlicerAnalysisDBPath, cfg.SlicerAnalysisDBPath)
	}
	if cfg.SlicerBackupDBPath != DefaultSlicerBackupDBPath {
		t.Fatalf("expected default slicer backup db %q, got %q", DefaultSlicerBackupDBPath, cfg.SlicerBackupDBPath)
	}
}

func TestLoadOverridesAndValidation(t *testing.T) {
	t.Setenv("ACR_PHYSICS_HZ", "200")
	t.Setenv("ACR_GRAPHICS_HZ", "30")
	t.Setenv("ACR_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.PhysicsHz != 200 {
		t.Fatalf("expected overridden physics hz 200, got %d", cfg.PhysicsHz)
	}
	if cfg.GraphicsHz != 30 {
		t.Fatalf("expected overridden graphics hz 30, got %d", cfg.GraphicsHz)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected overridden log level debug, got %q", cfg.Logging.Level)
	}

	t.Setenv("ACR_PHYSICS_HZ", "not-a-number")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid ACR_PHYSICS_HZ")
	}
}
