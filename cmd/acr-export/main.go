// Command acr-export turns captured raw telemetry logs into MoTeC
// CSV/LD files or rows in the analytical SQLite database.
//
// Usage:
//
//	acr-export [--csv | --sqlite] [--db path] [--raw-log-dir dir] <input.physics.rawlog>
//	acr-export [--csv | --sqlite] [--db path] <directory>
//	acr-export --raw-dir [--csv | --sqlite] [--db path]
//
// Batch mode (a directory, or --raw-dir) walks every *.physics.rawlog
// file in the target directory, skipping any recording that already has
// output, and continues past per-file errors rather than aborting the
// run.
//
// --retain-max and --retain-age, when set, prune the raw log directory
// down to a bounded size after the export finishes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"acrtelemetry/internal/acrerr"
	"acrtelemetry/internal/analyticaldb"
	"acrtelemetry/internal/cliconfig"
	"acrtelemetry/internal/config"
	"acrtelemetry/internal/decode"
	"acrtelemetry/internal/logging"
	"acrtelemetry/internal/motec"
	"acrtelemetry/internal/notes"
	"acrtelemetry/internal/rawlog"
)

const (
	physicsSuffix  = ".physics.rawlog"
	graphicsSuffix = ".graphics.rawlog"
)

type exportMode int

const (
	exportSQLite exportMode = iota
	exportCSV
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-export:", err)
		os.Exit(1)
	}

	rawDirFlag := flag.Bool("raw-dir", false, "batch-export every recording in the configured raw log directory")
	csvFlag := flag.Bool("csv", false, "export to MoTeC CSV and LD instead of the analytical database")
	sqliteFlag := flag.Bool("sqlite", false, "export to the analytical SQLite database (default)")
	dbFlag := flag.String("db", "", "analytical database path (overrides configuration)")
	rawLogDirFlag := flag.String("raw-log-dir", "", "raw log directory (overrides configuration)")
	retainMax := flag.Int("retain-max", 0, "after exporting, prune the raw log directory to at most N recordings (0 disables)")
	retainAge := flag.Duration("retain-age", 0, "after exporting, prune raw log recordings older than this (0 disables)")
	flag.Parse()

	if *csvFlag && *sqliteFlag {
		fmt.Fprintln(os.Stderr, "acr-export: choose only one of --csv or --sqlite")
		os.Exit(1)
	}
	mode := exportSQLite
	if *csvFlag {
		mode = exportCSV
	}

	paths := cliconfig.ResolvePaths(cfg, *rawLogDirFlag, *dbFlag, "", "", "")

	input := flag.Arg(0)
	if input == "" {
		if !*rawDirFlag {
			fmt.Fprintln(os.Stderr, "usage: acr-export [--raw-dir] [--csv | --sqlite] [--db path] [--raw-log-dir dir] [input]")
			os.Exit(1)
		}
		input = paths.RawLogDir
	}

	info, err := os.Stat(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-export:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-export:", err)
		os.Exit(1)
	}
	defer log.Sync()

	retention := rawlog.RetentionPolicy{MaxRecordings: *retainMax, MaxAge: *retainAge}

	if info.IsDir() {
		exported, skipped := batchExport(input, mode, paths, log)
		fmt.Printf("Batch done: %d exported, %d skipped\n", exported, skipped)
		applyRetention(input, retention, log)
		return
	}

	if !strings.HasSuffix(input, physicsSuffix) {
		fmt.Fprintf(os.Stderr, "acr-export: %s is not a physics raw log (expected %s)\n", input, physicsSuffix)
		os.Exit(1)
	}
	recordingID, err := exportSingle(input, mode, paths, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "acr-export:", err)
		os.Exit(1)
	}
	if mode == exportSQLite {
		fmt.Printf("Exported recording %d\n", recordingID)
	} else {
		fmt.Println("Export complete")
	}
	applyRetention(filepath.Dir(input), retention, log)
}

// applyRetention runs a single retention sweep over dir when the policy
// actually bounds something, logging the resulting storage footprint.
func applyRetention(dir string, policy rawlog.RetentionPolicy, log *logging.Logger) {
	if policy.MaxRecordings <= 0 && policy.MaxAge <= 0 {
		return
	}
	cleaner := rawlog.NewCleaner(dir, policy, log)
	cleaner.RunOnce()
	stats := cleaner.Stats()
	log.Info("raw log retention swept",
		logging.String("dir", dir),
		logging.Int("recordings", stats.Recordings),
		logging.Int64("bytes", stats.Bytes))
}

// batchExport scans dir for physics raw logs and exports each one that
// doesn't already have output, logging and continuing past any single
// file's failure.
func batchExport(dir string, mode exportMode, paths cliconfig.Paths, log *logging.Logger) (exported, skipped int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Warn("cannot read raw log directory", logging.String("dir", dir), logging.Error(err))
		return 0, 0
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, physicsSuffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)

		skip, err := alreadyExported(path, mode, paths)
		if err != nil {
			log.Warn("cannot check existing export, skipping", logging.String("path", path), logging.Error(err))
			continue
		}
		if skip {
			skipped++
			log.Info("already exported, skipping", logging.String("path", path))
			continue
		}

		if _, err := exportSingle(path, mode, paths, log); err != nil {
			if errors.Is(err, acrerr.ErrEmptyRecording) {
				log.Warn("empty file, skipping", logging.String("path", path))
			} else {
				log.Warn("corrupt or unreadable file, skipping", logging.String("path", path), logging.Error(err))
			}
			continue
		}
		exported++
	}

	log.Info("batch done", logging.Int("exported", exported), logging.Int("skipped", skipped))
	return exported, skipped
}

// alreadyExported reports whether path's recording already has output for
// mode, letting batchExport skip it without reprocessing.
func alreadyExported(path string, mode exportMode, paths cliconfig.Paths) (bool, error) {
	switch mode {
	case exportCSV:
		csvPath := strings.TrimSuffix(path, physicsSuffix) + ".csv"
		_, err := os.Stat(csvPath)
		if err == nil {
			return true, nil
		}
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	default:
		return analyticaldb.RecordingExists(paths.AnalyticalDB, filepath.Base(path))
	}
}

// exportSingle exports the physics raw log at path per mode. CSV mode
// additionally writes a MoTeC .ld sibling; sqlite mode does not. It
// returns the analytical database's surrogate recording id, or 0 for
// CSV-only exports.
func exportSingle(path string, mode exportMode, paths cliconfig.Paths, log *logging.Logger) (int64, error) {
	header, records, err := rawlog.ReadAllPhysics(path)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("%s: %w", path, acrerr.ErrEmptyRecording)
	}

	sourceFile := filepath.Base(path)

	statics, err := rawlog.ReadStaticsFile(path)
	if err != nil {
		return 0, err
	}

	var graphicsRecords []decode.GraphicsRecord
	var graphicsHz uint32
	graphicsPath := strings.TrimSuffix(path, physicsSuffix) + graphicsSuffix
	if _, statErr := os.Stat(graphicsPath); statErr == nil {
		gheader, grecords, err := rawlog.ReadAllGraphics(graphicsPath)
		if err != nil {
			return 0, err
		}
		graphicsRecords = grecords
		graphicsHz = gheader.TargetHz
	}

	var recordingID int64
	switch mode {
	case exportCSV:
		csvPath := strings.TrimSuffix(path, physicsSuffix) + ".csv"
		if err := motec.WriteCSV(csvPath, records); err != nil {
			return 0, err
		}
		log.Info("wrote csv", logging.String("path", csvPath))

		ldPath := strings.TrimSuffix(path, physicsSuffix) + ".ld"
		if err := motec.WriteLD(ldPath, records); err != nil {
			return 0, err
		}
		log.Info("wrote motec log", logging.String("path", ldPath))
	default:
		bundle, err := notes.LoadBundleFor(path)
		if err != nil {
			return 0, err
		}
		sync := analyticaldb.SynthesizeSyncAnnotations(records, header.TargetHz)

		db, err := analyticaldb.Open(paths.AnalyticalDB)
		if err != nil {
			return 0, err
		}
		defer db.Close()

		recordingID, err = db.Export(analyticaldb.ExportInput{
			SourceFile:      sourceFile,
			Physics:         records,
			Graphics:        graphicsRecords,
			SampleRateHz:    header.TargetHz,
			GraphicsHz:      graphicsHz,
			Statics:         statics,
			Notes:           bundle,
			SyncAnnotations: sync,
		})
		if err != nil {
			return 0, err
		}
		log.Info("exported recording", logging.String("source", sourceFile), logging.Int64("recording_id", recordingID))
	}

	return recordingID, nil
}
