package slicer

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite"
)

// AnnotationRange is a Grafana annotation's id and time-offset bounds,
// already converted from epoch milliseconds into recording-relative
// seconds.
type AnnotationRange struct {
	ID    int64
	Start float64
	End   float64
}

const epochOriginOffsetSecs = 1_000_000_000.0

// epochMsToOffset converts a Grafana annotation epoch (ms since Unix
// epoch) into the recording-relative time offset the annotation marks.
// Recordings embed their wall-clock origin by biasing every sample
// timestamp forward by this same constant before it reaches Grafana, so
// subtracting it here recovers the original offset.
func epochMsToOffset(epochMs int64) float64 {
	return float64(epochMs)/1000.0 - epochOriginOffsetSecs
}

// ReadGrafanaAnnotations reads every annotation tagged rid_<recordingID>
// from a Grafana SQLite database, ordered by epoch ascending.
func ReadGrafanaAnnotations(grafanaDB string, recordingID int64) ([]AnnotationRange, error) {
	conn, err := sql.Open("sqlite", grafanaDB)
	if err != nil {
		return nil, fmt.Errorf("slicer: open grafana db: %w", err)
	}
	defer conn.Close()

	tag := fmt.Sprintf("rid_%d", recordingID)
	rows, err := conn.Query(
		`SELECT a.id, a.epoch, COALESCE(a.epoch_end, a.epoch)
		 FROM annotation a
		 JOIN annotation_tag at ON a.id = at.annotation_id
		 JOIN tag t ON at.tag_id = t.id
		 WHERE t.key = ?
		 ORDER BY a.epoch`,
		tag,
	)
	if err != nil {
		return nil, fmt.Errorf("slicer: query grafana annotations: %w", err)
	}
	defer rows.Close()

	var out []AnnotationRange
	for rows.Next() {
		var id, startMs, endMs int64
		if err := rows.Scan(&id, &startMs, &endMs); err != nil {
			return nil, fmt.Errorf("slicer: scan grafana annotation row: %w", err)
		}
		out = append(out, AnnotationRange{ID: id, Start: epochMsToOffset(startMs), End: epochMsToOffset(endMs)})
	}
	return out, rows.Err()
}

// RunExport copies the physics/graphics/statics/recordings rows for
// recordingID into analysisDB, restricted to the time ranges named by
// Grafana annotations tagged rid_<recordingID> in grafanaDB, and mirrors
// the selected annotation/tag rows alongside them. If no annotations are
// tagged for this recording, any stale rows for it in analysisDB are
// cleared instead.
func RunExport(recordingID int64, grafanaDB, telemetryDB, analysisDB string) (string, error) {
	if _, err := os.Stat(grafanaDB); err != nil {
		return "", fmt.Errorf("slicer: grafana db not found: %s", grafanaDB)
	}
	if _, err := os.Stat(telemetryDB); err != nil {
		return "", fmt.Errorf("slicer: telemetry db not found: %s", telemetryDB)
	}

	ranges, err := ReadGrafanaAnnotations(grafanaDB, recordingID)
	if err != nil {
		return "", err
	}
	if len(ranges) == 0 {
		return clearRecording(analysisDB, recordingID)
	}

	backupPath := analysisDB + ".bak"
	if _, err := os.Stat(analysisDB); err == nil {
		if err := copyFile(analysisDB, backupPath); err != nil {
			return "", fmt.Errorf("slicer: back up analysis db: %w", err)
		}
	} else {
		backupPath = ""
	}

	conn, err := sql.Open("sqlite", analysisDB)
	if err != nil {
		return "", fmt.Errorf("slicer: open analysis db: %w", err)
	}
	defer conn.Close()
	if _, err := conn.Exec(schema); err != nil {
		return "", fmt.Errorf("slicer: ensure analysis schema: %w", err)
	}

	telemetryPath, err := filepath.Abs(telemetryDB)
	if err != nil {
		telemetryPath = telemetryDB
	}
	grafanaPath, err := filepath.Abs(grafanaDB)
	if err != nil {
		grafanaPath = grafanaDB
	}

	if _, err := conn.Exec(`ATTACH DATABASE ? AS src`, telemetryPath); err != nil {
		return "", fmt.Errorf("slicer: attach telemetry db: %w", err)
	}
	defer conn.Exec(`DETACH DATABASE src`)
	if _, err := conn.Exec(`ATTACH DATABASE ? AS grafana`, grafanaPath); err != nil {
		return "", fmt.Errorf("slicer: attach grafana db: %w", err)
	}
	defer conn.Exec(`DETACH DATABASE grafana`)

	annIDs := make([]int64, len(ranges))
	for i, r := range ranges {
		annIDs[i] = r.ID
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(annIDs)), ",")

	if err := copySegments(conn, recordingID, ranges, annIDs, placeholders); err != nil {
		return "", err
	}

	if _, err := conn.Exec(`DETACH DATABASE src`); err != nil {
		return "", fmt.Errorf("slicer: detach telemetry db: %w", err)
	}
	if _, err := conn.Exec(`DETACH DATABASE grafana`); err != nil {
		return "", fmt.Errorf("slicer: detach grafana db: %w", err)
	}

	var count int64
	if err := conn.QueryRow(`SELECT COUNT(*) FROM physics WHERE recording_id = ?`, recordingID).Scan(&count); err != nil {
		return "", fmt.Errorf("slicer: count exported physics rows: %w", err)
	}

	if backupPath != "" {
		return fmt.Sprintf("OK: %d rows in analysis for recording %d -> %s (backup: %s)", count, recordingID, analysisDB, backupPath), nil
	}
	return fmt.Sprintf("OK: %d rows in analysis for recording %d -> %s", count, recordingID, analysisDB), nil
}

func clearRecording(analysisDB string, recordingID int64) (string, error) {
	if _, err := os.Stat(analysisDB); err == nil {
		conn, err := sql.Open("sqlite", analysisDB)
		if err != nil {
			return "", fmt.Errorf("slicer: open analysis db: %w", err)
		}
		defer conn.Close()
		if _, err := conn.Exec(schema); err != nil {
			return "", fmt.Errorf("slicer: ensure analysis schema: %w", err)
		}
		stmts := []string{
			`DELETE FROM physics WHERE recording_id = ?`,
			`DELETE FROM graphics WHERE recording_id = ?`,
			`DELETE FROM statics WHERE recording_id = ?`,
			`DELETE FROM recordings WHERE id = ?`,
		}
		for _, stmt := range stmts {
			if _, err := conn.Exec(stmt, recordingID); err != nil {
				return "", fmt.Errorf("slicer: clear stale rows: %w", err)
			}
		}
		for _, stmt := range []string{`DELETE FROM annotation_tag`, `DELETE FROM annotation`, `DELETE FROM tag`} {
			if _, err := conn.Exec(stmt); err != nil {
				return "", fmt.Errorf("slicer: clear mirror tables: %w", err)
			}
		}
	}
	return fmt.Sprintf("OK: No annotations with tag rid_%d - analysis.db cleared for recording %d", recordingID, recordingID), nil
}

func copySegments(conn *sql.DB, recordingID int64, ranges []AnnotationRange, annIDs []int64, placeholders string) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("slicer: begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM physics WHERE recording_id = ?`,
		`DELETE FROM graphics WHERE recording_id = ?`,
		`DELETE FROM statics WHERE recording_id = ?`,
		`DELETE FROM recordings WHERE id = ?`,
	} {
		if _, err := tx.Exec(stmt, recordingID); err != nil {
			return fmt.Errorf("slicer: clear existing recording rows: %w", err)
		}
	}
	for _, stmt := range []string{`DELETE FROM annotation_tag`, `DELETE FROM annotation`, `DELETE FROM tag`} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("slicer: clear mirror tables: %w", err)
		}
	}

	tagIDSet := map[int64]struct{}{}
	for _, id := range annIDs {
		rows, err := tx.Query(`SELECT tag_id FROM grafana.annotation_tag WHERE annotation_id = ?`, id)
		if err != nil {
			return fmt.Errorf("slicer: query grafana tag ids: %w", err)
		}
		for rows.Next() {
			var tagID int64
			if err := rows.Scan(&tagID); err != nil {
				rows.Close()
				return fmt.Errorf("slicer: scan grafana tag id: %w", err)
			}
			tagIDSet[tagID] = struct{}{}
		}
		rows.Close()
	}
	tagIDs := make([]int64, 0, len(tagIDSet))
	for id := range tagIDSet {
		tagIDs = append(tagIDs, id)
	}
	sort.Slice(tagIDs, func(i, j int) bool { return tagIDs[i] < tagIDs[j] })

	for _, tagID := range tagIDs {
		if _, err := tx.Exec(`INSERT OR IGNORE INTO main.tag SELECT * FROM grafana.tag WHERE id = ?`, tagID); err != nil {
			return fmt.Errorf("slicer: copy tag row: %w", err)
		}
	}

	annArgs := make([]any, len(annIDs))
	for i, id := range annIDs {
		annArgs[i] = id
	}
	if _, err := tx.Exec(fmt.Sprintf(`INSERT INTO main.annotation SELECT * FROM grafana.annotation WHERE id IN (%s)`, placeholders), annArgs...); err != nil {
		return fmt.Errorf("slicer: copy annotation rows: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf(`INSERT INTO main.annotation_tag SELECT * FROM grafana.annotation_tag WHERE annotation_id IN (%s)`, placeholders), annArgs...); err != nil {
		return fmt.Errorf("slicer: copy annotation_tag rows: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO main.recordings (id, source_file, created_at, duration_secs, sample_count)
		 SELECT id, source_file, created_at, duration_secs, sample_count FROM src.recordings WHERE id = ?`,
		recordingID,
	); err != nil {
		return fmt.Errorf("slicer: copy recording row: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO main.statics SELECT * FROM src.statics WHERE recording_id = ?`, recordingID); err != nil {
		return fmt.Errorf("slicer: copy statics row: %w", err)
	}

	for _, r := range ranges {
		if _, err := tx.Exec(
			`INSERT INTO main.graphics SELECT * FROM src.graphics
			 WHERE recording_id = ? AND time_offset >= ? AND time_offset <= ?`,
			recordingID, r.Start, r.End,
		); err != nil {
			return fmt.Errorf("slicer: copy graphics segment: %w", err)
		}
	}

	for _, r := range ranges {
		if _, err := tx.Exec(
			`INSERT INTO main.physics SELECT p.*, ? FROM src.physics p
			 WHERE p.recording_id = ? AND p.time_offset >= ? AND p.time_offset <= ?`,
			r.ID, recordingID, r.Start, r.End,
		); err != nil {
			return fmt.Errorf("slicer: copy physics segment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("slicer: commit: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, in)
	return err
}
