package analyticaldb

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"acrtelemetry/internal/decode"
	"acrtelemetry/internal/notes"
)

// DB wraps a handle to the analytical SQLite database.
type DB struct {
	conn *sql.DB
}

// Open opens (creating if absent) the SQLite database at path and ensures
// the schema exists.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("analyticaldb: open %s: %w", path, err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("analyticaldb: ensure schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error { return db.conn.Close() }

// RecordingExists reports whether a recording with this source file name
// was already exported, letting callers short-circuit duplicate exports.
func RecordingExists(path, sourceFile string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	}
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return false, fmt.Errorf("analyticaldb: open %s: %w", path, err)
	}
	defer conn.Close()

	var count int64
	err = conn.QueryRow(`SELECT COUNT(*) FROM recordings WHERE source_file = ?`, sourceFile).Scan(&count)
	if err != nil {
		// the recordings table may not exist yet on a brand-new file
		return false, nil
	}
	return count > 0, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// RecordingNotesContent is the optional free-form and per-field note
// content attached to a recording.
type RecordingNotesContent struct {
	Notes             string
	Laptime           string
	Result            string
	DriverImpression  string
	TestedParameters  string
	Conditions        string
	SetupNotes        string
	SessionGoal       string
	Incident          string
}

func notesContentFromBundle(b *notes.Bundle) RecordingNotesContent {
	if b == nil {
		return RecordingNotesContent{}
	}
	return RecordingNotesContent{
		Notes:            b.Notes,
		Laptime:          b.Fields["laptime"],
		Result:           b.Fields["result"],
		DriverImpression: b.Fields["driver_impression"],
		TestedParameters: b.Fields["tested_parameters"],
		Conditions:       b.Fields["conditions"],
		SetupNotes:       b.Fields["setup_notes"],
		SessionGoal:      b.Fields["session_goal"],
		Incident:         b.Fields["incident"],
	}
}

// ExportInput bundles everything a single recording export needs.
type ExportInput struct {
	SourceFile     string
	Physics        []decode.PhysicsFrame
	Graphics       []decode.GraphicsRecord
	SampleRateHz   uint32
	GraphicsHz     uint32
	Statics        *decode.StaticsFrame
	Notes          *notes.Bundle
	SyncAnnotations []notes.Annotation
}

// Export writes a complete recording (recording row, statics, notes,
// annotations, and batched physics/graphics rows) in a single transaction,
// returning the surrogate recording id.
func (db *DB) Export(in ExportInput) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("analyticaldb: begin transaction: %w", err)
	}
	defer tx.Rollback()

	dt := 1.0 / float64(in.SampleRateHz)
	durationSecs := float64(len(in.Physics)) * dt
	createdAt := time.Now().UTC().Format("2006-01-02 15:04:05")

	res, err := tx.Exec(
		`INSERT INTO recordings (source_file, created_at, duration_secs, sample_count) VALUES (?, ?, ?, ?)`,
		in.SourceFile, createdAt, durationSecs, len(in.Physics),
	)
	if err != nil {
		return 0, fmt.Errorf("analyticaldb: insert recording: %w", err)
	}
	recordingID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("analyticaldb: last insert id: %w", err)
	}

	if err := insertStatics(tx, recordingID, in.Statics); err != nil {
		return 0, err
	}
	if in.Notes == nil {
		if _, err := tx.Exec(`INSERT INTO recording_notes (recording_id) VALUES (?)`, recordingID); err != nil {
			return 0, fmt.Errorf("analyticaldb: insert empty recording_notes: %w", err)
		}
	} else if err := insertNotes(tx, recordingID, notesContentFromBundle(in.Notes)); err != nil {
		return 0, err
	}
	if err := insertAnnotations(tx, recordingID, mergeAnnotations(in.Notes, in.SyncAnnotations)); err != nil {
		return 0, err
	}
	if err := insertPhysics(tx, recordingID, in.Physics, dt); err != nil {
		return 0, err
	}
	if in.GraphicsHz > 0 && len(in.Graphics) > 0 {
		graphicsDt := 1.0 / float64(in.GraphicsHz)
		if err := insertGraphics(tx, recordingID, in.Graphics, graphicsDt); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("analyticaldb: commit: %w", err)
	}
	return recordingID, nil
}

func insertStatics(tx *sql.Tx, recordingID int64, s *decode.StaticsFrame) error {
	if s == nil {
		_, err := tx.Exec(`INSERT INTO statics (recording_id) VALUES (?)`, recordingID)
		if err != nil {
			return fmt.Errorf("analyticaldb: insert empty statics: %w", err)
		}
		return nil
	}
	_, err := tx.Exec(
		`INSERT INTO statics (
			recording_id, sm_version, ac_version, number_of_sessions, num_cars, track, sector_count,
			player_name, player_surname, player_nick, car_model, max_rpm, max_fuel,
			penalty_enabled, aid_fuel_rate, aid_tyre_rate, aid_mechanical_damage, aid_stability, aid_auto_clutch,
			pit_window_start, pit_window_end, is_online, dry_tyres_name, wet_tyres_name
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recordingID, s.SmVersion, s.AcVersion, s.NumberOfSessions, s.NumCars, s.Track, s.SectorCount,
		s.PlayerName, s.PlayerSurname, s.PlayerNick, s.CarModel, s.MaxRPM, s.MaxFuel,
		boolInt(s.PenaltyEnabled), s.AidFuelRate, s.AidTyreRate, s.AidMechanicalDamage, s.AidStability, boolInt(s.AidAutoClutch),
		s.PitWindowStart, s.PitWindowEnd, boolInt(s.IsOnline), s.DryTyresName, s.WetTyresName,
	)
	if err != nil {
		return fmt.Errorf("analyticaldb: insert statics: %w", err)
	}
	return nil
}

func insertNotes(tx *sql.Tx, recordingID int64, n RecordingNotesContent) error {
	_, err := tx.Exec(
		`INSERT INTO recording_notes (
			recording_id, notes, laptime, result, driver_impression, tested_parameters,
			conditions, setup_notes, session_goal, incident
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		recordingID, n.Notes, n.Laptime, n.Result, n.DriverImpression, n.TestedParameters,
		n.Conditions, n.SetupNotes, n.SessionGoal, n.Incident,
	)
	if err != nil {
		return fmt.Errorf("analyticaldb: insert recording_notes: %w", err)
	}
	return nil
}

func insertAnnotations(tx *sql.Tx, recordingID int64, anns []notes.Annotation) error {
	if len(anns) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(
		`INSERT INTO annotations (recording_id, time_offset_sec, time_end_sec, text, tag) VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("analyticaldb: prepare annotation insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range anns {
		if _, err := stmt.Exec(recordingID, a.TimeOffsetSec, a.TimeEndSec, a.Text, a.Tag); err != nil {
			return fmt.Errorf("analyticaldb: insert annotation: %w", err)
		}
	}
	return nil
}

func insertPhysics(tx *sql.Tx, recordingID int64, records []decode.PhysicsFrame, dt float64) error {
	stmt, err := tx.Prepare(physicsInsertSQL)
	if err != nil {
		return fmt.Errorf("analyticaldb: prepare physics insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		timeOffset := float64(i) * dt
		args := physicsRowArgs(recordingID, timeOffset, r)
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("analyticaldb: insert physics row %d: %w", i, err)
		}
	}
	return nil
}

func insertGraphics(tx *sql.Tx, recordingID int64, records []decode.GraphicsRecord, dt float64) error {
	stmt, err := tx.Prepare(graphicsInsertSQL)
	if err != nil {
		return fmt.Errorf("analyticaldb: prepare graphics insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		timeOffset := float64(i) * dt
		args := graphicsRowArgs(recordingID, timeOffset, r)
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("analyticaldb: insert graphics row %d: %w", i, err)
		}
	}
	return nil
}

// mergeAnnotations combines synthesized sync markers with any user
// annotations from the note bundle, sorted ascending by time offset.
func mergeAnnotations(bundle *notes.Bundle, sync []notes.Annotation) []notes.Annotation {
	var all []notes.Annotation
	all = append(all, sync...)
	if bundle != nil {
		all = append(all, bundle.Annotations...)
	}
	for i := 1; i < len(all); i++ {
		j := i
		for j > 0 && all[j-1].TimeOffsetSec > all[j].TimeOffsetSec {
			all[j-1], all[j] = all[j], all[j-1]
			j--
		}
	}
	return all
}

// SynthesizeSyncAnnotations performs the single forward scan over a
// physics sample sequence described in the sync-annotation contract:
// one annotation on every air_temp rising edge across 0, and one
// annotation on the first speed_kmh rising edge across 3 km/h.
func SynthesizeSyncAnnotations(records []decode.PhysicsFrame, sampleRateHz uint32) []notes.Annotation {
	var anns []notes.Annotation
	dt := 1.0 / float64(sampleRateHz)

	speedCrossingSeen := false

	for i, r := range records {
		t := float64(i) * dt

		if r.AirTemp > 0 && (i == 0 || records[i-1].AirTemp <= 0) {
			anns = append(anns, notes.Annotation{
				TimeOffsetSec: t,
				Text:          fmt.Sprintf("air_temp > 0 (%.1f °C)", r.AirTemp),
				Tag:           "sync_air_temp_gt_0",
			})
		}
		if !speedCrossingSeen && r.SpeedKmh > 3 && (i == 0 || records[i-1].SpeedKmh <= 3) {
			speedCrossingSeen = true
			anns = append(anns, notes.Annotation{
				TimeOffsetSec: t,
				Text:          fmt.Sprintf("speed_kmh > 3 (%.1f km/h)", r.SpeedKmh),
				Tag:           "sync_speed_gt_0",
			})
		}
	}
	return anns
}
