package slicer

import (
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"acrtelemetry/internal/analyticaldb"
	"acrtelemetry/internal/decode"
)

func TestEpochMsToOffset(t *testing.T) {
	offset := epochMsToOffset(1_000_000_000_500)
	require.InDelta(t, 0.5, offset, 1e-9)
}

func buildTelemetryDB(t *testing.T, path string, recordingID int64) {
	t.Helper()
	db, err := analyticaldb.Open(path)
	require.NoError(t, err)
	defer db.Close()

	physics := make([]decode.PhysicsFrame, 100)
	for i := range physics {
		physics[i] = decode.PhysicsFrame{PacketID: int32(i)}
	}
	id, err := db.Export(analyticaldb.ExportInput{
		SourceFile:   "session.physics.rawlog",
		Physics:      physics,
		SampleRateHz: 10,
	})
	require.NoError(t, err)
	require.Equal(t, recordingID, id)
}

func buildGrafanaDB(t *testing.T, path string, recordingID int64, startSec, endSec float64) int64 {
	t.Helper()
	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`
		CREATE TABLE annotation (
			id INTEGER PRIMARY KEY, org_id INTEGER NOT NULL, alert_id INTEGER, user_id INTEGER,
			dashboard_id INTEGER, panel_id INTEGER, category_id INTEGER, type TEXT NOT NULL, title TEXT NOT NULL,
			text TEXT NOT NULL, metric TEXT, prev_state TEXT NOT NULL, new_state TEXT NOT NULL, data TEXT NOT NULL,
			epoch INTEGER NOT NULL, region_id INTEGER, tags TEXT, created INTEGER, updated INTEGER,
			epoch_end INTEGER NOT NULL, dashboard_uid TEXT
		);
		CREATE TABLE tag (id INTEGER PRIMARY KEY, key TEXT NOT NULL, value TEXT NOT NULL);
		CREATE TABLE annotation_tag (id INTEGER PRIMARY KEY, annotation_id INTEGER NOT NULL, tag_id INTEGER NOT NULL);
	`)
	require.NoError(t, err)

	startMs := int64((startSec + epochOriginOffsetSecs) * 1000)
	endMs := int64((endSec + epochOriginOffsetSecs) * 1000)

	res, err := conn.Exec(
		`INSERT INTO annotation (org_id, type, title, text, prev_state, new_state, data, epoch, epoch_end)
		 VALUES (1, 'annotation', 'marker', 'marker', '', '', '{}', ?, ?)`,
		startMs, endMs,
	)
	require.NoError(t, err)
	annID, err := res.LastInsertId()
	require.NoError(t, err)

	tagRes, err := conn.Exec(`INSERT INTO tag (key, value) VALUES (?, '')`, fmt.Sprintf("rid_%d", recordingID))
	require.NoError(t, err)
	tagID, err := tagRes.LastInsertId()
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO annotation_tag (annotation_id, tag_id) VALUES (?, ?)`, annID, tagID)
	require.NoError(t, err)

	return annID
}

func TestRunExportClearsWhenNoAnnotations(t *testing.T) {
	dir := t.TempDir()
	telemetryPath := filepath.Join(dir, "telemetry.db")
	grafanaPath := filepath.Join(dir, "grafana.db")
	analysisPath := filepath.Join(dir, "analysis.db")

	buildTelemetryDB(t, telemetryPath, 1)

	conn, err := sql.Open("sqlite", grafanaPath)
	require.NoError(t, err)
	_, err = conn.Exec(`
		CREATE TABLE annotation (id INTEGER PRIMARY KEY, org_id INTEGER NOT NULL, alert_id INTEGER, user_id INTEGER,
			dashboard_id INTEGER, panel_id INTEGER, category_id INTEGER, type TEXT NOT NULL, title TEXT NOT NULL,
			text TEXT NOT NULL, metric TEXT, prev_state TEXT NOT NULL, new_state TEXT NOT NULL, data TEXT NOT NULL,
			epoch INTEGER NOT NULL, region_id INTEGER, tags TEXT, created INTEGER, updated INTEGER,
			epoch_end INTEGER NOT NULL, dashboard_uid TEXT);
		CREATE TABLE tag (id INTEGER PRIMARY KEY, key TEXT NOT NULL, value TEXT NOT NULL);
		CREATE TABLE annotation_tag (id INTEGER PRIMARY KEY, annotation_id INTEGER NOT NULL, tag_id INTEGER NOT NULL);
	`)
	require.NoError(t, err)
	conn.Close()

	msg, err := RunExport(1, grafanaPath, telemetryPath, analysisPath)
	require.NoError(t, err)
	require.Contains(t, msg, "cleared")
}

func TestRunExportCopiesSelectedSegment(t *testing.T) {
	dir := t.TempDir()
	telemetryPath := filepath.Join(dir, "telemetry.db")
	grafanaPath := filepath.Join(dir, "grafana.db")
	analysisPath := filepath.Join(dir, "analysis.db")

	buildTelemetryDB(t, telemetryPath, 1)
	buildGrafanaDB(t, grafanaPath, 1, 1.0, 3.0)

	msg, err := RunExport(1, grafanaPath, telemetryPath, analysisPath)
	require.NoError(t, err)
	require.Contains(t, msg, "OK:")

	conn, err := sql.Open("sqlite", analysisPath)
	require.NoError(t, err)
	defer conn.Close()

	var count int64
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM physics WHERE recording_id = 1`).Scan(&count))
	require.Greater(t, count, int64(0))

	var annotationID int64
	require.NoError(t, conn.QueryRow(`SELECT annotation_id FROM physics LIMIT 1`).Scan(&annotationID))
	require.Greater(t, annotationID, int64(0))
}

func TestServeExportEndpointRequiresRecordingID(t *testing.T) {
	dir := t.TempDir()
	telemetryPath := filepath.Join(dir, "telemetry.db")
	grafanaPath := filepath.Join(dir, "grafana.db")
	analysisPath := filepath.Join(dir, "analysis.db")
	buildTelemetryDB(t, telemetryPath, 1)
	buildGrafanaDB(t, grafanaPath, 1, 1.0, 2.0)

	srv := httptest.NewServer(ExportHandler(grafanaPath, telemetryPath, analysisPath))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/export")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestServeExportEndpointRunsExport(t *testing.T) {
	dir := t.TempDir()
	telemetryPath := filepath.Join(dir, "telemetry.db")
	grafanaPath := filepath.Join(dir, "grafana.db")
	analysisPath := filepath.Join(dir, "analysis.db")
	buildTelemetryDB(t, telemetryPath, 1)
	buildGrafanaDB(t, grafanaPath, 1, 1.0, 2.0)

	srv := httptest.NewServer(ExportHandler(grafanaPath, telemetryPath, analysisPath))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/export?recording_id=1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/unknown")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
