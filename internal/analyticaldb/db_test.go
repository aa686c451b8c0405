package analyticaldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
	"acrtelemetry/internal/notes"
)

func TestRecordingExistsFalseOnMissingFile(t *testing.T) {
	exists, err := RecordingExists(filepath.Join(t.TempDir(), "nope.db"), "session1")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestExportThenRecordingExists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "analysis.db")

	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	physics := []decode.PhysicsFrame{
		{PacketID: 1, AirTemp: -1, SpeedKmh: 0},
		{PacketID: 2, AirTemp: 5, SpeedKmh: 10},
	}
	statics := &decode.StaticsFrame{Track: "spa", NumCars: 20}

	id, err := db.Export(ExportInput{
		SourceFile:   "session1.physics.rawlog",
		Physics:      physics,
		SampleRateHz: 333,
		Statics:      statics,
		SyncAnnotations: SynthesizeSyncAnnotations(physics, 333),
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	exists, err := RecordingExists(dbPath, "session1.physics.rawlog")
	require.NoError(t, err)
	require.True(t, exists)

	exists, err = RecordingExists(dbPath, "session2.physics.rawlog")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestExportIsIdempotentPerSourceFileCheck(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "analysis.db")
	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Export(ExportInput{
		SourceFile:   "a.rawlog",
		Physics:      []decode.PhysicsFrame{{PacketID: 1}},
		SampleRateHz: 333,
	})
	require.NoError(t, err)

	exists, err := RecordingExists(dbPath, "a.rawlog")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestSynthesizeSyncAnnotationsDetectsRisingEdges(t *testing.T) {
	physics := []decode.PhysicsFrame{
		{AirTemp: -1, SpeedKmh: 0},
		{AirTemp: 2, SpeedKmh: 1},
		{AirTemp: -1, SpeedKmh: 4},
		{AirTemp: 3, SpeedKmh: 1},
	}
	anns := SynthesizeSyncAnnotations(physics, 10)

	var airTempEdges, speedEdges int
	for _, a := range anns {
		switch a.Tag {
		case "sync_air_temp_gt_0":
			airTempEdges++
		case "sync_speed_gt_0":
			speedEdges++
		}
	}
	require.Equal(t, 2, airTempEdges, "air_temp rises twice: index 1 and index 3")
	require.Equal(t, 1, speedEdges, "only the first speed_kmh crossing is recorded")
}

func TestSynthesizeSyncAnnotationsEmitsAtIndexZeroWhenAlreadyAboveThreshold(t *testing.T) {
	physics := []decode.PhysicsFrame{
		{AirTemp: 5, SpeedKmh: 10},
		{AirTemp: 6, SpeedKmh: 11},
	}
	anns := SynthesizeSyncAnnotations(physics, 10)

	var airTempAtZero, speedAtZero bool
	for _, a := range anns {
		if a.TimeOffsetSec != 0 {
			continue
		}
		switch a.Tag {
		case "sync_air_temp_gt_0":
			airTempAtZero = true
		case "sync_speed_gt_0":
			speedAtZero = true
		}
	}
	require.True(t, airTempAtZero, "a recording starting with air_temp already > 0 must sync at t=0")
	require.True(t, speedAtZero, "a recording starting already in motion must sync at t=0")
}

func TestMergeAnnotationsSortsByTimeOffset(t *testing.T) {
	bundle := &notes.Bundle{Annotations: []notes.Annotation{
		{TimeOffsetSec: 5, Tag: "user"},
	}}
	sync := []notes.Annotation{{TimeOffsetSec: 1, Tag: "sync"}}

	merged := mergeAnnotations(bundle, sync)
	require.Len(t, merged, 2)
	require.Equal(t, "sync", merged[0].Tag)
	require.Equal(t, "user", merged[1].Tag)
}
