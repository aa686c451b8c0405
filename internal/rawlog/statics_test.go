package rawlog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

func TestWriteStaticsFileThenReadStaticsFileRoundTrips(t *testing.T) {
	dir := t.TempDir()
	rawlogPath := filepath.Join(dir, "session1.physics.rawlog")

	in := decode.StaticsFrame{Track: "spa", CarModel: "amr_v12_vantage_gt3", NumCars: 1, MaxRPM: 9250}
	require.NoError(t, WriteStaticsFile(rawlogPath, in))

	out, err := ReadStaticsFile(rawlogPath)
	require.NoError(t, err)
	require.NotNil(t, out)
	require.Equal(t, in, *out)
}

func TestReadStaticsFileReturnsNilWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	out, err := ReadStaticsFile(filepath.Join(dir, "nothere.physics.rawlog"))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestStaticsWriterImplementsCaptureSink(t *testing.T) {
	dir := t.TempDir()
	rawlogPath := filepath.Join(dir, "session2.physics.rawlog")

	w := NewStaticsWriter(rawlogPath)
	require.NoError(t, w.WriteStatics(decode.StaticsFrame{Track: "monza"}))

	out, err := ReadStaticsFile(rawlogPath)
	require.NoError(t, err)
	require.Equal(t, "monza", out.Track)
}
