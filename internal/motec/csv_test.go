package motec

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

func TestWriteCSVHeaderMatchesChannelCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	records := sampleRecords(3)
	require.NoError(t, WriteCSV(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1+len(records))
	require.Len(t, rows[0], 25)
	require.Equal(t, "Speed (km/h)", rows[0][1])
	require.Equal(t, "Gear", rows[0][6])
}

func TestWriteCSVRowValuesMatchChannelData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.csv")
	records := sampleRecords(2)
	require.NoError(t, WriteCSV(path, records))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(b))
	rows, err := r.ReadAll()
	require.NoError(t, err)

	speed, err := strconv.ParseFloat(rows[1][1], 32)
	require.NoError(t, err)
	require.InDelta(t, records[0].SpeedKmh, float32(speed), 1e-6)
}
