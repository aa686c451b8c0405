package motec

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

func sampleRecords(n int) []decode.PhysicsFrame {
	records := make([]decode.PhysicsFrame, n)
	for i := range records {
		records[i] = decode.PhysicsFrame{
			SpeedKmh:   float32(i) * 1.5,
			RPM:        int32(1000 + i*10),
			Gas:        0.5,
			Brake:      0.1,
			SteerAngle: 2,
			Gear:       3,
			GForce:     decode.Vector3f{X: 0.2, Y: 0.3},
			Fuel:       40,
		}
	}
	return records
}

func TestWriteLDProducesExpectedChannelCount(t *testing.T) {
	records := sampleRecords(5)
	channels := buildChannels(records)
	require.Len(t, channels, 25)
	for _, ch := range channels {
		require.Len(t, ch.data, 5)
	}
}

func TestWriteLDHeaderAndDescriptorOffsets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ld")
	records := sampleRecords(3)
	require.NoError(t, WriteLD(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	buf := make([]byte, headSize)
	_, err = f.ReadAt(buf, 0)
	require.NoError(t, err)

	marker := binary.LittleEndian.Uint32(buf[0:4])
	require.Equal(t, uint32(0x40), marker)

	metaPtr := binary.LittleEndian.Uint32(buf[8:12])
	dataPtr := binary.LittleEndian.Uint32(buf[12:16])
	require.Equal(t, uint32(headSize), metaPtr)
	require.Equal(t, uint32(headSize+25*chanHeadSize), dataPtr)

	nChans := binary.LittleEndian.Uint32(buf[86:90])
	require.Equal(t, uint32(25), nChans)

	info, err := f.Stat()
	require.NoError(t, err)
	wantSize := int64(dataPtr) + 25*int64(len(records))*4
	require.Equal(t, wantSize, info.Size())
}

func TestWriteLDFirstChannelDescriptorLinksForward(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ld")
	records := sampleRecords(2)
	require.NoError(t, WriteLD(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	desc := make([]byte, chanHeadSize)
	_, err = f.ReadAt(desc, int64(headSize))
	require.NoError(t, err)

	prev := binary.LittleEndian.Uint32(desc[0:4])
	next := binary.LittleEndian.Uint32(desc[4:8])
	dataPtr := binary.LittleEndian.Uint32(desc[8:12])
	nData := binary.LittleEndian.Uint32(desc[12:16])
	freq := binary.LittleEndian.Uint16(desc[22:24])

	require.Equal(t, uint32(0), prev)
	require.Equal(t, uint32(headSize+chanHeadSize), next)
	require.Equal(t, uint32(headSize+25*chanHeadSize), dataPtr)
	require.Equal(t, uint32(len(records)), nData)
	require.Equal(t, RecFreq, freq)
}

func TestWriteLDChannelDataRegionsAreContiguous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.ld")
	records := sampleRecords(4)
	require.NoError(t, WriteLD(path, records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	dataPtr := uint32(headSize + 25*chanHeadSize)

	speedOffset := dataPtr + uint32(len(records))*4 // Time channel comes first
	buf := make([]byte, 4*len(records))
	_, err = f.ReadAt(buf, int64(speedOffset))
	require.NoError(t, err)

	for i, r := range records {
		bits := binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
		got := math.Float32frombits(bits)
		require.InDelta(t, r.SpeedKmh, got, 1e-6)
	}
}
