package decode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeStaticsExactSize(t *testing.T) {
	buf := make([]byte, StaticsSize)
	f, err := DecodeStatics(buf)
	require.NoError(t, err)
	require.Equal(t, int32(0), f.NumCars)
}

func TestDecodeStaticsTooShort(t *testing.T) {
	buf := make([]byte, StaticsSize-1)
	_, err := DecodeStatics(buf)
	require.Error(t, err)
}

func TestDecodeStaticsFieldsSurviveDeprecatedSkips(t *testing.T) {
	var b graphicsBuilder
	b.wide("1.9", 15, 0)
	b.wide("1.9.5", 15, 0)
	b.i32(1)  // number_of_sessions
	b.i32(20) // num_cars
	b.wide("car", 33, 0)
	b.wide("track", 33, 0)
	b.wide("first", 33, 0)
	b.wide("last", 33, 0)
	b.wide("nick", 33, 2)
	b.i32(3) // sector_count
	b.f32(500)
	b.f32(600)
	b.i32(9000) // max_rpm
	b.f32(100)  // max_fuel
	for i := 0; i < 4; i++ {
		b.f32(0)
	}
	for i := 0; i < 4; i++ {
		b.f32(0)
	}
	b.f32(0)
	b.f32(0)
	b.f32(0)
	b.boolI32(true) // penalty_enabled
	b.f32(1)
	b.f32(1)
	b.f32(1)
	b.f32(0)
	b.f32(1) // aid_stability
	b.boolI32(true) // aid_auto_clutch
	b.i32(0)
	b.i32(0)
	b.i32(0)
	b.i32(0)
	b.f32(0)
	b.i32(0)
	b.i32(0)
	b.f32(0)
	b.wide("", 33, 2)
	b.f32(0)
	b.i32(0)
	b.i32(0)
	b.wide("", 33, 2)
	b.i32(0)
	b.i32(10) // pit_window_start
	b.i32(30) // pit_window_end
	b.boolI32(false) // is_online
	b.wide("Dry", 33, 0)
	b.wide("Wet", 33, 0)

	data := b.buf.Bytes()
	require.Len(t, data, StaticsSize)

	f, err := DecodeStatics(data)
	require.NoError(t, err)
	require.Equal(t, int32(20), f.NumCars)
	require.Equal(t, int32(9000), f.MaxRPM)
	require.Equal(t, int32(10), f.PitWindowStart)
	require.Equal(t, int32(30), f.PitWindowEnd)
	require.Equal(t, "Dry", f.DryTyresName)
	require.Equal(t, "Wet", f.WetTyresName)
	require.True(t, f.PenaltyEnabled)
}
