// Package motec writes physics recordings to the MoTeC i2 .ld logger
// format, and to a plain CSV sibling carrying the same channel subset.
package motec

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"acrtelemetry/internal/decode"
)

// RecFreq is the fixed sample rate MoTeC channels are tagged with; ACC's
// physics stream runs at this rate regardless of the capture's actual
// configured Hz.
const RecFreq uint16 = 333

const (
	headSize     = 1762
	chanHeadSize = 124
)

type channel struct {
	name string
	unit string
	data []float32
}

func boolF32(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func buildChannels(records []decode.PhysicsFrame) []channel {
	n := len(records)
	timeCh := make([]float32, n)
	speed := make([]float32, n)
	rpm := make([]float32, n)
	throttle := make([]float32, n)
	brake := make([]float32, n)
	steer := make([]float32, n)
	gear := make([]float32, n)
	latG := make([]float32, n)
	lonG := make([]float32, n)
	fuel := make([]float32, n)
	flTemp := make([]float32, n)
	frTemp := make([]float32, n)
	rlTemp := make([]float32, n)
	rrTemp := make([]float32, n)
	engineBrake := make([]float32, n)
	tcActive := make([]float32, n)
	absActive := make([]float32, n)
	flLoad := make([]float32, n)
	frLoad := make([]float32, n)
	rlLoad := make([]float32, n)
	rrLoad := make([]float32, n)
	flCamber := make([]float32, n)
	frCamber := make([]float32, n)
	rlCamber := make([]float32, n)
	rrCamber := make([]float32, n)

	for i, r := range records {
		timeCh[i] = float32(i) / float32(RecFreq)
		speed[i] = r.SpeedKmh
		rpm[i] = float32(r.RPM)
		throttle[i] = r.Gas * 100
		brake[i] = r.Brake * 100
		steer[i] = r.SteerAngle
		gear[i] = float32(r.Gear)
		latG[i] = r.GForce.Y
		lonG[i] = r.GForce.X
		fuel[i] = r.Fuel
		flTemp[i] = r.TyreCoreTemp.FrontLeft
		frTemp[i] = r.TyreCoreTemp.FrontRight
		rlTemp[i] = r.TyreCoreTemp.RearLeft
		rrTemp[i] = r.TyreCoreTemp.RearRight
		engineBrake[i] = float32(r.EngineBrake)
		tcActive[i] = boolF32(r.TcInAction)
		absActive[i] = boolF32(r.AbsInAction)
		flLoad[i] = r.WheelLoad.FrontLeft
		frLoad[i] = r.WheelLoad.FrontRight
		rlLoad[i] = r.WheelLoad.RearLeft
		rrLoad[i] = r.WheelLoad.RearRight
		flCamber[i] = r.CamberRad.FrontLeft
		frCamber[i] = r.CamberRad.FrontRight
		rlCamber[i] = r.CamberRad.RearLeft
		rrCamber[i] = r.CamberRad.RearRight
	}

	return []channel{
		{"Time", "s", timeCh},
		{"Speed", "km/h", speed},
		{"RPM", "rpm", rpm},
		{"Throttle", "%", throttle},
		{"Brake", "%", brake},
		{"Steer", "deg", steer},
		{"Gear", "", gear},
		{"Lat G", "g", latG},
		{"Lon G", "g", lonG},
		{"Fuel", "", fuel},
		{"FL Tyre Temp", "C", flTemp},
		{"FR Tyre Temp", "C", frTemp},
		{"RL Tyre Temp", "C", rlTemp},
		{"RR Tyre Temp", "C", rrTemp},
		{"Engine Brake", "", engineBrake},
		{"TC Active", "", tcActive},
		{"ABS Active", "", absActive},
		{"FL Load", "N", flLoad},
		{"FR Load", "N", frLoad},
		{"RL Load", "N", rlLoad},
		{"RR Load", "N", rrLoad},
		{"FL Camber", "rad", flCamber},
		{"FR Camber", "rad", frCamber},
		{"RL Camber", "rad", rlCamber},
		{"RR Camber", "rad", rrCamber},
	}
}

// WriteLD writes records to path in MoTeC .ld format, readable by i2.
func WriteLD(path string, records []decode.PhysicsFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("motec: create %s: %w", path, err)
	}
	defer f.Close()

	channels := buildChannels(records)

	const eventPtr = uint32(0)
	metaPtr := uint32(headSize)
	dataPtr := metaPtr + uint32(len(channels))*chanHeadSize

	dataOffsets := make([]uint32, len(channels))
	offset := dataPtr
	for i, ch := range channels {
		dataOffsets[i] = offset
		offset += uint32(len(ch.data)) * 4
	}

	if err := writeLDHead(f, metaPtr, dataPtr, eventPtr, uint32(len(channels))); err != nil {
		return err
	}

	if _, err := f.Seek(int64(metaPtr), io.SeekStart); err != nil {
		return fmt.Errorf("motec: seek to channel meta region: %w", err)
	}
	for i, ch := range channels {
		var prev uint32
		if i > 0 {
			prev = metaPtr + uint32(i-1)*chanHeadSize
		}
		var next uint32
		if i+1 < len(channels) {
			next = metaPtr + uint32(i+1)*chanHeadSize
		}
		if err := writeLDChan(f, prev, next, dataOffsets[i], uint32(len(ch.data)), ch.name, ch.unit, i); err != nil {
			return err
		}
	}

	for _, ch := range channels {
		for _, v := range ch.data {
			if err := binary.Write(f, binary.LittleEndian, v); err != nil {
				return fmt.Errorf("motec: write channel data for %s: %w", ch.name, err)
			}
		}
	}

	return nil
}

func pad(w io.Writer, n int) error {
	_, err := w.Write(make([]byte, n))
	return err
}

func writeStrFixed(w io.Writer, s string, length int) error {
	b := []byte(s)
	n := len(b)
	if n > length {
		n = length
	}
	if _, err := w.Write(b[:n]); err != nil {
		return err
	}
	return pad(w, length-n)
}

func writeLDHead(f io.Writer, metaPtr, dataPtr, eventPtr, nChans uint32) error {
	now := time.Now()
	date := now.Format("02/01/2006")
	clock := now.Format("15:04:05")

	le := binary.LittleEndian
	writes := []func() error{
		func() error { return binary.Write(f, le, uint32(0x40)) },
		func() error { return pad(f, 4) },
		func() error { return binary.Write(f, le, metaPtr) },
		func() error { return binary.Write(f, le, dataPtr) },
		func() error { return pad(f, 20) },
		func() error { return binary.Write(f, le, eventPtr) },
		func() error { return pad(f, 24) },
		func() error { return binary.Write(f, le, uint16(1)) },
		func() error { return binary.Write(f, le, uint16(0x4240)) },
		func() error { return binary.Write(f, le, uint16(0xf)) },
		func() error { return binary.Write(f, le, uint32(0x1f44)) },
		func() error { return writeStrFixed(f, "ADL", 8) },
		func() error { return binary.Write(f, le, uint16(420)) },
		func() error { return binary.Write(f, le, uint16(0xadb0)) },
		func() error { return binary.Write(f, le, nChans) },
		func() error { return pad(f, 4) },
		func() error { return writeStrFixed(f, date, 16) },
		func() error { return pad(f, 16) },
		func() error { return writeStrFixed(f, clock, 16) },
		func() error { return pad(f, 16) },
		func() error { return writeStrFixed(f, "ACR", 64) },
		func() error { return writeStrFixed(f, "AC Rally", 64) },
		func() error { return pad(f, 64) },
		func() error { return writeStrFixed(f, "Telemetry", 64) },
		func() error { return pad(f, 64) },
		func() error { return pad(f, 1024) },
		func() error { return binary.Write(f, le, uint32(0xc81a4)) },
		func() error { return pad(f, 66) },
		func() error { return writeStrFixed(f, "acr_recorder export", 64) },
		func() error { return pad(f, 126) },
	}
	for _, w := range writes {
		if err := w(); err != nil {
			return fmt.Errorf("motec: write header: %w", err)
		}
	}
	return nil
}

func writeLDChan(f io.Writer, prev, next, dataPtr, nData uint32, name, unit string, idx int) error {
	le := binary.LittleEndian
	counter := uint16(0x2ee1) + uint16(idx)
	const (
		dtypeA = uint16(0x07)
		dtype  = uint16(4)
		shift  = int16(0)
		mul    = int16(1)
		scale  = int16(1)
		dec    = int16(0)
	)

	shortName := name
	if len(shortName) > 8 {
		shortName = shortName[:8]
	}

	writes := []func() error{
		func() error { return binary.Write(f, le, prev) },
		func() error { return binary.Write(f, le, next) },
		func() error { return binary.Write(f, le, dataPtr) },
		func() error { return binary.Write(f, le, nData) },
		func() error { return binary.Write(f, le, counter) },
		func() error { return binary.Write(f, le, dtypeA) },
		func() error { return binary.Write(f, le, dtype) },
		func() error { return binary.Write(f, le, RecFreq) },
		func() error { return binary.Write(f, le, shift) },
		func() error { return binary.Write(f, le, mul) },
		func() error { return binary.Write(f, le, scale) },
		func() error { return binary.Write(f, le, dec) },
		func() error { return writeStrFixed(f, name, 32) },
		func() error { return writeStrFixed(f, shortName, 8) },
		func() error { return writeStrFixed(f, unit, 12) },
		func() error { return pad(f, 40) },
	}
	for _, w := range writes {
		if err := w(); err != nil {
			return fmt.Errorf("motec: write channel descriptor for %s: %w", name, err)
		}
	}
	return nil
}
