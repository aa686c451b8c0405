package decode

// StaticsSize is the exact byte size of the statics shared-memory segment,
// derived from the field-by-field read sequence below (including every
// discarded/deprecated field) rather than taken from any rounded figure.
const StaticsSize = 820

// StaticsFrame is the single per-session sample of the statics segment.
type StaticsFrame struct {
	SmVersion     string
	AcVersion     string
	NumberOfSessions int32
	NumCars          int32
	CarModel         string
	Track            string
	PlayerName       string
	PlayerSurname    string
	PlayerNick       string
	SectorCount      int32
	MaxRPM           int32
	MaxFuel          float32
	PenaltyEnabled   bool
	AidFuelRate      float32
	AidTyreRate      float32
	AidMechanicalDamage float32
	AidStability        float32
	AidAutoClutch       bool
	PitWindowStart      int32
	PitWindowEnd        int32
	IsOnline            bool
	DryTyresName        string
	WetTyresName        string
}

// DecodeStatics parses the one-time statics sample, including the large
// number of deprecated/unused fields the upstream layout still reserves
// space for. Every skipped read below is intentional and required to keep
// subsequent field offsets correct.
func DecodeStatics(data []byte) (StaticsFrame, error) {
	c := newCursor(data)
	var f StaticsFrame

	f.SmVersion = c.wideString(15, 0)
	f.AcVersion = c.wideString(15, 0)
	f.NumberOfSessions = c.i32()
	f.NumCars = c.i32()
	f.CarModel = c.wideString(33, 0)
	f.Track = c.wideString(33, 0)
	f.PlayerName = c.wideString(33, 0)
	f.PlayerSurname = c.wideString(33, 0)
	f.PlayerNick = c.wideString(33, 2)
	f.SectorCount = c.i32()
	c.f32() // discarded max_torque
	c.f32() // discarded max_power
	f.MaxRPM = c.i32()
	f.MaxFuel = c.f32()
	c.f32Array(4) // discarded suspension_max_travel
	c.f32Array(4) // discarded tyre_radius
	c.f32() // discarded max_turbo_boost
	c.f32() // discarded deprecated_1
	c.f32() // discarded deprecated_2
	f.PenaltyEnabled = c.boolFromI32()
	f.AidFuelRate = c.f32()
	f.AidTyreRate = c.f32()
	f.AidMechanicalDamage = c.f32()
	c.f32() // discarded allow_tyre_blankets
	f.AidStability = c.f32()
	f.AidAutoClutch = c.boolFromI32()
	c.i32() // discarded aid_auto_blip
	c.i32() // discarded has_drs
	c.i32() // discarded has_ers
	c.i32() // discarded has_kers
	c.f32() // discarded kers_max_j
	c.i32() // discarded engine_brake_settings_count
	c.i32() // discarded ers_power_controller_count
	c.f32() // discarded track_spline_length
	c.wideString(33, 2) // discarded track_configuration
	c.f32() // discarded ers_max_j
	c.i32() // discarded is_timed_race
	c.i32() // discarded has_extra_lap
	c.wideString(33, 2) // discarded car_skin
	c.i32() // discarded reversed_grid_positions
	f.PitWindowStart = c.i32()
	f.PitWindowEnd = c.i32()
	f.IsOnline = c.boolFromI32()
	f.DryTyresName = c.wideString(33, 0)
	f.WetTyresName = c.wideString(33, 0)

	if c.err != nil {
		return StaticsFrame{}, c.err
	}
	return f, nil
}
