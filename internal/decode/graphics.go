package decode

// GraphicsSize is the exact byte size of the graphics shared-memory segment.
const GraphicsSize = 1588

// GraphicsHz is the simulator's nominal graphics/UI update rate.
const GraphicsHz = 60

// carSlots is the fixed capacity of the car coordinate/id arrays the
// simulator publishes regardless of how many cars are actually on track.
const carSlots = 60

// GraphicsFrame is one decoded sample of the graphics segment, with the
// full per-car arrays still present (the player-car reduction happens at
// the persistence boundary, see ToGraphicsRecord).
type GraphicsFrame struct {
	PacketID int32

	Status      AccStatus
	SessionType AccSessionType

	CurrentTimeStr    string
	LastTimeStr       string
	BestTimeStr       string
	LastSectorTimeStr string

	CompletedLap      int32
	Position          int32
	CurrentTime       int32
	LastTime          int32
	BestTime          int32
	SessionTimeLeft   float32
	DistanceTraveled  float32
	IsInPit           bool
	CurrentSectorIndex int32
	LastSectorTime     int32
	NumberOfLaps       int32
	TyreCompound       string

	NormalizedCarPosition float32
	ActiveCars            int32
	CarCoordinates        [carSlots]Vector3f
	CarID                 [carSlots]int32
	PlayerCarID           int32
	PenaltyTime           float32
	Flag                  AccFlagType
	Penalty               AccPenaltyType
	IdealLineOn           bool
	IsInPitLane           bool
	MandatoryPitDone      bool
	WindSpeed             float32
	WindDirection         float32
	IsSetupMenuVisible    bool
	MainDisplayIndex      int32
	SecondaryDisplayIndex int32
	TcLevel               int32
	TcCutLevel            int32
	EngineMap             int32
	AbsLevel              int32
	FuelPerLap            float32
	RainLight             bool
	FlashingLight         bool
	LightStage            int32
	ExhaustTemp           float32
	WiperStage            int32
	DriverStintTotalTimeLeft int32
	DriverStintTimeLeft      int32
	RainTyres                bool
	SessionIndex             int32
	UsedFuel                 float32
	DeltaLapTimeStr          string
	DeltaLapTime             int32
	EstimatedLapTimeStr      string
	EstimatedLapTime         int32
	IsDeltaPositive          bool
	IsValidLap               bool
	FuelEstimatedLaps        float32
	TrackStatus              string
	MissingMandatoryPits     int32
	Clock                    float32
	DirectionLightLeft       bool
	DirectionLightRight      bool
	GlobalYellow             bool
	GlobalYellowS1           bool
	GlobalYellowS2           bool
	GlobalYellowS3           bool
	GlobalWhite              bool
	GlobalGreen              bool
	GlobalChequered          bool
	GlobalRed                bool
	MfdTyreSet               int32
	MfdFuelToAdd             float32
	MfdTyrePressure          Wheels
	TrackGripStatus          AccTrackGripStatus
	RainIntensity            AccRainIntensity
	RainIntensityIn10min     AccRainIntensity
	RainIntensityIn30min     AccRainIntensity
	CurrentTyreSet           int32
	StrategyTyreSet          int32
	GapAhead                 int32
	GapBehind                int32
}

// DecodeGraphics parses one graphics sample from the mapped segment,
// including the discarded replay-time-multiplier, surface-grip and
// split-index scalars, which are consumed but never stored.
func DecodeGraphics(data []byte) (GraphicsFrame, error) {
	c := newCursor(data)
	var f GraphicsFrame

	f.PacketID = c.i32()
	f.Status = c.status()
	f.SessionType = c.sessionType()

	f.CurrentTimeStr = c.wideString(15, 0)
	f.LastTimeStr = c.wideString(15, 0)
	f.BestTimeStr = c.wideString(15, 0)
	f.LastSectorTimeStr = c.wideString(15, 0)

	f.CompletedLap = c.i32()
	f.Position = c.i32()
	f.CurrentTime = c.i32()
	f.LastTime = c.i32()
	f.BestTime = c.i32()
	f.SessionTimeLeft = c.f32()
	f.DistanceTraveled = c.f32()
	f.IsInPit = c.boolFromI32()
	f.CurrentSectorIndex = c.i32()
	f.LastSectorTime = c.i32()
	f.NumberOfLaps = c.i32()
	f.TyreCompound = c.wideString(33, 2)
	c.f32() // discarded replay_time_multiplier

	f.NormalizedCarPosition = c.f32()
	f.ActiveCars = c.i32()
	for i := 0; i < carSlots; i++ {
		f.CarCoordinates[i] = c.vector3f()
	}
	for i := 0; i < carSlots; i++ {
		f.CarID[i] = c.i32()
	}
	f.PlayerCarID = c.i32()
	f.PenaltyTime = c.f32()
	f.Flag = c.flagType()
	f.Penalty = normalizeAccPenaltyType(c.i32())
	f.IdealLineOn = c.boolFromI32()
	f.IsInPitLane = c.boolFromI32()
	c.f32() // discarded surface_grip
	f.MandatoryPitDone = c.boolFromI32()
	f.WindSpeed = c.f32()
	f.WindDirection = c.f32()
	f.IsSetupMenuVisible = c.boolFromI32()
	f.MainDisplayIndex = c.i32()
	f.SecondaryDisplayIndex = c.i32()
	f.TcLevel = c.i32()
	f.TcCutLevel = c.i32()
	f.EngineMap = c.i32()
	f.AbsLevel = c.i32()
	f.FuelPerLap = c.f32()
	f.RainLight = c.boolFromI32()
	f.FlashingLight = c.boolFromI32()
	f.LightStage = c.i32()
	f.ExhaustTemp = c.f32()
	f.WiperStage = c.i32()
	f.DriverStintTotalTimeLeft = c.i32()
	f.DriverStintTimeLeft = c.i32()
	f.RainTyres = c.boolFromI32()
	f.SessionIndex = c.i32()
	f.UsedFuel = c.f32()
	f.DeltaLapTimeStr = c.wideString(15, 2)
	f.DeltaLapTime = c.i32()
	f.EstimatedLapTimeStr = c.wideString(15, 2)
	f.EstimatedLapTime = c.i32()
	f.IsDeltaPositive = c.boolFromI32()
	c.i32() // discarded i_split
	f.IsValidLap = c.boolFromI32()
	f.FuelEstimatedLaps = c.f32()
	f.TrackStatus = c.wideString(33, 2)
	f.MissingMandatoryPits = c.i32()
	f.Clock = c.f32()
	f.DirectionLightLeft = c.boolFromI32()
	f.DirectionLightRight = c.boolFromI32()
	f.GlobalYellow = c.boolFromI32()
	f.GlobalYellowS1 = c.boolFromI32()
	f.GlobalYellowS2 = c.boolFromI32()
	f.GlobalYellowS3 = c.boolFromI32()
	f.GlobalWhite = c.boolFromI32()
	f.GlobalGreen = c.boolFromI32()
	f.GlobalChequered = c.boolFromI32()
	f.GlobalRed = c.boolFromI32()
	f.MfdTyreSet = c.i32()
	f.MfdFuelToAdd = c.f32()
	f.MfdTyrePressure = Wheels{
		FrontLeft:  c.f32(),
		FrontRight: c.f32(),
		RearLeft:   c.f32(),
		RearRight:  c.f32(),
	}
	f.TrackGripStatus = c.trackGripStatus()
	f.RainIntensity = c.rainIntensity()
	f.RainIntensityIn10min = c.rainIntensity()
	f.RainIntensityIn30min = c.rainIntensity()
	f.CurrentTyreSet = c.i32()
	f.StrategyTyreSet = c.i32()
	f.GapAhead = c.i32()
	f.GapBehind = c.i32()

	if c.err != nil {
		return GraphicsFrame{}, c.err
	}
	return f, nil
}
