package decode

// GraphicsRecord is the persisted shape of a graphics sample: the 60-slot
// per-car arrays are reduced to the player's own car position, and strict
// enum fields are stored as plain int32 so the raw-log and database
// schemas never have to special-case an enum type.
type GraphicsRecord struct {
	PacketID int32

	Status      int32
	SessionType int32

	CurrentTimeStr    string
	LastTimeStr       string
	BestTimeStr       string
	LastSectorTimeStr string

	CompletedLap       int32
	Position           int32
	CurrentTime        int32
	LastTime           int32
	BestTime           int32
	SessionTimeLeft    float32
	DistanceTraveled   float32
	IsInPit            bool
	CurrentSectorIndex int32
	LastSectorTime     int32
	NumberOfLaps       int32
	TyreCompound       string

	NormalizedCarPosition float32
	ActiveCars            int32
	CarCoordinatesX       float32
	CarCoordinatesY       float32
	CarCoordinatesZ       float32
	PlayerCarID           int32
	PenaltyTime           float32
	Flag                  int32
	Penalty               int32
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
	MfdTyrePressureFL        float32
	MfdTyrePressureFR        float32
	MfdTyrePressureRL        float32
	MfdTyrePressureRR        float32
	TrackGripStatus          int32
	RainIntensity            int32
	RainIntensityIn10min     int32
	RainIntensityIn30min     int32
	CurrentTyreSet           int32
	StrategyTyreSet          int32
	GapAhead                 int32
	GapBehind                int32
}

// ToGraphicsRecord flattens a decoded GraphicsFrame into its persisted
// form, resolving the player's own car position by matching PlayerCarID
// against the CarID array. If no match is found the position defaults to
// the zero vector.
func (f GraphicsFrame) ToGraphicsRecord() GraphicsRecord {
	var pos Vector3f
	for i, id := range f.CarID {
		if id == f.PlayerCarID {
			pos = f.CarCoordinates[i]
			break
		}
	}

	return GraphicsRecord{
		PacketID:              f.PacketID,
		Status:                int32(f.Status),
		SessionType:           int32(f.SessionType),
		CurrentTimeStr:        f.CurrentTimeStr,
		LastTimeStr:           f.LastTimeStr,
		BestTimeStr:           f.BestTimeStr,
		LastSectorTimeStr:     f.LastSectorTimeStr,
		CompletedLap:          f.CompletedLap,
		Position:              f.Position,
		CurrentTime:           f.CurrentTime,
		LastTime:              f.LastTime,
		BestTime:              f.BestTime,
		SessionTimeLeft:       f.SessionTimeLeft,
		DistanceTraveled:      f.DistanceTraveled,
		IsInPit:               f.IsInPit,
		CurrentSectorIndex:    f.CurrentSectorIndex,
		LastSectorTime:        f.LastSectorTime,
		NumberOfLaps:          f.NumberOfLaps,
		TyreCompound:          f.TyreCompound,
		NormalizedCarPosition: f.NormalizedCarPosition,
		ActiveCars:            f.ActiveCars,
		CarCoordinatesX:       pos.X,
		CarCoordinatesY:       pos.Y,
		CarCoordinatesZ:       pos.Z,
		PlayerCarID:           f.PlayerCarID,
		PenaltyTime:           f.PenaltyTime,
		Flag:                  int32(f.Flag),
		Penalty:               int32(f.Penalty),
		IdealLineOn:           f.IdealLineOn,
		IsInPitLane:           f.IsInPitLane,
		MandatoryPitDone:      f.MandatoryPitDone,
		WindSpeed:             f.WindSpeed,
		WindDirection:         f.WindDirection,
		IsSetupMenuVisible:    f.IsSetupMenuVisible,
		MainDisplayIndex:      f.MainDisplayIndex,
		SecondaryDisplayIndex: f.SecondaryDisplayIndex,
		TcLevel:               f.TcLevel,
		TcCutLevel:            f.TcCutLevel,
		EngineMap:             f.EngineMap,
		AbsLevel:              f.AbsLevel,
		FuelPerLap:            f.FuelPerLap,
		RainLight:             f.RainLight,
		FlashingLight:         f.FlashingLight,
		LightStage:            f.LightStage,
		ExhaustTemp:           f.ExhaustTemp,
		WiperStage:            f.WiperStage,
		DriverStintTotalTimeLeft: f.DriverStintTotalTimeLeft,
		DriverStintTimeLeft:      f.DriverStintTimeLeft,
		RainTyres:                f.RainTyres,
		SessionIndex:             f.SessionIndex,
		UsedFuel:                 f.UsedFuel,
		DeltaLapTimeStr:          f.DeltaLapTimeStr,
		DeltaLapTime:             f.DeltaLapTime,
		EstimatedLapTimeStr:      f.EstimatedLapTimeStr,
		EstimatedLapTime:         f.EstimatedLapTime,
		IsDeltaPositive:          f.IsDeltaPositive,
		IsValidLap:               f.IsValidLap,
		FuelEstimatedLaps:        f.FuelEstimatedLaps,
		TrackStatus:              f.TrackStatus,
		MissingMandatoryPits:     f.MissingMandatoryPits,
		Clock:                    f.Clock,
		DirectionLightLeft:       f.DirectionLightLeft,
		DirectionLightRight:      f.DirectionLightRight,
		GlobalYellow:             f.GlobalYellow,
		GlobalYellowS1:           f.GlobalYellowS1,
		GlobalYellowS2:           f.GlobalYellowS2,
		GlobalYellowS3:           f.GlobalYellowS3,
		GlobalWhite:              f.GlobalWhite,
		GlobalGreen:              f.GlobalGreen,
		GlobalChequered:          f.GlobalChequered,
		GlobalRed:                f.GlobalRed,
		MfdTyreSet:               f.MfdTyreSet,
		MfdFuelToAdd:             f.MfdFuelToAdd,
		MfdTyrePressureFL:        f.MfdTyrePressure.FrontLeft,
		MfdTyrePressureFR:        f.MfdTyrePressure.FrontRight,
		MfdTyrePressureRL:        f.MfdTyrePressure.RearLeft,
		MfdTyrePressureRR:        f.MfdTyrePressure.RearRight,
		TrackGripStatus:          int32(f.TrackGripStatus),
		RainIntensity:            int32(f.RainIntensity),
		RainIntensityIn10min:     int32(f.RainIntensityIn10min),
		RainIntensityIn30min:     int32(f.RainIntensityIn30min),
		CurrentTyreSet:           f.CurrentTyreSet,
		StrategyTyreSet:          f.StrategyTyreSet,
		GapAhead:                 f.GapAhead,
		GapBehind:                f.GapBehind,
	}
}
