package decode

import (
	"fmt"

	"acrtelemetry/internal/acrerr"
)

// AccStatus mirrors the simulator's session activity state.
type AccStatus int32

const (
	StatusOff    AccStatus = 0
	StatusReplay AccStatus = 1
	StatusLive   AccStatus = 2
	StatusPause  AccStatus = 3
)

func parseAccStatus(v int32) (AccStatus, error) {
	switch AccStatus(v) {
	case StatusOff, StatusReplay, StatusLive, StatusPause:
		return AccStatus(v), nil
	default:
		return 0, fmt.Errorf("decode: status %d: %w", v, acrerr.ErrInvalidEnumValue)
	}
}

// AccSessionType mirrors the simulator's session type.
type AccSessionType int32

const (
	SessionUnknown         AccSessionType = -1
	SessionPractice        AccSessionType = 0
	SessionQualifying      AccSessionType = 1
	SessionRace            AccSessionType = 2
	SessionHotlap          AccSessionType = 3
	SessionTimeAttack      AccSessionType = 4
	SessionDrift           AccSessionType = 5
	SessionDrag            AccSessionType = 6
	SessionHotstint        AccSessionType = 7
	SessionHotlapSuperpole AccSessionType = 8
)

func parseAccSessionType(v int32) (AccSessionType, error) {
	switch AccSessionType(v) {
	case SessionUnknown, SessionPractice, SessionQualifying, SessionRace, SessionHotlap,
		SessionTimeAttack, SessionDrift, SessionDrag, SessionHotstint, SessionHotlapSuperpole:
		return AccSessionType(v), nil
	default:
		return 0, fmt.Errorf("decode: session_type %d: %w", v, acrerr.ErrInvalidEnumValue)
	}
}

// AccFlagType mirrors the simulator's track flag state.
type AccFlagType int32

const (
	FlagNone      AccFlagType = 0
	FlagBlue      AccFlagType = 1
	FlagYellow    AccFlagType = 2
	FlagBlack     AccFlagType = 3
	FlagWhite     AccFlagType = 4
	FlagCheckered AccFlagType = 5
	FlagPenalty   AccFlagType = 6
	FlagGreen     AccFlagType = 7
	FlagOrange    AccFlagType = 8
)

func parseAccFlagType(v int32) (AccFlagType, error) {
	switch AccFlagType(v) {
	case FlagNone, FlagBlue, FlagYellow, FlagBlack, FlagWhite, FlagCheckered, FlagPenalty, FlagGreen, FlagOrange:
		return AccFlagType(v), nil
	default:
		return 0, fmt.Errorf("decode: flag %d: %w", v, acrerr.ErrInvalidEnumValue)
	}
}

// AccTrackGripStatus mirrors the simulator's evolving track-grip state.
type AccTrackGripStatus int32

const (
	GripGreen   AccTrackGripStatus = 0
	GripFast    AccTrackGripStatus = 1
	GripOptimum AccTrackGripStatus = 2
	GripGreasy  AccTrackGripStatus = 3
	GripDamp    AccTrackGripStatus = 4
	GripWet     AccTrackGripStatus = 5
	GripFlooded AccTrackGripStatus = 6
)

func parseAccTrackGripStatus(v int32) (AccTrackGripStatus, error) {
	switch AccTrackGripStatus(v) {
	case GripGreen, GripFast, GripOptimum, GripGreasy, GripDamp, GripWet, GripFlooded:
		return AccTrackGripStatus(v), nil
	default:
		return 0, fmt.Errorf("decode: track_grip_status %d: %w", v, acrerr.ErrInvalidEnumValue)
	}
}

// AccRainIntensity mirrors the simulator's rain forecast buckets.
type AccRainIntensity int32

const (
	RainNone          AccRainIntensity = 0
	RainDrizzle       AccRainIntensity = 1
	RainLight         AccRainIntensity = 2
	RainMedium        AccRainIntensity = 3
	RainHeavy         AccRainIntensity = 4
	RainThunderstorm  AccRainIntensity = 5
)

func parseAccRainIntensity(v int32) (AccRainIntensity, error) {
	switch AccRainIntensity(v) {
	case RainNone, RainDrizzle, RainLight, RainMedium, RainHeavy, RainThunderstorm:
		return AccRainIntensity(v), nil
	default:
		return 0, fmt.Errorf("decode: rain_intensity %d: %w", v, acrerr.ErrInvalidEnumValue)
	}
}

// AccPenaltyType mirrors the simulator's penalty reasons. Unlike the other
// enums this one never rejects a frame: any value outside the known table
// maps to PenaltyUnknown, matching the upstream parser's own catch-all.
type AccPenaltyType int32

const (
	PenaltyUnknown                    AccPenaltyType = -1
	PenaltyNone                       AccPenaltyType = 0
	PenaltyDriveThroughCutting        AccPenaltyType = 1
	PenaltyStopAndGo10Cutting         AccPenaltyType = 2
	PenaltyStopAndGo20Cutting         AccPenaltyType = 3
	PenaltyStopAndGo30Cutting         AccPenaltyType = 4
	PenaltyDisqualifiedCutting        AccPenaltyType = 5
	PenaltyRemoveBestLaptimeCutting   AccPenaltyType = 6
	PenaltyDriveThroughPitSpeeding    AccPenaltyType = 7
	PenaltyStopAndGo10PitSpeeding     AccPenaltyType = 8
	PenaltyStopAndGo20PitSpeeding     AccPenaltyType = 9
	PenaltyStopAndGo30PitSpeeding     AccPenaltyType = 10
	PenaltyDisqualifiedPitSpeeding    AccPenaltyType = 11
	PenaltyRemoveBestLaptimePitSpeed  AccPenaltyType = 12
	PenaltyDisqualifiedIgnoredMandatoryPit AccPenaltyType = 13
	PenaltyPostRaceTime               AccPenaltyType = 14
	PenaltyDisqualifiedTrolling        AccPenaltyType = 15
	PenaltyDisqualifiedPitEntry        AccPenaltyType = 16
	PenaltyDisqualifiedPitExit         AccPenaltyType = 17
	PenaltyDisqualifiedWrongWay        AccPenaltyType = 18
	PenaltyDriveThroughIgnoredDriverStint AccPenaltyType = 19
	PenaltyDisqualifiedIgnoredDriverStint  AccPenaltyType = 20
	PenaltyDisqualifiedExceededDriverStintLimit AccPenaltyType = 21
	PenaltyDisqualifiedNoLicenseSlots  AccPenaltyType = 22
)

func normalizeAccPenaltyType(v int32) AccPenaltyType {
	switch AccPenaltyType(v) {
	case PenaltyNone, PenaltyDriveThroughCutting, PenaltyStopAndGo10Cutting, PenaltyStopAndGo20Cutting,
		PenaltyStopAndGo30Cutting, PenaltyDisqualifiedCutting, PenaltyRemoveBestLaptimeCutting,
		PenaltyDriveThroughPitSpeeding, PenaltyStopAndGo10PitSpeeding, PenaltyStopAndGo20PitSpeeding,
		PenaltyStopAndGo30PitSpeeding, PenaltyDisqualifiedPitSpeeding, PenaltyRemoveBestLaptimePitSpeed,
		PenaltyDisqualifiedIgnoredMandatoryPit, PenaltyPostRaceTime, PenaltyDisqualifiedTrolling,
		PenaltyDisqualifiedPitEntry, PenaltyDisqualifiedPitExit, PenaltyDisqualifiedWrongWay,
		PenaltyDriveThroughIgnoredDriverStint, PenaltyDisqualifiedIgnoredDriverStint,
		PenaltyDisqualifiedExceededDriverStintLimit, PenaltyDisqualifiedNoLicenseSlots:
		return AccPenaltyType(v)
	default:
		return PenaltyUnknown
	}
}
