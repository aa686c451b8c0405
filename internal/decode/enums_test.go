package decode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/acrerr"
)

func TestStrictEnumsRejectUnknownValues(t *testing.T) {
	_, err := parseAccStatus(42)
	require.ErrorIs(t, err, acrerr.ErrInvalidEnumValue)

	_, err = parseAccSessionType(99)
	require.ErrorIs(t, err, acrerr.ErrInvalidEnumValue)

	_, err = parseAccFlagType(-5)
	require.ErrorIs(t, err, acrerr.ErrInvalidEnumValue)

	_, err = parseAccTrackGripStatus(7)
	require.ErrorIs(t, err, acrerr.ErrInvalidEnumValue)

	_, err = parseAccRainIntensity(6)
	require.ErrorIs(t, err, acrerr.ErrInvalidEnumValue)
}

func TestPenaltyTypeNeverErrors(t *testing.T) {
	require.Equal(t, PenaltyUnknown, normalizeAccPenaltyType(500))
	require.Equal(t, PenaltyNone, normalizeAccPenaltyType(0))
	require.Equal(t, PenaltyDisqualifiedNoLicenseSlots, normalizeAccPenaltyType(22))
}

func TestErrorsIsWorksThroughWrapping(t *testing.T) {
	_, err := parseAccStatus(-1)
	require.True(t, errors.Is(err, acrerr.ErrInvalidEnumValue))
}
