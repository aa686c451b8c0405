package capture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

func TestFreshnessGateFirstSampleAlwaysFresh(t *testing.T) {
	var g FreshnessGate
	require.True(t, g.IsFresh(decode.PhysicsFrame{PacketID: 1}))
}

func TestFreshnessGateRequiresBothSignalsToChange(t *testing.T) {
	var g FreshnessGate
	first := decode.PhysicsFrame{PacketID: 1, SuspensionTravel: decode.Wheels{FrontLeft: 1}}
	g.Observe(first)

	// same packet id, same suspension -> stale
	require.False(t, g.IsFresh(first))

	// packet id changes but suspension identical -> still stale
	sameSuspension := decode.PhysicsFrame{PacketID: 2, SuspensionTravel: decode.Wheels{FrontLeft: 1}}
	require.False(t, g.IsFresh(sameSuspension))

	// suspension changes but packet id identical -> still stale
	sameID := decode.PhysicsFrame{PacketID: 1, SuspensionTravel: decode.Wheels{FrontLeft: 2}}
	require.False(t, g.IsFresh(sameID))

	// both change -> fresh
	both := decode.PhysicsFrame{PacketID: 2, SuspensionTravel: decode.Wheels{FrontLeft: 2}}
	require.True(t, g.IsFresh(both))
}
