package capture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"acrtelemetry/internal/decode"
)

type fakeSegment struct{ data []byte }

func (f fakeSegment) Bytes() []byte { return f.data }

type recordingSink struct {
	physics  []decode.PhysicsFrame
	graphics []decode.GraphicsFrame
	statics  []decode.StaticsFrame
}

func (s *recordingSink) AppendPhysics(f decode.PhysicsFrame) error {
	s.physics = append(s.physics, f)
	return nil
}
func (s *recordingSink) AppendGraphics(f decode.GraphicsFrame) error {
	s.graphics = append(s.graphics, f)
	return nil
}
func (s *recordingSink) WriteStatics(f decode.StaticsFrame) error {
	s.statics = append(s.statics, f)
	return nil
}

func TestEngineRunStopsOnContextCancel(t *testing.T) {
	physicsBuf := make([]byte, decode.PhysicsSize)
	graphicsBuf := make([]byte, decode.GraphicsSize)
	staticsBuf := make([]byte, decode.StaticsSize)

	sink := &recordingSink{}

	ticks := 0
	ctx, cancel := context.WithCancel(context.Background())

	eng := New(Options{
		Physics:      fakeSegment{physicsBuf},
		Graphics:     fakeSegment{graphicsBuf},
		Statics:      fakeSegment{staticsBuf},
		PhysicsSink:  sink,
		GraphicsSink: sink,
		StaticsSink:  sink,
		Sleep: func(time.Duration) {
			ticks++
			if ticks > 5 {
				cancel()
			}
			// bump packet id each tick so every sample counts as fresh
			physicsBuf[0]++
			physicsBuf[184]++ // perturb a suspension-travel byte (FrontLeft float)
		},
	})

	err := eng.Run(ctx)
	require.NoError(t, err)
	require.Len(t, sink.statics, 1)
	require.NotEmpty(t, sink.physics)
}
