// Package capture implements the freshness-gated polling loop that turns
// raw shared-memory segments into a stream of decoded physics and
// graphics frames, plus the one-time statics sample.
package capture

import (
	"context"
	"fmt"
	"time"

	"acrtelemetry/internal/decode"
	"acrtelemetry/internal/logging"
)

// PhysicsSegment yields the raw bytes of the physics shared-memory segment
// on demand. Implementations must return a fresh snapshot each call.
type PhysicsSegment interface {
	Bytes() []byte
}

// GraphicsSegment is the graphics segment's equivalent of PhysicsSegment.
type GraphicsSegment interface {
	Bytes() []byte
}

// StaticsSegment is the statics segment's equivalent of PhysicsSegment.
type StaticsSegment interface {
	Bytes() []byte
}

// PhysicsSink receives every fresh physics frame in capture order.
type PhysicsSink interface {
	AppendPhysics(decode.PhysicsFrame) error
}

// GraphicsSink receives every graphics frame sampled at the graphics
// cadence.
type GraphicsSink interface {
	AppendGraphics(decode.GraphicsFrame) error
}

// StaticsSink receives the single statics sample at capture start.
type StaticsSink interface {
	WriteStatics(decode.StaticsFrame) error
}

// ProgressReporter is notified roughly once a second with the elapsed
// capture duration, letting callers persist a scratch progress file.
type ProgressReporter interface {
	ReportElapsed(elapsed time.Duration) error
}

// Options configures an Engine run.
type Options struct {
	Physics  PhysicsSegment
	Graphics GraphicsSegment
	Statics  StaticsSegment

	PhysicsSink  PhysicsSink
	GraphicsSink GraphicsSink
	StaticsSink  StaticsSink
	Progress     ProgressReporter

	GraphicsInterval time.Duration // default ~1/60s
	ShortMissSleep   time.Duration // default 500µs
	LongMissSleep    time.Duration // default 16ms
	MissThreshold    int           // default 20
	ProgressInterval time.Duration // default 1s
	LogInterval      time.Duration // default 5s

	Now   func() time.Time
	Sleep func(time.Duration)
	Log   *logging.Logger
}

func (o *Options) setDefaults() {
	if o.GraphicsInterval <= 0 {
		o.GraphicsInterval = time.Second / decode.GraphicsHz
	}
	if o.ShortMissSleep <= 0 {
		o.ShortMissSleep = 500 * time.Microsecond
	}
	if o.LongMissSleep <= 0 {
		o.LongMissSleep = 16 * time.Millisecond
	}
	if o.MissThreshold <= 0 {
		o.MissThreshold = 20
	}
	if o.ProgressInterval <= 0 {
		o.ProgressInterval = time.Second
	}
	if o.LogInterval <= 0 {
		o.LogInterval = 5 * time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	if o.Log == nil {
		o.Log = logging.NewTestLogger()
	}
}

// Engine drives the freshness-gated capture loop.
type Engine struct {
	opts Options
	gate FreshnessGate

	samples int64
}

// New builds an Engine with defaults applied to any unset option.
func New(opts Options) *Engine {
	opts.setDefaults()
	return &Engine{opts: opts}
}

// Run executes the statics-once-then-poll loop until ctx is cancelled. It
// returns an error when the initial statics sample cannot be decoded or a
// sink fails, or nil on a clean ctx cancellation. A physics or graphics
// sample that fails to decode is skipped and the loop polls again.
func (e *Engine) Run(ctx context.Context) error {
	o := &e.opts

	statics, err := decode.DecodeStatics(o.Statics.Bytes())
	if err != nil {
		return fmt.Errorf("capture: decode statics: %w", err)
	}
	if o.StaticsSink != nil {
		if err := o.StaticsSink.WriteStatics(statics); err != nil {
			return fmt.Errorf("capture: write statics: %w", err)
		}
	}

	start := o.Now()
	lastGraphics := start
	lastProgress := start
	lastLog := start
	misses := 0

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frame, decodeErr := decode.DecodePhysics(o.Physics.Bytes())

		now := o.Now()
		if decodeErr == nil && e.gate.IsFresh(frame) {
			e.gate.Observe(frame)
			misses = 0
			if o.PhysicsSink != nil {
				if err := o.PhysicsSink.AppendPhysics(frame); err != nil {
					return fmt.Errorf("capture: append physics: %w", err)
				}
			}
			e.samples++
		} else {
			misses++
		}

		if now.Sub(lastGraphics) >= o.GraphicsInterval {
			lastGraphics = now
			gframe, err := decode.DecodeGraphics(o.Graphics.Bytes())
			if err == nil && o.GraphicsSink != nil {
				if err := o.GraphicsSink.AppendGraphics(gframe); err != nil {
					return fmt.Errorf("capture: append graphics: %w", err)
				}
			}
		}

		if now.Sub(lastProgress) >= o.ProgressInterval {
			lastProgress = now
			if o.Progress != nil {
				if err := o.Progress.ReportElapsed(now.Sub(start)); err != nil {
					o.Log.Warn("failed to write capture progress", logging.Error(err))
				}
			}
		}

		if now.Sub(lastLog) >= o.LogInterval {
			lastLog = now
			elapsed := now.Sub(start)
			effectiveHz := float64(e.samples) / elapsed.Seconds()
			o.Log.Info("capture progress",
				logging.Int64("elapsed_s", int64(elapsed.Seconds())),
				logging.Int64("samples", e.samples),
				logging.String("effective_hz", fmt.Sprintf("%.1f", effectiveHz)),
			)
		}

		if misses >= o.MissThreshold {
			o.Sleep(o.LongMissSleep)
		} else {
			o.Sleep(o.ShortMissSleep)
		}
	}
}
