package core

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/comalice/collisionx/internal/primitives"
	"github.com/comalice/collisionx/internal/telemetry"
)

func headOn(cfg primitives.Config, opts ...Option) *Simulation {
	return NewSimulation(cfg, []primitives.Particle{
		particle(3, 5, 1, 0, 0.5, 1),
		particle(7, 5, -1, 0, 0.5, 1),
	}, opts...)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestSimulationFullRun(t *testing.T) {
	s := headOn(primitives.DefaultConfig(), WithLogger(quietLogger()))
	assert.Equal(t, Idle, s.Status())

	reason := s.Run()
	assert.Equal(t, StopDrained, reason)
	assert.Equal(t, Terminated, s.Status())
	assert.Equal(t, 12.0, s.Clock())

	// pair 1.5, walls 5.5, pair 9.5
	assert.Equal(t, uint64(4), s.Stats().Applied)
	assert.InDelta(t, 2, s.Particle(0).Pos.X, 1e-9)
	assert.InDelta(t, 8, s.Particle(1).Pos.X, 1e-9)
	assert.Equal(t, 0, s.Pending())
}

func TestSimulationBudgetDoesNotDrift(t *testing.T) {
	cfg := primitives.DefaultConfig()
	cfg.MaxEvents = 1
	s := headOn(cfg, WithLogger(quietLogger()))

	require.Equal(t, StopBudget, s.Run())
	assert.Equal(t, 1.5, s.Clock())
	assert.Equal(t, Paused, s.Status())

	// The budget is per call, so the next Run resumes with the wall bounces.
	require.Equal(t, StopBudget, s.Run())
	assert.Equal(t, 5.5, s.Clock())
	assert.Equal(t, uint64(2), s.Stats().Applied)
}

func TestSimulationRunUntil(t *testing.T) {
	s := headOn(primitives.DefaultConfig(), WithLogger(quietLogger()))

	assert.Equal(t, StopHorizon, s.RunUntil(1))
	assert.Equal(t, 1.0, s.Clock())
	assert.Equal(t, Paused, s.Status())
	assert.Equal(t, primitives.V(4, 5), s.Particle(0).Pos)
	assert.Equal(t, primitives.V(6, 5), s.Particle(1).Pos)
	assert.Zero(t, s.Stats().Applied)

	s.RunUntil(2)
	assert.Equal(t, uint64(1), s.Stats().Applied)

	// A horizon past the end time is capped.
	s.RunUntil(100)
	assert.Equal(t, 12.0, s.Clock())
	assert.Equal(t, Terminated, s.Status())
}

func TestSimulationDropsEventsPastEndTime(t *testing.T) {
	cfg := primitives.DefaultConfig()
	cfg.EndTime = 1
	s := headOn(cfg, WithLogger(quietLogger()))

	assert.Equal(t, StopDrained, s.Run())
	assert.Zero(t, s.Stats().Scheduled)
	assert.Equal(t, 1.0, s.Clock())
	assert.Equal(t, primitives.V(4, 5), s.Particle(0).Pos)
}

func TestSimulationCoincidentPair(t *testing.T) {
	var logs bytes.Buffer
	s := NewSimulation(primitives.DefaultConfig(), []primitives.Particle{
		particle(5, 5, 1, 0, 0.5, 1),
		particle(5, 5, -1, 0, 0.5, 1),
	}, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))

	s.apply(context.Background(), primitives.NewPairEvent(0, 0, 1, 0, 0))

	assert.Equal(t, uint64(1), s.Stats().Applied)
	assert.Equal(t, 0, s.Pending(), "nothing is rescheduled")
	assert.Equal(t, primitives.V(1, 0), s.Particle(0).Vel)
	assert.Contains(t, logs.String(), "coincident centers")
}

func TestSimulationPublisherErrorIsLogged(t *testing.T) {
	var logs bytes.Buffer
	pub := PublisherFunc(func(context.Context, Record) error { return errors.New("sink closed") })
	s := headOn(primitives.DefaultConfig(),
		WithID("sim-1"),
		WithPublisher(pub),
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
	)

	s.Run()
	out := logs.String()
	assert.Equal(t, "sim-1", s.ID())
	assert.Contains(t, out, "publish failed")
	assert.Contains(t, out, "sink closed")
	assert.Contains(t, out, "simulation=sim-1")
	assert.Equal(t, uint64(4), s.Stats().Applied, "publish errors do not stop the run")
}

func TestSimulationParticlesIsACopy(t *testing.T) {
	in := []primitives.Particle{particle(5, 5, 1, 0, 0.5, 1)}
	s := NewSimulation(primitives.DefaultConfig(), in, WithLogger(quietLogger()))

	in[0].Pos.X = 1
	out := s.Particles()
	out[0].Pos.X = 2

	assert.Equal(t, 5.0, s.Particle(0).Pos.X)
	assert.Equal(t, 1, s.Len())
}

func TestSimulationUndoRebuildsQueue(t *testing.T) {
	s := headOn(primitives.DefaultConfig(), WithLogger(quietLogger()))
	assert.False(t, s.Undo(), "nothing to undo before the first event")

	s.RunUntil(2)
	require.Equal(t, 1, s.HistoryLen())
	require.True(t, s.Undo())

	assert.Equal(t, 0.0, s.Clock())
	assert.Equal(t, primitives.V(3, 5), s.Particle(0).Pos)
	assert.Equal(t, 0, s.Particle(0).Collisions)
	assert.Equal(t, 3, s.Pending(), "pair and both walls are predicted again")
	assert.Equal(t, Paused, s.Status())

	e, ok := s.queue.Peek()
	require.True(t, ok)
	assert.Equal(t, 1.5, e.Time)
}

func TestSimulationStaleEventsBehindClock(t *testing.T) {
	s := headOn(primitives.DefaultConfig(), WithLogger(quietLogger()))
	s.primed = true
	s.clock = 3
	s.queue.Push(primitives.NewWallEvent(1, 0, primitives.WallX, 0))

	s.RunUntil(3.5)
	assert.Equal(t, uint64(1), s.Stats().Stale)
	assert.Zero(t, s.Stats().Applied)
}

func TestSimulationMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	s := headOn(primitives.DefaultConfig(),
		WithMeter(provider.Meter(telemetry.ScopeName)),
		WithLogger(quietLogger()),
	)
	s.Run()
	s.Undo()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(4), sums["collisionx.events.applied"])
	assert.Equal(t, int64(1), sums["collisionx.undo"])
	assert.Equal(t, int64(s.Stats().Scheduled), sums["collisionx.events.scheduled"])
}

func TestStatusAndReasonStrings(t *testing.T) {
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "budget", StopBudget.String())
	assert.True(t, strings.HasPrefix(Status(42).String(), "status("))
	assert.True(t, strings.HasPrefix(StopReason(42).String(), "reason("))
	assert.False(t, math.IsNaN(Never))
}
