// Package core provides the runtime core tier of the collision engine.
// This includes the Simulation driver, event queue, prediction, resolution
// and rollback history.
// Dependencies: internal/primitives, internal/telemetry.
//
// The core is single-threaded and synchronous: a Simulation must not be
// used from more than one goroutine at a time.
package core

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/comalice/collisionx/internal/primitives"
	"github.com/comalice/collisionx/internal/telemetry"
)

// Publisher receives a Record for every applied event, synchronously.
type Publisher interface {
	Publish(ctx context.Context, rec Record) error
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(ctx context.Context, rec Record) error

func (f PublisherFunc) Publish(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}

// Record describes one applied event.
type Record struct {
	SimulationID string           `json:"simulationID" yaml:"simulationID"`
	Seq          uint64           `json:"seq" yaml:"seq"`
	Event        primitives.Event `json:"event" yaml:"event"`
}

// Status is the driver state.
type Status int

const (
	Idle       Status = iota // constructed, never run
	Running                  // inside Run/RunUntil
	Paused                   // stopped before the end time
	Terminated               // clock reached the end time
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// StopReason tells why a Run or RunUntil call returned.
type StopReason int

const (
	StopEndTime StopReason = iota // next event lies beyond the end time
	StopHorizon                   // next event lies beyond the RunUntil limit
	StopDrained                   // no events left
	StopBudget                    // MaxEvents applied in this call
)

func (r StopReason) String() string {
	switch r {
	case StopEndTime:
		return "end-time"
	case StopHorizon:
		return "horizon"
	case StopDrained:
		return "drained"
	case StopBudget:
		return "budget"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// Stats are cumulative counters over the life of a Simulation.
type Stats struct {
	Applied   uint64 `json:"applied" yaml:"applied"`
	Stale     uint64 `json:"stale" yaml:"stale"`
	Scheduled uint64 `json:"scheduled" yaml:"scheduled"`
	Undos     uint64 `json:"undos" yaml:"undos"`
}

// Option applies configuration to a Simulation via functional options pattern.
type Option func(*Simulation)

// Simulation is the event-driven collision engine.
//
// Particles are held in a flat slice and addressed by index; events name
// particles by index and carry their revision counters. Stale events are
// discarded lazily when popped, never searched for in the queue.
type Simulation struct {
	id        string
	cfg       primitives.Config
	particles []primitives.Particle
	clock     float64
	queue     *EventQueue
	history   *History // nil when rollback is disabled
	status    Status
	primed    bool // initial events scheduled
	stats     Stats
	// Pluggable components (nil = defaults)
	logger    *slog.Logger
	publisher Publisher
	metrics   *telemetry.Metrics
	meter     metric.Meter
}

// NewSimulation creates a Simulation over a private copy of particles.
// cfg and particles are preconditions and are not validated here; see
// primitives.ValidateScene.
func NewSimulation(cfg primitives.Config, particles []primitives.Particle, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:       cfg,
		particles: primitives.CloneParticles(particles),
		queue:     NewEventQueue(),
		status:    Idle,
	}
	if cfg.Rollback {
		s.history = NewHistory(cfg.RollbackDepth)
	}

	// Apply functional options
	for _, opt := range opts {
		opt(s)
	}

	if s.id == "" {
		s.id = uuid.NewString()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("component", "collisionx", "simulation", s.id)

	if s.metrics == nil {
		var err error
		if s.meter != nil {
			s.metrics, err = telemetry.New(s.meter)
		} else {
			s.metrics, err = telemetry.Default()
		}
		if err != nil {
			s.logger.Warn("metrics disabled", "error", err)
		}
	}
	return s
}

// Run executes the event loop up to the configured end time.
//
// The loop stops when the queue is empty, when the next event lies beyond
// the end time, or when MaxEvents events have been applied in this call.
// In the first two cases particles are drifted to the end time; when the
// budget runs out the state stays at the last applied event so a later Run
// can resume. Calling Run after termination changes nothing.
func (s *Simulation) Run() StopReason {
	return s.advance(s.cfg.EndTime)
}

// RunUntil executes the event loop up to min(t, end time) and drifts to it.
// Events beyond t stay queued for later calls.
func (s *Simulation) RunUntil(t float64) StopReason {
	return s.advance(math.Min(t, s.cfg.EndTime))
}

func (s *Simulation) advance(limit float64) StopReason {
	ctx := context.Background()
	if !s.primed {
		s.scheduleAll()
		s.primed = true
	}

	s.status = Running
	scheduledBefore := s.stats.Scheduled
	staleBefore := s.stats.Stale

	applied := 0
	var reason StopReason
	for {
		if applied >= s.cfg.MaxEvents {
			reason = StopBudget
			break
		}
		e, ok := s.queue.Peek()
		if !ok {
			reason = StopDrained
			break
		}
		if e.Time > limit {
			reason = StopHorizon
			if limit >= s.cfg.EndTime {
				reason = StopEndTime
			}
			break
		}
		s.queue.Pop()

		// Events older than the clock can only come from an earlier budget
		// stop; they are stale by construction.
		if e.Time < s.clock || !Valid(e, s.particles) {
			s.stats.Stale++
			s.metrics.Stale(ctx)
			continue
		}

		s.snapshot()
		s.driftTo(e.Time)
		s.apply(ctx, e)
		applied++
	}

	if reason != StopBudget {
		s.driftTo(limit)
	}
	s.status = s.restingStatus()
	s.metrics.Scheduled(ctx, int(s.stats.Scheduled-scheduledBefore))

	s.logger.InfoContext(ctx, "run stopped",
		"reason", reason.String(),
		"clock", s.clock,
		"applied", applied,
		"stale", s.stats.Stale-staleBefore,
		"pending", s.queue.Len(),
	)
	return reason
}

// apply resolves e and re-predicts events for every particle whose velocity
// changed. Pairs are pushed in (min, max) order; the same pair may be pushed
// twice across passes, and staleness filtering discards the loser.
func (s *Simulation) apply(ctx context.Context, e primitives.Event) {
	switch e.Kind {
	case primitives.WallX:
		BounceX(&s.particles[e.A])
		s.scheduleWalls(e.A)
		s.schedulePairsFor(e.A)

	case primitives.WallY:
		BounceY(&s.particles[e.A])
		s.scheduleWalls(e.A)
		s.schedulePairsFor(e.A)

	case primitives.Pair:
		if !BouncePair(&s.particles[e.A], &s.particles[e.B]) {
			s.logger.WarnContext(ctx, "coincident centers, collision skipped", "a", e.A, "b", e.B, "time", e.Time)
			break
		}
		s.scheduleWalls(e.A)
		s.scheduleWalls(e.B)
		for k := range s.particles {
			if k == e.A || k == e.B {
				continue
			}
			s.schedulePair(k, e.A)
			s.schedulePair(k, e.B)
		}
	}

	s.stats.Applied++
	s.metrics.Applied(ctx, e.Kind.String())
	s.logger.DebugContext(ctx, "event applied", "kind", e.Kind.String(), "time", e.Time, "a", e.A, "b", e.B)

	if s.publisher != nil {
		rec := Record{SimulationID: s.id, Seq: s.stats.Applied, Event: e}
		if err := s.publisher.Publish(ctx, rec); err != nil {
			s.logger.WarnContext(ctx, "publish failed", "seq", rec.Seq, "error", err)
		}
	}
}

// scheduleAll pushes wall events for every particle and one pair event per
// unordered pair, predicted from the current clock.
func (s *Simulation) scheduleAll() {
	for i := range s.particles {
		s.scheduleWalls(i)
	}
	for i := range s.particles {
		for j := i + 1; j < len(s.particles); j++ {
			s.schedulePair(i, j)
		}
	}
}

func (s *Simulation) scheduleWalls(i int) {
	p := s.particles[i]
	if dt := TimeToWallX(p, s.cfg.Width); !math.IsInf(dt, 1) {
		s.push(primitives.NewWallEvent(s.clock+dt, i, primitives.WallX, p.Collisions))
	}
	if dt := TimeToWallY(p, s.cfg.Height); !math.IsInf(dt, 1) {
		s.push(primitives.NewWallEvent(s.clock+dt, i, primitives.WallY, p.Collisions))
	}
}

// schedulePairsFor pushes pair events between i and every other particle.
func (s *Simulation) schedulePairsFor(i int) {
	for k := range s.particles {
		if k != i {
			s.schedulePair(k, i)
		}
	}
}

func (s *Simulation) schedulePair(i, j int) {
	if i > j {
		i, j = j, i
	}
	a, b := s.particles[i], s.particles[j]
	dt := TimeToHit(a, b)
	if math.IsInf(dt, 1) {
		return
	}
	s.push(primitives.NewPairEvent(s.clock+dt, i, j, a.Collisions, b.Collisions))
}

// push drops predictions beyond the end time; they could never be acted on.
func (s *Simulation) push(e primitives.Event) {
	if e.Time > s.cfg.EndTime {
		return
	}
	s.queue.Push(e)
	s.stats.Scheduled++
}

func (s *Simulation) snapshot() {
	if s.history == nil {
		return
	}
	s.history.Push(s.clock, s.particles)
}

// Undo restores the most recent snapshot, undoing the last applied event.
// The queue is discarded and rebuilt from the restored state. Returns false
// when rollback is disabled or no snapshot is left.
func (s *Simulation) Undo() bool {
	if !s.cfg.Rollback || s.history == nil {
		return false
	}
	snap, ok := s.history.Pop()
	if !ok {
		return false
	}

	s.clock = snap.Time
	s.particles = snap.Particles
	s.queue.Reset()
	scheduledBefore := s.stats.Scheduled
	s.scheduleAll()
	s.primed = true
	s.status = s.restingStatus()
	s.stats.Undos++

	ctx := context.Background()
	s.metrics.Undo(ctx)
	s.metrics.Scheduled(ctx, int(s.stats.Scheduled-scheduledBefore))
	s.logger.InfoContext(ctx, "rolled back", "clock", s.clock, "remaining", s.history.Len(), "pending", s.queue.Len())
	return true
}

func (s *Simulation) restingStatus() Status {
	if s.clock >= s.cfg.EndTime {
		return Terminated
	}
	if !s.primed {
		return Idle
	}
	return Paused
}

// ID returns the simulation identifier used in logs and records.
func (s *Simulation) ID() string { return s.id }

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() primitives.Config { return s.cfg }

// Clock returns the current simulation time.
func (s *Simulation) Clock() float64 { return s.clock }

// Status returns the driver state.
func (s *Simulation) Status() Status { return s.status }

// Stats returns cumulative counters.
func (s *Simulation) Stats() Stats { return s.stats }

// Pending returns the number of queued events, stale ones included.
func (s *Simulation) Pending() int { return s.queue.Len() }

// HistoryLen returns the number of rollback snapshots held.
func (s *Simulation) HistoryLen() int {
	if s.history == nil {
		return 0
	}
	return s.history.Len()
}

// HistoryCap returns the rollback depth, 0 when rollback is disabled.
func (s *Simulation) HistoryCap() int {
	if s.history == nil {
		return 0
	}
	return s.history.Cap()
}

// Len returns the number of particles.
func (s *Simulation) Len() int { return len(s.particles) }

// Particles returns a copy of the particle state at the current clock.
func (s *Simulation) Particles() []primitives.Particle {
	return primitives.CloneParticles(s.particles)
}

// Particle returns particle i at the current clock.
func (s *Simulation) Particle(i int) primitives.Particle {
	return s.particles[i]
}
