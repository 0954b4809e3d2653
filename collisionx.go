// Package collisionx simulates elastic collisions of circular particles in a
// rectangular box by jumping from one collision event to the next.
//
// The engine lives in internal/core; this package re-exports the types a
// caller needs to set up a scene, run it, roll it back and read the result.
//
//	sim := collisionx.New(collisionx.DefaultConfig(), []collisionx.Particle{
//		collisionx.NewParticle(collisionx.V(3, 5), collisionx.V(1, 0), 0.5, 1),
//		collisionx.NewParticle(collisionx.V(7, 5), collisionx.V(-1, 0), 0.5, 1),
//	})
//	sim.Run()
//	fmt.Println(sim.Clock(), sim.Particles())
package collisionx

import (
	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/primitives"
)

type (
	Vec2       = primitives.Vec2
	Particle   = primitives.Particle
	Config     = primitives.Config
	Event      = primitives.Event
	EventKind  = primitives.EventKind
	Simulation = core.Simulation
	Option     = core.Option
	Publisher  = core.Publisher
	Record     = core.Record
	Status     = core.Status
	StopReason = core.StopReason
	Stats      = core.Stats
)

const (
	WallX = primitives.WallX
	WallY = primitives.WallY
	Pair  = primitives.Pair

	Idle       = core.Idle
	Running    = core.Running
	Paused     = core.Paused
	Terminated = core.Terminated

	StopEndTime = core.StopEndTime
	StopHorizon = core.StopHorizon
	StopDrained = core.StopDrained
	StopBudget  = core.StopBudget
)

var (
	ErrInvalidConfig = primitives.ErrInvalidConfig
	ErrInvalidScene  = primitives.ErrInvalidScene
)

// Options
var (
	WithID        = core.WithID
	WithLogger    = core.WithLogger
	WithPublisher = core.WithPublisher
	WithMeter     = core.WithMeter
)

// PublisherFunc adapts a function to Publisher.
type PublisherFunc = core.PublisherFunc

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 { return primitives.V(x, y) }

// NewParticle creates a particle with a zero collision count.
func NewParticle(pos, vel Vec2, radius, mass float64) Particle {
	return primitives.NewParticle(pos, vel, radius, mass)
}

// DefaultConfig returns a 10x10 box, end time 12, 2000 events per run and
// rollback depth 8.
func DefaultConfig() Config { return primitives.DefaultConfig() }

// New creates a Simulation. Neither cfg nor particles are validated; use
// Validate first when they come from untrusted input.
func New(cfg Config, particles []Particle, opts ...Option) *Simulation {
	return core.NewSimulation(cfg, particles, opts...)
}

// Validate checks cfg and the initial particle placement.
func Validate(cfg Config, particles []Particle) error {
	return primitives.ValidateScene(cfg, particles)
}
