package collisionx

import (
	"errors"
	"fmt"
)

// ErrUnknownParticle is returned when a name was never added to the builder.
var ErrUnknownParticle = errors.New("unknown particle")

// SceneBuilder provides a fluent API for constructing simulations using
// named particles instead of positional slices.
type SceneBuilder struct {
	cfg       Config
	nameToIdx map[string]int
	idxToName []string // For debugging/reverse lookup
	particles []Particle
}

// ParticleBuilder provides fluent methods for configuring one particle.
type ParticleBuilder struct {
	b   *SceneBuilder
	idx int
}

// NewSceneBuilder creates a builder for a width x height box with the
// remaining options at their defaults.
func NewSceneBuilder(width, height float64) *SceneBuilder {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return &SceneBuilder{
		cfg:       cfg,
		nameToIdx: make(map[string]int),
	}
}

// Particle creates or retrieves a particle by name. New particles default to
// the box center at rest, radius 0.5, mass 1.
func (b *SceneBuilder) Particle(name string) *ParticleBuilder {
	if idx, ok := b.nameToIdx[name]; ok {
		return &ParticleBuilder{b: b, idx: idx}
	}

	idx := len(b.particles)
	b.nameToIdx[name] = idx
	b.idxToName = append(b.idxToName, name)
	b.particles = append(b.particles, NewParticle(V(b.cfg.Width/2, b.cfg.Height/2), V(0, 0), 0.5, 1))
	return &ParticleBuilder{b: b, idx: idx}
}

// EndTime sets the simulation end time.
func (b *SceneBuilder) EndTime(t float64) *SceneBuilder {
	b.cfg.EndTime = t
	return b
}

// MaxEvents sets the applied-event budget per Run call.
func (b *SceneBuilder) MaxEvents(n int) *SceneBuilder {
	b.cfg.MaxEvents = n
	return b
}

// Rollback enables rollback with the given history depth; depth <= 0
// disables it.
func (b *SceneBuilder) Rollback(depth int) *SceneBuilder {
	b.cfg.Rollback = depth > 0
	b.cfg.RollbackDepth = depth
	return b
}

// Index returns the particle index assigned to name.
func (b *SceneBuilder) Index(name string) (int, error) {
	idx, ok := b.nameToIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParticle, name)
	}
	return idx, nil
}

// Name returns the name for a particle index.
// Returns empty string if the index doesn't exist.
func (b *SceneBuilder) Name(idx int) string {
	if idx < 0 || idx >= len(b.idxToName) {
		return ""
	}
	return b.idxToName[idx]
}

// Config returns the configuration built so far.
func (b *SceneBuilder) Config() Config { return b.cfg }

// Particles returns a copy of the particles built so far, in index order.
func (b *SceneBuilder) Particles() []Particle {
	out := make([]Particle, len(b.particles))
	copy(out, b.particles)
	return out
}

// Build validates the scene and constructs the Simulation.
func (b *SceneBuilder) Build(opts ...Option) (*Simulation, error) {
	if err := Validate(b.cfg, b.particles); err != nil {
		return nil, err
	}
	return New(b.cfg, b.particles, opts...), nil
}

// ParticleBuilder fluent methods

// At sets the initial center.
func (pb *ParticleBuilder) At(x, y float64) *ParticleBuilder {
	pb.b.particles[pb.idx].Pos = V(x, y)
	return pb
}

// Moving sets the initial velocity.
func (pb *ParticleBuilder) Moving(vx, vy float64) *ParticleBuilder {
	pb.b.particles[pb.idx].Vel = V(vx, vy)
	return pb
}

// Radius sets the radius.
func (pb *ParticleBuilder) Radius(r float64) *ParticleBuilder {
	pb.b.particles[pb.idx].Radius = r
	return pb
}

// Mass sets the mass.
func (pb *ParticleBuilder) Mass(m float64) *ParticleBuilder {
	pb.b.particles[pb.idx].Mass = m
	return pb
}

// Particle continues with another particle of the same scene.
func (pb *ParticleBuilder) Particle(name string) *ParticleBuilder {
	return pb.b.Particle(name)
}

// Scene returns to the scene builder.
func (pb *ParticleBuilder) Scene() *SceneBuilder {
	return pb.b
}
