// Package builder provides option-style constructors and scene generators
// for particles.
package builder

import (
	"math"
	"math/rand/v2"

	"github.com/comalice/collisionx/internal/primitives"
)

// Option pattern for configuring particles
type Option func(*primitives.Particle)

// New creates a particle at (x, y), at rest, radius 0.5, mass 1, then
// applies opts.
func New(x, y float64, opts ...Option) primitives.Particle {
	p := primitives.NewParticle(primitives.V(x, y), primitives.Vec2{}, 0.5, 1)
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// WithVelocity sets the initial velocity.
func WithVelocity(vx, vy float64) Option {
	return func(p *primitives.Particle) { p.Vel = primitives.V(vx, vy) }
}

// WithRadius sets the radius.
func WithRadius(r float64) Option {
	return func(p *primitives.Particle) { p.Radius = r }
}

// WithMass sets the mass.
func WithMass(m float64) Option {
	return func(p *primitives.Particle) { p.Mass = m }
}

// HeadOn returns two equal particles on a direct collision course along the
// horizontal midline of cfg's box, each moving at speed towards the other.
func HeadOn(cfg primitives.Config, gap, speed float64, opts ...Option) []primitives.Particle {
	cx, cy := cfg.Width/2, cfg.Height/2
	a := New(cx-gap/2, cy, append([]Option{WithVelocity(speed, 0)}, opts...)...)
	b := New(cx+gap/2, cy, append([]Option{WithVelocity(-speed, 0)}, opts...)...)
	return []primitives.Particle{a, b}
}

// Lattice places rows x cols particles of the given radius on an evenly
// spaced grid inside cfg's box, with random directions at the given speed.
// The same seed always yields the same scene. Returns nil when the grid
// cannot fit without overlap.
func Lattice(cfg primitives.Config, rows, cols int, radius, speed float64, seed uint64) []primitives.Particle {
	if rows < 1 || cols < 1 {
		return nil
	}
	dx := cfg.Width / float64(cols)
	dy := cfg.Height / float64(rows)
	if dx < 2*radius || dy < 2*radius {
		return nil
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]primitives.Particle, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			theta := rng.Float64() * 2 * math.Pi
			mass := 0.5 + rng.Float64()
			out = append(out, New(
				dx*(float64(c)+0.5),
				dy*(float64(r)+0.5),
				WithRadius(radius),
				WithMass(mass),
				WithVelocity(speed*math.Cos(theta), speed*math.Sin(theta)),
			))
		}
	}
	return out
}
