package core

import "github.com/comalice/collisionx/internal/primitives"

// Drift moves every particle ballistically by dt. Velocities are untouched.
func Drift(particles []primitives.Particle, dt float64) {
	if dt <= 0 {
		return
	}
	for i := range particles {
		p := &particles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	}
}

// driftTo advances the clock to t, moving all particles. No-op for t <= clock.
func (s *Simulation) driftTo(t float64) {
	dt := t - s.clock
	if dt <= 0 {
		return
	}
	Drift(s.particles, dt)
	s.clock = t
}
