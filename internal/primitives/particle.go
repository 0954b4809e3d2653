package primitives

// Particle is a circular body in the box.
//
// Collisions is the revision counter: it increments once per collision the
// particle takes part in and is compared against the counters recorded in
// queued events to detect stale predictions.
type Particle struct {
	Pos        Vec2    `json:"pos" yaml:"pos"`
	Vel        Vec2    `json:"vel" yaml:"vel"`
	Radius     float64 `json:"radius" yaml:"radius"`
	Mass       float64 `json:"mass" yaml:"mass"`
	Collisions int     `json:"collisions" yaml:"collisions"`
}

// NewParticle creates a particle with a zero revision counter.
func NewParticle(pos, vel Vec2, radius, mass float64) Particle {
	return Particle{
		Pos:    pos,
		Vel:    vel,
		Radius: radius,
		Mass:   mass,
	}
}

// KineticEnergy returns ½·m·|v|².
func (p Particle) KineticEnergy() float64 {
	return 0.5 * p.Mass * p.Vel.Norm2()
}

// Momentum returns m·v.
func (p Particle) Momentum() Vec2 {
	return p.Vel.Scale(p.Mass)
}

// CloneParticles returns an independent copy of ps.
func CloneParticles(ps []Particle) []Particle {
	if ps == nil {
		return nil
	}
	out := make([]Particle, len(ps))
	copy(out, ps)
	return out
}
