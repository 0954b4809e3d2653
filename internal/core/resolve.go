// Collision resolvers. Each one mutates velocities and bumps the revision
// counter of every participant, which is what invalidates their queued events.

package core

import "github.com/comalice/collisionx/internal/primitives"

// BounceX reflects the x velocity of p.
func BounceX(p *primitives.Particle) {
	p.Vel.X = -p.Vel.X
	p.Collisions++
}

// BounceY reflects the y velocity of p.
func BounceY(p *primitives.Particle) {
	p.Vel.Y = -p.Vel.Y
	p.Collisions++
}

// BouncePair applies the elastic line-of-centers impulse to a and b.
// Tangential components are unchanged. Coincident centers are left untouched
// and reported as false.
func BouncePair(a, b *primitives.Particle) bool {
	dr := b.Pos.Sub(a.Pos)
	dv := b.Vel.Sub(a.Vel)

	dist2 := dr.Norm2()
	if dist2 <= 0 {
		return false
	}

	// Relative velocity projected on the line of centers. rel < 0 while
	// approaching, so impulse points from b towards a.
	rel := dv.Dot(dr) / dist2
	impulse := dr.Scale(rel * 2 * a.Mass * b.Mass / (a.Mass + b.Mass))

	a.Vel = a.Vel.Add(impulse.Scale(1 / a.Mass))
	b.Vel = b.Vel.Sub(impulse.Scale(1 / b.Mass))

	a.Collisions++
	b.Collisions++
	return true
}
