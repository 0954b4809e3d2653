// Collision-time prediction. Pure functions of current particle state; they
// return a non-negative delta from "now", or Never.

package core

import (
	"math"

	"github.com/comalice/collisionx/internal/primitives"
)

// Never is returned when no collision occurs forward in time.
var Never = math.Inf(1)

// ContactEpsilon suppresses pair predictions at (or numerically next to) the
// current instant, so a pair that just separated is not re-collided at t=0.
const ContactEpsilon = 1e-12

// TimeToWallX returns the time until p touches the left or right wall.
func TimeToWallX(p primitives.Particle, width float64) float64 {
	switch {
	case p.Vel.X > 0:
		return nonNegative((width - p.Radius - p.Pos.X) / p.Vel.X)
	case p.Vel.X < 0:
		return nonNegative((p.Radius - p.Pos.X) / p.Vel.X)
	default:
		return Never
	}
}

// TimeToWallY returns the time until p touches the bottom or top wall.
func TimeToWallY(p primitives.Particle, height float64) float64 {
	switch {
	case p.Vel.Y > 0:
		return nonNegative((height - p.Radius - p.Pos.Y) / p.Vel.Y)
	case p.Vel.Y < 0:
		return nonNegative((p.Radius - p.Pos.Y) / p.Vel.Y)
	default:
		return Never
	}
}

// TimeToHit returns the time until a and b touch, or Never when they are
// separating, their paths miss, or contact is within ContactEpsilon.
func TimeToHit(a, b primitives.Particle) float64 {
	dr := b.Pos.Sub(a.Pos)
	dv := b.Vel.Sub(a.Vel)
	r := a.Radius + b.Radius

	dvdr := dv.Dot(dr)
	if dvdr >= 0 {
		// Separating or at rest relative to each other. Also covers dv == 0.
		return Never
	}

	dvdv := dv.Norm2()
	drdr := dr.Norm2()
	disc := dvdr*dvdr - dvdv*(drdr-r*r)
	if disc < 0 {
		return Never
	}

	t := -(dvdr + math.Sqrt(disc)) / dvdv
	if t <= ContactEpsilon {
		return Never
	}
	return t
}

// nonNegative clamps floating-point overshoot past a wall to an immediate bounce.
func nonNegative(t float64) float64 {
	if t < 0 {
		return 0
	}
	return t
}
