package core

import "github.com/comalice/collisionx/internal/primitives"

// Valid reports whether e still describes the participants' current
// trajectories: every participant's revision counter must match the value
// recorded at schedule time. Wall events only constrain A. O(1).
func Valid(e primitives.Event, particles []primitives.Particle) bool {
	if e.A >= 0 && particles[e.A].Collisions != e.RevA {
		return false
	}
	if e.Kind == primitives.Pair && e.B >= 0 && particles[e.B].Collisions != e.RevB {
		return false
	}
	return true
}
