// Package testutil holds helpers shared by the engine's test suites:
// physical invariants and runner adapters.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/collisionx/internal/primitives"
)

// Tolerance is the default absolute slack for geometric checks.
const Tolerance = 1e-9

// KineticEnergy sums ½·m·|v|² over ps.
func KineticEnergy(ps []primitives.Particle) float64 {
	var e float64
	for _, p := range ps {
		e += p.KineticEnergy()
	}
	return e
}

// Momentum sums m·v over ps.
func Momentum(ps []primitives.Particle) primitives.Vec2 {
	var m primitives.Vec2
	for _, p := range ps {
		m = m.Add(p.Momentum())
	}
	return m
}

// CollisionCount sums the revision counters of ps.
func CollisionCount(ps []primitives.Particle) int {
	n := 0
	for _, p := range ps {
		n += p.Collisions
	}
	return n
}

// InsideBox reports whether every center lies in
// [r, W−r] × [r, H−r] within tol.
func InsideBox(cfg primitives.Config, ps []primitives.Particle, tol float64) bool {
	for _, p := range ps {
		if p.Pos.X < p.Radius-tol || p.Pos.X > cfg.Width-p.Radius+tol ||
			p.Pos.Y < p.Radius-tol || p.Pos.Y > cfg.Height-p.Radius+tol {
			return false
		}
	}
	return true
}

// NoOverlap reports whether all center distances are at least the radius
// sum minus tol.
func NoOverlap(ps []primitives.Particle, tol float64) bool {
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			r := ps[i].Radius + ps[j].Radius - tol
			if ps[j].Pos.Sub(ps[i].Pos).Norm2() < r*r {
				return false
			}
		}
	}
	return true
}

// AssertInsideBox fails t when any particle leaves the box.
func AssertInsideBox(t testing.TB, cfg primitives.Config, ps []primitives.Particle) bool {
	t.Helper()
	for i, p := range ps {
		ok := p.Pos.X >= p.Radius-Tolerance && p.Pos.X <= cfg.Width-p.Radius+Tolerance &&
			p.Pos.Y >= p.Radius-Tolerance && p.Pos.Y <= cfg.Height-p.Radius+Tolerance
		if !assert.Truef(t, ok, "particle %d at (%g, %g) r=%g outside %gx%g box", i, p.Pos.X, p.Pos.Y, p.Radius, cfg.Width, cfg.Height) {
			return false
		}
	}
	return true
}

// AssertNoOverlap fails t when two particles interpenetrate.
func AssertNoOverlap(t testing.TB, ps []primitives.Particle) bool {
	t.Helper()
	for i := range ps {
		for j := i + 1; j < len(ps); j++ {
			r := ps[i].Radius + ps[j].Radius - Tolerance
			d2 := ps[j].Pos.Sub(ps[i].Pos).Norm2()
			if !assert.Truef(t, d2 >= r*r, "particles %d and %d overlap: d²=%g, (r1+r2)²=%g", i, j, d2, r*r) {
				return false
			}
		}
	}
	return true
}

// AssertConserved checks kinetic energy and momentum of after against before
// with relative tolerance rel.
func AssertConserved(t testing.TB, before, after []primitives.Particle, rel float64) {
	t.Helper()
	e0, e1 := KineticEnergy(before), KineticEnergy(after)
	assert.InEpsilonf(t, e0, e1, rel, "kinetic energy %g -> %g", e0, e1)

	m0, m1 := Momentum(before), Momentum(after)
	scale := 1.0
	for _, p := range before {
		scale += p.Momentum().Norm2()
	}
	assert.InDeltaf(t, m0.X, m1.X, rel*scale, "momentum x %g -> %g", m0.X, m1.X)
	assert.InDeltaf(t, m0.Y, m1.Y, rel*scale, "momentum y %g -> %g", m0.Y, m1.Y)
}
