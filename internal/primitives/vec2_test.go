package primitives

import "testing"

func TestVec2Ops(t *testing.T) {
	a := V(1, 2)
	b := V(3, -4)

	if got := a.Add(b); got != V(4, -2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V(-2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2.5); got != V(2.5, 5) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
	if got := b.Norm2(); got != 25 {
		t.Errorf("Norm2 = %v", got)
	}
}

func TestParticleEnergyMomentum(t *testing.T) {
	p := NewParticle(V(0, 0), V(3, 4), 1, 2)
	if p.Collisions != 0 {
		t.Errorf("new particle collisions = %d", p.Collisions)
	}
	if got := p.KineticEnergy(); got != 25 {
		t.Errorf("KineticEnergy = %v, want 25", got)
	}
	if got := p.Momentum(); got != V(6, 8) {
		t.Errorf("Momentum = %v", got)
	}
}

func TestCloneParticles(t *testing.T) {
	ps := []Particle{NewParticle(V(1, 1), V(0, 0), 0.5, 1)}
	c := CloneParticles(ps)
	c[0].Pos.X = 5
	c[0].Collisions = 3
	if ps[0].Pos.X != 1 || ps[0].Collisions != 0 {
		t.Error("clone shares storage with source")
	}
	if CloneParticles(nil) != nil {
		t.Error("nil clone should stay nil")
	}
}

func TestFingerprint(t *testing.T) {
	cfg := DefaultConfig()
	ps := []Particle{NewParticle(V(2, 2), V(1, 0), 0.5, 1)}

	a := Fingerprint(cfg, ps)
	b := Fingerprint(cfg, CloneParticles(ps))
	if a != b {
		t.Errorf("fingerprint not deterministic: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("fingerprint %q should be 16 hex chars", a)
	}

	ps[0].Vel.X = 2
	if Fingerprint(cfg, ps) == a {
		t.Error("fingerprint should change with initial velocity")
	}
}
