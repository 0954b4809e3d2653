// Package core provides the runtime core tier of the collision engine.
// History keeps bounded rollback snapshots of the simulation state.
package core

import "github.com/comalice/collisionx/internal/primitives"

// Snapshot is a saved (clock, particles) pair. Particles is a deep copy and
// never aliases live simulation state.
type Snapshot struct {
	Time      float64
	Particles []primitives.Particle
}

// History is a fixed-capacity ring of snapshots, oldest evicted first.
// Push overwrites the oldest slot once full; Pop returns the most recent.
// Not safe for concurrent use.
type History struct {
	buf  []Snapshot
	head int // next write slot
	size int
}

// NewHistory creates a History holding at most depth snapshots.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{buf: make([]Snapshot, depth)}
}

// Push records a copy of (t, particles). The slot's previous particle
// storage is reused when it has the right length.
func (h *History) Push(t float64, particles []primitives.Particle) {
	slot := &h.buf[h.head]
	if len(slot.Particles) == len(particles) {
		copy(slot.Particles, particles)
	} else {
		slot.Particles = primitives.CloneParticles(particles)
	}
	slot.Time = t

	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Pop removes and returns the most recent snapshot. The returned particles
// are owned by the caller.
func (h *History) Pop() (Snapshot, bool) {
	if h.size == 0 {
		return Snapshot{}, false
	}
	h.head = (h.head - 1 + len(h.buf)) % len(h.buf)
	h.size--

	slot := &h.buf[h.head]
	snap := Snapshot{Time: slot.Time, Particles: slot.Particles}
	// Hand the storage to the caller; the slot allocates afresh on reuse.
	slot.Particles = nil
	return snap, true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return h.size }

// Cap returns the configured depth.
func (h *History) Cap() int { return len(h.buf) }
