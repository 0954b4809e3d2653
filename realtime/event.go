package realtime

import "github.com/comalice/collisionx"

// Frame is the simulation state after one tick.
type Frame struct {
	Tick        uint64
	SequenceNum uint64 // Seq of the last applied event record
	Clock       float64
	Status      collisionx.Status
	Reason      collisionx.StopReason
	Particles   []collisionx.Particle
}

func newFrame(tick uint64, sim *collisionx.Simulation, reason collisionx.StopReason) Frame {
	return Frame{
		Tick:        tick,
		SequenceNum: sim.Stats().Applied,
		Clock:       sim.Clock(),
		Status:      sim.Status(),
		Reason:      reason,
		Particles:   sim.Particles(),
	}
}

// emit delivers f without blocking. Caller holds p.mu.
func (p *Player) emit(f Frame) {
	select {
	case p.frames <- f:
	default:
		p.dropped++
	}
}

// Frame ordering guarantees:
// 1. Frames are emitted in tick order
// 2. Clock never decreases between frames unless Undo is called
// 3. A dropped frame never delays the next tick
