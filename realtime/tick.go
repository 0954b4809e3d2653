package realtime

// Step advances the simulation by one tick synchronously and emits the
// resulting frame. It is what the tick loop calls on every tick, and can be
// used on its own for deterministic playback without Start.
func (p *Player) Step() (Frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return Frame{}, ErrPlayerStopped
	}

	// Phase 1: advance simulated time
	target := p.sim.Clock() + p.timeStep
	reason := p.sim.RunUntil(target)

	// Phase 2: capture state
	p.tickNum++
	frame := newFrame(p.tickNum, p.sim, reason)

	// Phase 3: publish without blocking the tick
	p.emit(frame)
	return frame, nil
}
