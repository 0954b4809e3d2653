package realtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/comalice/collisionx"
)

var (
	// ErrPlayerStopped is returned by Start and Step once the player has stopped.
	ErrPlayerStopped = errors.New("player stopped")
	// ErrPlayerStarted is returned by a second Start.
	ErrPlayerStarted = errors.New("player already started")
)

// Player replays a Simulation against the wall clock: every tick advances
// simulated time by a fixed step and emits a Frame.
//
// The Player owns its Simulation. After NewPlayer the caller must not touch
// the Simulation directly; use Snapshot and Undo instead.
type Player struct {
	sim      *collisionx.Simulation
	tickRate time.Duration // e.g., 16.67ms for 60 FPS
	timeStep float64       // simulated seconds per tick
	logger   *slog.Logger

	mu      sync.Mutex
	tickNum uint64
	dropped uint64
	stopped bool
	frames  chan Frame

	// Control
	cancel context.CancelFunc
	done   chan struct{}
}

// Config configures the Player.
type Config struct {
	TickRate    time.Duration // Wall-clock tick period (default: 60 FPS)
	TimeStep    float64       // Simulated time per tick (default: TickRate in seconds)
	FrameBuffer int           // Frame channel capacity (default: 64)
	Logger      *slog.Logger  // Default: slog.Default()
}

// NewPlayer creates a Player driving sim.
func NewPlayer(sim *collisionx.Simulation, cfg Config) *Player {
	if cfg.TickRate == 0 {
		cfg.TickRate = 16667 * time.Microsecond // Default 60 FPS
	}
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = cfg.TickRate.Seconds()
	}
	if cfg.FrameBuffer <= 0 {
		cfg.FrameBuffer = 64
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Player{
		sim:      sim,
		tickRate: cfg.TickRate,
		timeStep: cfg.TimeStep,
		logger:   cfg.Logger.With("component", "realtime", "simulation", sim.ID()),
		frames:   make(chan Frame, cfg.FrameBuffer),
	}
}

// Start begins tick-based playback. The tick loop ends by itself once the
// simulation reaches its end time or ctx is cancelled, closing Frames.
func (p *Player) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return ErrPlayerStopped
	}
	if p.cancel != nil {
		return ErrPlayerStarted
	}

	tickCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	ticker := time.NewTicker(p.tickRate)

	go p.tickLoop(tickCtx, ticker, p.done)

	p.logger.Info("playback started", "tick_rate", p.tickRate, "time_step", p.timeStep)
	return nil
}

// Stop halts playback, waits for the tick loop to exit and closes Frames.
// Safe to call more than once.
func (p *Player) Stop() error {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
	p.finish()
	return nil
}

// tickLoop is the main tick execution loop
func (p *Player) tickLoop(ctx context.Context, ticker *time.Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.finish()
			return
		case <-ticker.C:
			frame, err := p.safeStep()
			if err != nil {
				return
			}
			if frame.Status == collisionx.Terminated {
				p.finish()
				return
			}
		}
	}
}

// safeStep runs Step, converting a panic in the engine into a stop.
func (p *Player) safeStep() (frame Frame, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("tick panicked, stopping playback", "panic", r, "tick", p.GetTickNumber())
			p.finish()
			err = ErrPlayerStopped
		}
	}()
	return p.Step()
}

func (p *Player) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true
	close(p.frames)
	p.logger.Info("playback stopped", "ticks", p.tickNum, "clock", p.sim.Clock(), "dropped_frames", p.dropped)
}

// Frames returns the channel frames are emitted on. It is closed when the
// player stops.
func (p *Player) Frames() <-chan Frame {
	return p.frames
}

// GetTickNumber returns the current tick count
func (p *Player) GetTickNumber() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tickNum
}

// Dropped returns the number of frames discarded because nobody was reading.
func (p *Player) Dropped() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.dropped
}

// Snapshot returns the simulation clock and a copy of the particles.
func (p *Player) Snapshot() (float64, []collisionx.Particle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sim.Clock(), p.sim.Particles()
}

// Undo rolls the owned simulation back by one event.
func (p *Player) Undo() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sim.Undo()
}
