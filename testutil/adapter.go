package testutil

import (
	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/primitives"
)

// RunnerAdapter provides a common interface for driving a simulation to its
// end time either in one call or in fixed increments.
// This allows running the same test suite against both drive styles.
type RunnerAdapter interface {
	RunToEnd() core.StopReason
	Clock() float64
	Particles() []primitives.Particle
	Undo() bool
	Sim() *core.Simulation
}

// DirectAdapter drives with a single Run call.
type DirectAdapter struct {
	sim *core.Simulation
}

// NewDirectAdapter creates a new adapter around sim.
func NewDirectAdapter(sim *core.Simulation) *DirectAdapter {
	return &DirectAdapter{sim: sim}
}

func (a *DirectAdapter) RunToEnd() core.StopReason { return a.sim.Run() }

func (a *DirectAdapter) Clock() float64 { return a.sim.Clock() }

func (a *DirectAdapter) Particles() []primitives.Particle { return a.sim.Particles() }

func (a *DirectAdapter) Undo() bool { return a.sim.Undo() }

func (a *DirectAdapter) Sim() *core.Simulation { return a.sim }

// SteppedAdapter drives with RunUntil in increments of step and calls
// OnStep (if set) after every increment.
type SteppedAdapter struct {
	sim    *core.Simulation
	step   float64
	OnStep func(clock float64, particles []primitives.Particle)
}

// NewSteppedAdapter creates a new adapter advancing step time units per call.
func NewSteppedAdapter(sim *core.Simulation, step float64) *SteppedAdapter {
	return &SteppedAdapter{sim: sim, step: step}
}

func (a *SteppedAdapter) RunToEnd() core.StopReason {
	end := a.sim.Config().EndTime
	reason := core.StopHorizon
	for a.sim.Clock() < end {
		before := a.sim.Clock()
		reason = a.sim.RunUntil(before + a.step)
		if a.OnStep != nil {
			a.OnStep(a.sim.Clock(), a.sim.Particles())
		}
		if reason == core.StopBudget {
			return reason
		}
	}
	return reason
}

func (a *SteppedAdapter) Clock() float64 { return a.sim.Clock() }

func (a *SteppedAdapter) Particles() []primitives.Particle { return a.sim.Particles() }

func (a *SteppedAdapter) Undo() bool { return a.sim.Undo() }

func (a *SteppedAdapter) Sim() *core.Simulation { return a.sim }
