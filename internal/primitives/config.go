// Config holds the recognized engine options. The engine itself never
// validates it; Validate and ValidateScene exist for the collaborators that
// build scenes (loader, builders) and want to reject bad input early.

package primitives

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidScene  = errors.New("invalid scene")
)

// Config defines the box, the run limits and rollback behavior.
type Config struct {
	Width         float64 `json:"width" yaml:"width" env:"WIDTH"`
	Height        float64 `json:"height" yaml:"height" env:"HEIGHT"`
	EndTime       float64 `json:"endTime" yaml:"endTime" env:"END_TIME"`
	MaxEvents     int     `json:"maxEvents" yaml:"maxEvents" env:"MAX_EVENTS"`
	Rollback      bool    `json:"rollback" yaml:"rollback" env:"ROLLBACK"`
	RollbackDepth int     `json:"rollbackDepth" yaml:"rollbackDepth" env:"ROLLBACK_DEPTH"`
}

// DefaultConfig returns the demo defaults: 10x10 box, 12s, 2000 events, depth 8.
func DefaultConfig() Config {
	return Config{
		Width:         10.0,
		Height:        10.0,
		EndTime:       12.0,
		MaxEvents:     2000,
		Rollback:      true,
		RollbackDepth: 8,
	}
}

// Validate checks:
// - positive box dimensions and end time
// - positive event budget
// - positive rollback depth when rollback is enabled
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: box %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.EndTime <= 0 {
		return fmt.Errorf("%w: end time %g must be positive", ErrInvalidConfig, c.EndTime)
	}
	if c.MaxEvents <= 0 {
		return fmt.Errorf("%w: max events %d must be positive", ErrInvalidConfig, c.MaxEvents)
	}
	if c.Rollback && c.RollbackDepth <= 0 {
		return fmt.Errorf("%w: rollback depth %d must be positive", ErrInvalidConfig, c.RollbackDepth)
	}
	return nil
}

// ValidateScene validates cfg and the initial particles:
// - at least one particle
// - positive radius and mass
// - each particle fully inside the box
// - no two particles overlapping
func ValidateScene(cfg Config, particles []Particle) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(particles) == 0 {
		return fmt.Errorf("%w: no particles", ErrInvalidScene)
	}
	for i, p := range particles {
		if p.Radius <= 0 || p.Mass <= 0 {
			return fmt.Errorf("%w: particle %d has radius %g, mass %g", ErrInvalidScene, i, p.Radius, p.Mass)
		}
		if p.Pos.X < p.Radius || p.Pos.X > cfg.Width-p.Radius ||
			p.Pos.Y < p.Radius || p.Pos.Y > cfg.Height-p.Radius {
			return fmt.Errorf("%w: particle %d at (%g, %g) leaves the box", ErrInvalidScene, i, p.Pos.X, p.Pos.Y)
		}
	}
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			r := particles[i].Radius + particles[j].Radius
			if particles[j].Pos.Sub(particles[i].Pos).Norm2() < r*r {
				return fmt.Errorf("%w: particles %d and %d overlap", ErrInvalidScene, i, j)
			}
		}
	}
	return nil
}
