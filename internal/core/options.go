// Package core provides the runtime core tier of the collision engine.
// Options for configuring Simulation instances.
package core

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/comalice/collisionx/internal/telemetry"
)

// WithID sets the simulation identifier. Default: a random UUID.
func WithID(id string) Option {
	return func(s *Simulation) {
		s.id = id
	}
}

// WithLogger configures the Simulation with a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) {
		s.logger = l
	}
}

// WithPublisher configures the Simulation with a Publisher for applied events.
func WithPublisher(p Publisher) Option {
	return func(s *Simulation) {
		s.publisher = p
	}
}

// WithMeter builds the engine counters on meter instead of the global provider.
func WithMeter(m metric.Meter) Option {
	return func(s *Simulation) {
		s.meter = m
	}
}

// WithMetrics configures the Simulation with prebuilt counters.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Simulation) {
		s.metrics = m
	}
}
