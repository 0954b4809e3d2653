// Package telemetry provides OpenTelemetry counters for the collision engine.
//
// Instruments are created from a metric.Meter; by default the global
// provider is used, which is a no-op until the host process installs one.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ScopeName is the instrumentation scope used for the default meter.
const ScopeName = "github.com/comalice/collisionx"

// Metrics records engine activity.
type Metrics struct {
	applied   metric.Int64Counter
	stale     metric.Int64Counter
	scheduled metric.Int64Counter
	undos     metric.Int64Counter
}

// Default builds Metrics from the global meter provider.
func Default() (*Metrics, error) {
	return New(otel.Meter(ScopeName))
}

// New creates the counters on meter.
func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.applied, err = meter.Int64Counter("collisionx.events.applied",
		metric.WithDescription("Collision events acted upon"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, fmt.Errorf("create applied counter: %w", err)
	}
	if m.stale, err = meter.Int64Counter("collisionx.events.stale",
		metric.WithDescription("Popped events discarded as stale"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, fmt.Errorf("create stale counter: %w", err)
	}
	if m.scheduled, err = meter.Int64Counter("collisionx.events.scheduled",
		metric.WithDescription("Predicted events pushed onto the queue"),
		metric.WithUnit("{event}"),
	); err != nil {
		return nil, fmt.Errorf("create scheduled counter: %w", err)
	}
	if m.undos, err = meter.Int64Counter("collisionx.undo",
		metric.WithDescription("Successful rollback restores"),
		metric.WithUnit("{restore}"),
	); err != nil {
		return nil, fmt.Errorf("create undo counter: %w", err)
	}
	return m, nil
}

// Applied counts one applied event of the given kind.
func (m *Metrics) Applied(ctx context.Context, kind string) {
	if m == nil {
		return
	}
	m.applied.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}

// Stale counts one discarded out-of-date prediction.
func (m *Metrics) Stale(ctx context.Context) {
	if m == nil {
		return
	}
	m.stale.Add(ctx, 1)
}

// Scheduled counts n pushed predictions.
func (m *Metrics) Scheduled(ctx context.Context, n int) {
	if m == nil || n == 0 {
		return
	}
	m.scheduled.Add(ctx, int64(n))
}

// Undo counts one successful rollback.
func (m *Metrics) Undo(ctx context.Context) {
	if m == nil {
		return
	}
	m.undos.Add(ctx, 1)
}
