// Package extensibility provides composable Publisher decorators: fan-out,
// filtering by event predicate, and logging around an inner publisher.
package extensibility

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/primitives"
)

// MultiPublisher delivers every record to each publisher in order.
// All publishers are called even when one fails; errors are joined.
type MultiPublisher []core.Publisher

func (m MultiPublisher) Publish(ctx context.Context, rec core.Record) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Predicate selects records.
type Predicate func(core.Record) bool

// KindIs selects records whose event has one of kinds.
func KindIs(kinds ...primitives.EventKind) Predicate {
	return func(rec core.Record) bool {
		for _, k := range kinds {
			if rec.Event.Kind == k {
				return true
			}
		}
		return false
	}
}

// Involves selects records whose event names particle i.
func Involves(i int) Predicate {
	return func(rec core.Record) bool {
		return rec.Event.A == i || (rec.Event.Kind == primitives.Pair && rec.Event.B == i)
	}
}

// FilterPublisher forwards only records accepted by Match. A nil Match
// forwards everything.
type FilterPublisher struct {
	Match Predicate
	Inner core.Publisher
}

// NewFilterPublisher creates a FilterPublisher.
func NewFilterPublisher(match Predicate, inner core.Publisher) *FilterPublisher {
	return &FilterPublisher{Match: match, Inner: inner}
}

func (f *FilterPublisher) Publish(ctx context.Context, rec core.Record) error {
	if f.Match != nil && !f.Match(rec) {
		return nil
	}
	return f.Inner.Publish(ctx, rec)
}

// LoggingPublisher wraps a Publisher and adds logging around delivery.
type LoggingPublisher struct {
	inner  core.Publisher
	logger *slog.Logger
}

// NewLoggingPublisher creates a new LoggingPublisher wrapping the given inner
// publisher. A nil inner publisher only logs.
func NewLoggingPublisher(inner core.Publisher, logger *slog.Logger) *LoggingPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingPublisher{inner: inner, logger: logger}
}

// Publish logs before and after delegating to the inner publisher.
func (l *LoggingPublisher) Publish(ctx context.Context, rec core.Record) error {
	l.logger.DebugContext(ctx, "publishing", "seq", rec.Seq, "event", rec.Event.String())
	if l.inner == nil {
		return nil
	}

	start := time.Now()
	err := l.inner.Publish(ctx, rec)
	if err != nil {
		l.logger.ErrorContext(ctx, "publish failed", "seq", rec.Seq, "duration", time.Since(start), "error", err)
		return err
	}
	l.logger.DebugContext(ctx, "published", "seq", rec.Seq, "duration", time.Since(start))
	return nil
}
