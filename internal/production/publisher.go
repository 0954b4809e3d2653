package production

import (
	"context"
	"sync/atomic"

	"github.com/comalice/collisionx/internal/core"
)

// ChannelPublisher forwards applied-event records to a Go channel.
// Non-blocking publish with drop on backpressure.
type ChannelPublisher struct {
	ch      chan<- core.Record
	dropped atomic.Uint64
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- core.Record) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(ctx context.Context, rec core.Record) error {
	select {
	case p.ch <- rec:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.dropped.Add(1) // Non-blocking drop
		return nil
	}
}

// Dropped returns the number of records discarded because the channel was full.
func (p *ChannelPublisher) Dropped() uint64 { return p.dropped.Load() }

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}
