package benchmarks

import (
	"testing"

	"github.com/comalice/collisionx/realtime"
)

// Realtime Player Benchmarks
//
// These measure the per-tick cost of fixed-step playback:
// - Step: one RunUntil plus a frame copy of every particle
// - Frames are dropped (buffer of 1) so nothing blocks

func BenchmarkPlayerStep(b *testing.B) {
	p := realtime.NewPlayer(NewGasSimulation(8, 1e9), realtime.Config{
		TimeStep:    1.0 / 60,
		FrameBuffer: 1,
		Logger:      quietLogger,
	})
	defer p.Stop()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := p.Step(); err != nil {
			b.Fatal(err)
		}
	}
}
