// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/comalice/collisionx/builder"
	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/primitives"
	"github.com/comalice/collisionx/internal/production"
)

// quietLogger drops everything so logging does not dominate timings.
var quietLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// GenGasScene creates an n x n lattice gas in a box sized so the packing
// fraction stays roughly constant as n grows.
func GenGasScene(n int, endTime float64) (primitives.Config, []primitives.Particle) {
	if n < 1 {
		n = 1
	}
	cfg := primitives.DefaultConfig()
	cfg.Width = 2.5 * float64(n)
	cfg.Height = 2.5 * float64(n)
	cfg.EndTime = endTime
	cfg.MaxEvents = 1 << 30
	return cfg, builder.Lattice(cfg, n, n, 0.5, 1, uint64(n))
}

// NewGasSimulation builds a quiet Simulation over GenGasScene.
func NewGasSimulation(n int, endTime float64, opts ...core.Option) *core.Simulation {
	cfg, particles := GenGasScene(n, endTime)
	opts = append([]core.Option{core.WithLogger(quietLogger), core.WithID("bench")}, opts...)
	return core.NewSimulation(cfg, particles, opts...)
}

// GenReportYAML runs an n x n gas to completion and returns its report as YAML.
func GenReportYAML(n int) []byte {
	cfg, particles := GenGasScene(n, 5)
	sim := core.NewSimulation(cfg, particles, core.WithLogger(quietLogger), core.WithID("bench"))
	report := production.NewReport(sim, sim.Run(), particles)
	data, err := yaml.Marshal(report)
	if err != nil {
		panic(err)
	}
	return data
}
