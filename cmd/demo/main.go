// Command demo runs a collision scenario and prints the final state.
//
// Without -scenario it runs the built-in three-particle demo: a 10x10 box,
// 12 seconds, at most 2000 events, rollback depth 8. Config fields can be
// overridden with COLLISIONX_* environment variables.
//
// A run that stops on the event budget is not drifted to the end time, so the
// report's "Final Time" is the clock of the last applied event. The same holds
// for the rerun after -undo.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/extensibility"
	"github.com/comalice/collisionx/internal/primitives"
	"github.com/comalice/collisionx/internal/production"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run() error {
	scenario := flag.String("scenario", "", "YAML scenario file (default: built-in demo)")
	format := flag.String("format", "text", "report format: text, json or yaml")
	svg := flag.String("svg", "", "write an SVG of the final state to this file")
	out := flag.String("out", "", "also save the report under this directory")
	undo := flag.Bool("undo", false, "roll back one event after the run and run again")
	trace := flag.Bool("trace", false, "print every applied event")
	traceKind := flag.String("trace-kind", "", "only trace events of these kinds, comma separated (wall-x, wall-y, pair)")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	writer, err := production.NewReportWriter(*format)
	if err != nil {
		return err
	}

	sc, err := loadScenario(*scenario)
	if err != nil {
		return err
	}

	opts := []core.Option{core.WithLogger(logger)}
	var wg sync.WaitGroup
	var records chan core.Record
	if *trace {
		records = make(chan core.Record, 256)
		pub := production.NewChannelPublisher(records)
		match, err := kindFilter(*traceKind)
		if err != nil {
			return err
		}
		traced := extensibility.NewFilterPublisher(match, extensibility.NewLoggingPublisher(pub, logger))
		opts = append(opts, core.WithPublisher(traced))
		defer func() {
			_ = pub.Close()
			wg.Wait()
			if n := pub.Dropped(); n > 0 {
				logger.Warn("trace records dropped", "count", n)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range records {
				fmt.Fprintf(os.Stderr, "#%d %v\n", rec.Seq, rec.Event)
			}
		}()
	}

	sim := core.NewSimulation(sc.Config, sc.Particles, opts...)
	reason := sim.Run()

	if *undo {
		if sim.Undo() {
			logger.Info("undid last event", "clock", sim.Clock())
			reason = sim.Run()
		} else {
			logger.Warn("nothing to undo")
		}
	}

	report := production.NewReport(sim, reason, sc.Particles)
	if err := writer.Write(os.Stdout, report); err != nil {
		return err
	}

	if *out != "" {
		fn, err := saveReport(*out, *format, report)
		if err != nil {
			return err
		}
		logger.InfoContext(context.Background(), "report saved", "path", fn)
	}

	if *svg != "" {
		v := &production.SVGVisualizer{Velocities: true}
		if err := os.WriteFile(*svg, []byte(v.ExportSVG(sim.Config(), sim.Particles())), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", *svg, err)
		}
	}
	return nil
}

func loadScenario(path string) (production.Scenario, error) {
	if path != "" {
		return production.LoadScenario(path)
	}

	sc := production.Scenario{
		Config: primitives.DefaultConfig(),
		Particles: []primitives.Particle{
			primitives.NewParticle(primitives.V(2.0, 2.0), primitives.V(1.2, 0.8), 0.3, 1.0),
			primitives.NewParticle(primitives.V(5.5, 6.5), primitives.V(-0.9, -0.6), 0.4, 1.5),
			primitives.NewParticle(primitives.V(7.8, 3.2), primitives.V(-0.4, 1.1), 0.5, 2.0),
		},
	}
	if err := production.ApplyEnv(&sc.Config); err != nil {
		return production.Scenario{}, err
	}
	if err := primitives.ValidateScene(sc.Config, sc.Particles); err != nil {
		return production.Scenario{}, fmt.Errorf("demo scene: %w", err)
	}
	return sc, nil
}

func saveReport(dir, format string, r production.Report) (string, error) {
	if format == "yaml" || format == "yml" {
		p, err := production.NewYAMLPersister(dir)
		if err != nil {
			return "", err
		}
		return p.Save(r)
	}
	p, err := production.NewJSONPersister(dir)
	if err != nil {
		return "", err
	}
	return p.Save(r)
}

func kindFilter(list string) (extensibility.Predicate, error) {
	if list == "" {
		return nil, nil
	}
	var kinds []primitives.EventKind
	for _, name := range strings.Split(list, ",") {
		k, err := primitives.ParseEventKind(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("trace-kind: %w", err)
		}
		kinds = append(kinds, k)
	}
	return extensibility.KindIs(kinds...), nil
}
