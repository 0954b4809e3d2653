package production

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/primitives"
)

func headOnScene() (primitives.Config, []primitives.Particle) {
	return primitives.DefaultConfig(), []primitives.Particle{
		primitives.NewParticle(primitives.V(3, 5), primitives.V(1, 0), 0.5, 1),
		primitives.NewParticle(primitives.V(7, 5), primitives.V(-1, 0), 0.5, 1),
	}
}

func runHeadOn(t *testing.T) Report {
	t.Helper()
	cfg, initial := headOnScene()
	sim := core.NewSimulation(cfg, initial,
		core.WithID("head-on"),
		core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	return NewReport(sim, sim.Run(), initial)
}

func TestNewReport(t *testing.T) {
	r := runHeadOn(t)
	cfg, initial := headOnScene()

	assert.Equal(t, "head-on", r.SimulationID)
	assert.Equal(t, primitives.Fingerprint(cfg, initial), r.Fingerprint)
	assert.Equal(t, 12.0, r.Time)
	assert.Equal(t, "drained", r.Reason)
	assert.Equal(t, "terminated", r.Status)
	assert.Equal(t, uint64(4), r.Stats.Applied)
	require.Len(t, r.Particles, 2)
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, TextWriter{}.Write(&buf, runHeadOn(t)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Final Time: 12.0000", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "P0 r=(2.0000,5.0000) v=(-1.0000,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "collisions=3"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "P1 r=(8.0000,5.0000) v=(1.0000,"), lines[2])
}

func TestTextWriterBudgetStop(t *testing.T) {
	cfg, initial := headOnScene()
	cfg.MaxEvents = 1
	sim := core.NewSimulation(cfg, initial,
		core.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	r := NewReport(sim, sim.Run(), initial)
	assert.Equal(t, "budget", r.Reason)

	var buf bytes.Buffer
	require.NoError(t, TextWriter{}.Write(&buf, r))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Final Time: 1.5000", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "P0 r=(4.5000,5.0000) v=(-1.0000,"), lines[1])
}

func TestStructuredWriters(t *testing.T) {
	r := runHeadOn(t)

	var jbuf bytes.Buffer
	require.NoError(t, JSONWriter{}.Write(&jbuf, r))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(jbuf.Bytes(), &fromJSON))
	assert.Equal(t, r.Fingerprint, fromJSON.Fingerprint)
	assert.Equal(t, r.Particles, fromJSON.Particles)

	var ybuf bytes.Buffer
	require.NoError(t, YAMLWriter{}.Write(&ybuf, r))
	assert.Contains(t, ybuf.String(), "simulationID: head-on")
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &fromYAML))
	assert.Equal(t, r.Stats, fromYAML.Stats)
	assert.Equal(t, r.Config, fromYAML.Config)
}

func TestNewReportWriter(t *testing.T) {
	for format, want := range map[string]ReportWriter{
		"text": TextWriter{},
		"":     TextWriter{},
		"JSON": JSONWriter{Indent: "  "},
		"yaml": YAMLWriter{},
		"yml":  YAMLWriter{},
	} {
		got, err := NewReportWriter(format)
		require.NoError(t, err, format)
		assert.Equal(t, want, got, format)
	}

	_, err := NewReportWriter("xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat), "got %v", err)
}
