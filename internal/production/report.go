// Package production provides production integrations: final-state reports,
// report persistence, event publishing, scenario loading and visualization.
package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/collisionx/internal/core"
	"github.com/comalice/collisionx/internal/primitives"
)

// ErrUnknownFormat is returned for report formats other than text, json and yaml.
var ErrUnknownFormat = errors.New("unknown report format")

// Report is the final state of a run.
type Report struct {
	SimulationID string                `json:"simulationID" yaml:"simulationID"`
	Fingerprint  string                `json:"fingerprint" yaml:"fingerprint"`
	Time         float64               `json:"time" yaml:"time"`
	Reason       string                `json:"reason" yaml:"reason"`
	Status       string                `json:"status" yaml:"status"`
	Stats        core.Stats            `json:"stats" yaml:"stats"`
	Config       primitives.Config     `json:"config" yaml:"config"`
	Particles    []primitives.Particle `json:"particles" yaml:"particles"`
}

// NewReport captures sim's current state. initial is the scene the run was
// started from and only feeds the fingerprint.
func NewReport(sim *core.Simulation, reason core.StopReason, initial []primitives.Particle) Report {
	return Report{
		SimulationID: sim.ID(),
		Fingerprint:  primitives.Fingerprint(sim.Config(), initial),
		Time:         sim.Clock(),
		Reason:       reason.String(),
		Status:       sim.Status().String(),
		Stats:        sim.Stats(),
		Config:       sim.Config(),
		Particles:    sim.Particles(),
	}
}

// ReportWriter encodes a Report onto w.
type ReportWriter interface {
	Write(w io.Writer, r Report) error
}

// NewReportWriter returns the writer for format: "text", "json" or "yaml".
func NewReportWriter(format string) (ReportWriter, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return TextWriter{}, nil
	case "json":
		return JSONWriter{Indent: "  "}, nil
	case "yaml", "yml":
		return YAMLWriter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// TextWriter prints the console format: a final time line followed by one
// line per particle, fixed four decimals.
type TextWriter struct{}

func (TextWriter) Write(w io.Writer, r Report) error {
	if _, err := fmt.Fprintf(w, "Final Time: %.4f\n", r.Time); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	for i, p := range r.Particles {
		_, err := fmt.Fprintf(w, "P%d r=(%.4f,%.4f) v=(%.4f,%.4f) collisions=%d\n",
			i, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y, p.Collisions)
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// JSONWriter encodes the report as JSON.
type JSONWriter struct {
	Indent string
}

func (j JSONWriter) Write(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", j.Indent)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// YAMLWriter encodes the report as YAML.
type YAMLWriter struct{}

func (YAMLWriter) Write(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return nil
}
