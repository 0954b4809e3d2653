// Tests for SVGVisualizer export.
package production

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/comalice/collisionx/internal/primitives"
)

func TestSVGVisualizer_ExportSVG(t *testing.T) {
	v := &SVGVisualizer{Scale: 10, Velocities: true}
	cfg, particles := headOnScene()

	svg := v.ExportSVG(cfg, particles)

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="100.0" height="100.0"`) {
		t.Errorf("Missing SVG header: %q", svg[:80])
	}
	if !strings.Contains(svg, `<circle id="p0" cx="30.00" cy="50.00" r="5.00"`) {
		t.Error("Missing particle p0")
	}
	if !strings.Contains(svg, `<circle id="p1" cx="70.00" cy="50.00" r="5.00"`) {
		t.Error("Missing particle p1")
	}
	if strings.Count(svg, "<line") != 2 {
		t.Error("Expected one velocity line per particle")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("Missing closing tag")
	}
}

func TestSVGVisualizer_FlipsYAxis(t *testing.T) {
	v := &SVGVisualizer{}
	cfg := primitives.DefaultConfig()
	svg := v.ExportSVG(cfg, []primitives.Particle{
		primitives.NewParticle(primitives.V(1, 1), primitives.Vec2{}, 0.5, 1),
	})

	// Default scale 40: y=1 is 40 units above the bottom edge at 400.
	if !strings.Contains(svg, `cx="40.00" cy="360.00" r="20.00"`) {
		t.Errorf("unexpected placement: %s", svg)
	}
	if strings.Contains(svg, "<line") {
		t.Error("velocities drawn without being requested")
	}
}

func TestSVGVisualizer_ExportJSON(t *testing.T) {
	v := &SVGVisualizer{}
	cfg, particles := headOnScene()

	data, err := v.ExportJSON(cfg, particles)
	if err != nil {
		t.Fatal(err)
	}
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		t.Fatal(err)
	}
	if sc.Config != cfg || len(sc.Particles) != 2 {
		t.Errorf("round trip mismatch: %+v", sc)
	}
}
