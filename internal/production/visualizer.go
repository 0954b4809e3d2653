package production

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/comalice/collisionx/internal/primitives"
)

// SVGVisualizer renders particle snapshots as SVG. The y axis points up, as
// in the simulation, so the drawing is flipped vertically.
type SVGVisualizer struct {
	// Scale is the number of SVG units per simulation unit. Zero means 40.
	Scale float64
	// Velocities draws a velocity vector per particle, scaled by one second.
	Velocities bool
}

// ExportSVG generates a standalone SVG document for particles in cfg's box.
func (v *SVGVisualizer) ExportSVG(cfg primitives.Config, particles []primitives.Particle) string {
	scale := v.Scale
	if scale <= 0 {
		scale = 40
	}
	w, h := cfg.Width*scale, cfg.Height*scale

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.1f" height="%.1f" viewBox="0 0 %.1f %.1f">`+"\n", w, h, w, h))
	buf.WriteString(fmt.Sprintf(`  <rect x="0" y="0" width="%.1f" height="%.1f" fill="white" stroke="black" stroke-width="2"/>`+"\n", w, h))

	for i, p := range particles {
		cx, cy := p.Pos.X*scale, h-p.Pos.Y*scale
		buf.WriteString(fmt.Sprintf(`  <circle id="p%d" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="0.6" stroke="black"/>`+"\n",
			i, cx, cy, p.Radius*scale, color(i)))
		if v.Velocities {
			tx, ty := cx+p.Vel.X*scale, cy-p.Vel.Y*scale
			buf.WriteString(fmt.Sprintf(`  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="red"/>`+"\n", cx, cy, tx, ty))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.String()
}

// ExportJSON serializes the snapshot to JSON.
func (v *SVGVisualizer) ExportJSON(cfg primitives.Config, particles []primitives.Particle) ([]byte, error) {
	return json.MarshalIndent(Scenario{Config: cfg, Particles: particles}, "", "  ")
}

var palette = []string{"steelblue", "orange", "seagreen", "crimson", "mediumpurple", "goldenrod"}

func color(i int) string {
	return palette[i%len(palette)]
}
