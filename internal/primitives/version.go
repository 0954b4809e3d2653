// Package primitives provides fingerprinting for scene definitions.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Fingerprint computes a deterministic identifier for a scene: SHA256 of the
// JSON encoding of cfg and the initial particles, first 8 bytes in hex.
// Two runs with equal fingerprints started from identical conditions.
func Fingerprint(cfg Config, particles []Particle) string {
	data, err := json.Marshal(struct {
		Config    Config     `json:"config"`
		Particles []Particle `json:"particles"`
	}{cfg, particles})
	if err != nil {
		// Fallback (only reachable with NaN/Inf fields)
		return fmt.Sprintf("invalid-%d", len(particles))
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
