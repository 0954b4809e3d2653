package production

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/comalice/collisionx/internal/primitives"
)

// EnvPrefix prefixes every Config environment override, e.g. COLLISIONX_END_TIME.
const EnvPrefix = "COLLISIONX_"

// Scenario is a scene file: a config block and the initial particles.
type Scenario struct {
	Config    primitives.Config     `json:"config" yaml:"config"`
	Particles []primitives.Particle `json:"particles" yaml:"particles"`
}

// LoadScenario reads a YAML scenario from path. Missing config keys keep
// their DefaultConfig values, environment overrides are applied on top, and
// the result is validated.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Scenario{}, fmt.Errorf("scenario %q: %w", path, os.ErrNotExist)
		}
		return Scenario{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario, applies environment overrides and
// validates it.
func ParseScenario(data []byte) (Scenario, error) {
	sc := Scenario{Config: primitives.DefaultConfig()}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := ApplyEnv(&sc.Config); err != nil {
		return Scenario{}, err
	}
	if err := primitives.ValidateScene(sc.Config, sc.Particles); err != nil {
		return Scenario{}, fmt.Errorf("scenario: %w", err)
	}
	return sc, nil
}

// ApplyEnv overrides fields of cfg from COLLISIONX_* environment variables.
// Unset variables leave the field untouched.
func ApplyEnv(cfg *primitives.Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
