package production

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// JSONPersister is a file-based report store using JSON serialization.
// Reports are keyed by simulation ID.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

// Save writes r to <dir>/<simulationID>.json and returns the path.
func (p *JSONPersister) Save(r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, r.SimulationID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fn, err)
	}
	return fn, nil
}

func (p *JSONPersister) Load(simulationID string) (Report, error) {
	fn := filepath.Join(p.dir, simulationID+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("simulation %q: %w", simulationID, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("json unmarshal: %w", err)
	}
	r.SimulationID = simulationID // Ensure ID
	if err := r.Config.Validate(); err != nil {
		return Report{}, fmt.Errorf("config validation after load: %w", err)
	}
	return r, nil
}

// YAMLPersister is a file-based report store using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

// Save writes r to <dir>/<simulationID>.yaml and returns the path.
func (p *YAMLPersister) Save(r Report) (string, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, r.SimulationID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", fn, err)
	}
	return fn, nil
}

func (p *YAMLPersister) Load(simulationID string) (Report, error) {
	fn := filepath.Join(p.dir, simulationID+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Report{}, fmt.Errorf("simulation %q: %w", simulationID, os.ErrNotExist)
		}
		return Report{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var r Report
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	r.SimulationID = simulationID
	if err := r.Config.Validate(); err != nil {
		return Report{}, fmt.Errorf("config validation after load: %w", err)
	}
	return r, nil
}
