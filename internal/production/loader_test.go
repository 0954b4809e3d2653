package production

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/collisionx/internal/primitives"
)

const demoScenario = `
config:
  endTime: 6
particles:
  - pos: {x: 2, y: 2}
    vel: {x: 1.2, y: 0.8}
    radius: 0.3
    mass: 1
  - pos: {x: 5.5, y: 6.5}
    vel: {x: -0.9, y: -0.6}
    radius: 0.4
    mass: 1.5
`

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoScenario), 0o644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, 6.0, sc.Config.EndTime)
	assert.Equal(t, 10.0, sc.Config.Width, "unset keys keep defaults")
	assert.Equal(t, 2000, sc.Config.MaxEvents)
	require.Len(t, sc.Particles, 2)
	assert.Equal(t, primitives.V(5.5, 6.5), sc.Particles[1].Pos)
	assert.Equal(t, 1.5, sc.Particles[1].Mass)
}

func TestLoadScenarioMissing(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestParseScenarioEnvOverrides(t *testing.T) {
	t.Setenv("COLLISIONX_END_TIME", "3.5")
	t.Setenv("COLLISIONX_ROLLBACK", "false")
	t.Setenv("COLLISIONX_MAX_EVENTS", "10")

	sc, err := ParseScenario([]byte(demoScenario))
	require.NoError(t, err)
	assert.Equal(t, 3.5, sc.Config.EndTime)
	assert.False(t, sc.Config.Rollback)
	assert.Equal(t, 10, sc.Config.MaxEvents)
	assert.Equal(t, 10.0, sc.Config.Height)
}

func TestParseScenarioBadEnv(t *testing.T) {
	t.Setenv("COLLISIONX_WIDTH", "wide")

	_, err := ParseScenario([]byte(demoScenario))
	assert.Error(t, err)
}

func TestParseScenarioInvalid(t *testing.T) {
	tests := map[string]struct {
		yaml string
		want error
	}{
		"no particles": {"config:\n  width: 5\n", primitives.ErrInvalidScene},
		"bad config":   {"config:\n  width: 0\nparticles:\n  - {pos: {x: 1, y: 1}, radius: 0.5, mass: 1}\n", primitives.ErrInvalidConfig},
		"overlap": {`particles:
  - {pos: {x: 5, y: 5}, radius: 0.5, mass: 1}
  - {pos: {x: 5.2, y: 5}, radius: 0.5, mass: 1}
`, primitives.ErrInvalidScene},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}

	_, err := ParseScenario([]byte("config: [unterminated"))
	assert.Error(t, err)
}

func TestApplyEnvLeavesUnsetFields(t *testing.T) {
	cfg := primitives.DefaultConfig()
	require.NoError(t, ApplyEnv(&cfg))
	assert.Equal(t, primitives.DefaultConfig(), cfg)
}
