package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/mazerun"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Search.StepCost)
	assert.Equal(t, 1000, cfg.Search.TurnCost)
	assert.Equal(t, "east", cfg.Search.Facing)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazerun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  turn_cost: 5\nlog:\n  level: debug\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.TurnCost)
	assert.Equal(t, 1, cfg.Search.StepCost)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"zero step cost":    "search:\n  step_cost: 0\n",
		"bad facing":        "search:\n  facing: up\n",
		"bad level":         "log:\n  level: loud\n",
		"cache without dir": "cache:\n  enabled: true\n  dir: \"\"\n",
		"bad yaml":          "search: [\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "mazerun.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazerun.yaml")
	cfg := Default()
	cfg.Search.Workers = 3
	require.NoError(t, Write(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSearchConfig_Options(t *testing.T) {
	cfg := Default()
	cfg.Search.Facing = "n"
	cfg.Search.TurnCost = 1

	options, err := cfg.Search.Options()
	require.NoError(t, err)

	g, err := mazerun.ParseGrid("#####\n###E#\n###.#\n#S..#\n#####\n")
	require.NoError(t, err)
	stepper, err := mazerun.NewStepper(g, options...)
	require.NoError(t, err)
	snap := stepper.Step()
	assert.Equal(t, mazerun.North, snap.Current.Facing)

	cfg.Search.Facing = "sideways"
	_, err = cfg.Search.Options()
	assert.Error(t, err)
}
