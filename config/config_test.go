package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlabel/config"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 3, cfg.Subsets.N)
	assert.Equal(t, 4, cfg.Wheel.N)
	assert.Equal(t, 7, cfg.L321.MaxLabel)
	assert.False(t, cfg.L321.MinSpan)
	assert.Equal(t, "-", cfg.Graph.Path)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
subsets:
  n: 5
wheel:
  n: 6
l321:
  min_span: true
graph:
  path: edges.txt
  strict: true
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Subsets.N)
	assert.Equal(t, 6, cfg.Wheel.N)
	assert.True(t, cfg.L321.MinSpan)
	assert.Equal(t, 7, cfg.L321.MaxLabel, "unset keys keep defaults")
	assert.Equal(t, "edges.txt", cfg.Graph.Path)
	assert.True(t, cfg.Graph.Strict)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
[wheel]
n = 5

[l321]
max_label = 9
max_bound = 20

[graph]
multi_edges = true
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Wheel.N)
	assert.Equal(t, 9, cfg.L321.MaxLabel)
	assert.Equal(t, 20, cfg.L321.MaxBound)
	assert.True(t, cfg.Graph.MultiEdges)
	assert.Equal(t, 3, cfg.Subsets.N)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("LVLABEL_SUBSETS_N", "6")
	t.Setenv("LVLABEL_L321_MIN_SPAN", "true")
	t.Setenv("LVLABEL_GRAPH_PATH", "g.txt")
	t.Setenv("LVLABEL_LOG_LEVEL", "WARN")

	path := writeFile(t, "run.yml", "subsets:\n  n: 2\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Subsets.N, "env wins over file")
	assert.True(t, cfg.L321.MinSpan)
	assert.Equal(t, "g.txt", cfg.Graph.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(writeFile(t, "run.json", "{}"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "bad.yaml", "subsets: [1, 2"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "bad.toml", "[wheel\nn = 1"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "small.yaml", "wheel:\n  n: 2\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = config.Load(writeFile(t, "big.toml", "[subsets]\nn = 51\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("LVLABEL_WHEEL_N", "four")
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidEnv)
}

func TestLoad_BadEnvBool(t *testing.T) {
	t.Setenv("LVLABEL_GRAPH_STRICT", "perhaps")
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidEnv)
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "loud"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
