package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcmodel/internal/config"
)

const stoneModel = `{
  "textures": {"all": "block/stone"},
  "elements": [{
    "from": [0, 0, 0], "to": [16, 16, 16],
    "faces": {
      "down":  {"texture": "#all"},
      "up":    {"texture": "#all"},
      "north": {"texture": "#all"},
      "south": {"texture": "#all"},
      "west":  {"texture": "#all"},
      "east":  {"texture": "#all"}
    }
  }]
}`

func testOptions(t *testing.T, names ...string) options {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "models", "block", "stone.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(stoneModel), 0644))

	cfg := config.Default()
	cfg.Assets.Path = root
	cfg.Compile.Workers = 2
	return options{cfg: cfg, names: names}
}

func TestExecuteSucceeds(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := execute(testOptions(t, "stone"), &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "stone: 24 vertices, 12 triangles")
	assert.Empty(t, stderr.String())
}

func TestExecuteReportsFailures(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := execute(testOptions(t, "stone", "missing"), &stdout, &stderr)

	require.ErrorIs(t, err, errCompileFailed)
	assert.Contains(t, stdout.String(), "stone: 24 vertices")
	assert.Equal(t, "Error: one or more models failed to compile (1 of 2)\n", stderr.String())
}
