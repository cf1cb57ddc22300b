package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcmodel/pkg/animation"
	"mcmodel/pkg/blockmodel"
	"mcmodel/pkg/mesh"
)

func fireMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	model, err := blockmodel.Parse([]byte(`{
  "textures": {"fire": "block/fire_0", "base": "block/netherrack"},
  "elements": [{
    "from": [0, 0, 8.8], "to": [16, 22.4, 8.8],
    "shade": false,
    "rotation": {"origin": [8, 8, 8], "axis": "x", "angle": -22.5, "rescale": true},
    "faces": {
      "south": {"texture": "#fire", "uv": [0, 0, 16, 16]},
      "north": {"texture": "#fire", "uv": [16, 0, 0, 16]},
      "down":  {"texture": "#base"},
      "up":    {"texture": "#unbound"}
    }
  }]
}`))
	require.NoError(t, err)
	return mesh.New(model, nil)
}

func TestReportSummary(t *testing.T) {
	m := fireMesh(t)
	fire, err := animation.NewTexture(16, 512)
	require.NoError(t, err)
	require.NoError(t, m.BindTextures(func(path string) (*animation.Texture, error) {
		if path == "block/fire_0" {
			return fire, nil
		}
		return animation.Static(), nil
	}))

	r := newReport("fire", m, animation.AnyAnimated, false)
	assert.Equal(t, 16, r.Vertices)
	assert.Equal(t, 8, r.Triangles)
	assert.True(t, r.Animated)
	assert.Equal(t, 32, r.Period)
	require.Len(t, r.Groups, 3)
	assert.Equal(t, groupReport{Material: 0, Start: 0, Count: 6}, r.Groups[0])
	assert.Equal(t, groupReport{Material: 1, Texture: "block/fire_0", Start: 6, Count: 12, Frames: 32}, r.Groups[1])
	assert.Equal(t, groupReport{Material: 2, Texture: "block/netherrack", Start: 18, Count: 6, Frames: 1}, r.Groups[2])
	assert.Nil(t, r.Positions)

	var buf bytes.Buffer
	r.writeSummary(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "fire: 16 vertices, 8 triangles, animated (period 32)", lines[0])
	assert.Contains(t, lines[1], "(missing)")
	assert.Contains(t, lines[2], "block/fire_0")
	assert.Contains(t, lines[2], "32 frames")
	assert.NotContains(t, lines[3], "frames")
}

func TestReportJSON(t *testing.T) {
	m := fireMesh(t)
	r := newReport("fire", m, animation.AllAnimated, true)
	assert.False(t, r.Animated, "no textures are bound")

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, []report{r}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "fire", decoded[0]["model"])
	assert.Len(t, decoded[0]["positions"], 16*3)
	assert.Len(t, decoded[0]["uvs"], 16*2)
	assert.Len(t, decoded[0]["indices"], 8*3)
	assert.Len(t, decoded[0]["groups"], 3)
}
