package blockmodel

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSimpleModel(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	model, err := loader.LoadModel("block/test_cube")
	require.NoError(t, err)

	assert.Len(t, model.Elements, 1)
	assert.Equal(t, "block/stone", model.Textures["all"])
	assert.NotNil(t, model.Elements[0].Faces[Down])
	assert.Nil(t, model.Elements[0].Faces[Up])
}

func TestLoadChildModel(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	r, err := loader.Resolve("block/test_child")
	require.NoError(t, err)

	assert.Len(t, r.Chain(), 2)
	assert.Len(t, r.Elements(), 1, "elements come from the parent")
	assert.Equal(t, "block/stone", r.Textures()["all"], "'all' is inherited")
	assert.Equal(t, "block/dirt", r.Textures()["particle"])

	// The child file itself stays as written.
	child, err := loader.LoadModel("test_child")
	require.NoError(t, err)
	assert.Empty(t, child.Elements)
	assert.NotContains(t, child.Textures, "all")
}

func TestTextureResolve(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	r, err := loader.Resolve("block/test_texture_resolve")
	require.NoError(t, err)

	face := r.Elements()[0].Faces[North]
	assert.Equal(t, "block/diamond_block", r.ResolveTexture(face.Texture))
	assert.Equal(t, "block/diamond_block", r.TexturePaths()["secondary"])
}

func TestMissingParentTruncatesChain(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	r, err := loader.Resolve("block/test_orphan")
	require.NoError(t, err)

	assert.Len(t, r.Chain(), 1)
	assert.Equal(t, "block/gold_block", r.Textures()["all"])
	assert.Empty(t, r.Elements())
}

func TestBuiltinParentIsNotLoaded(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	model, err := loader.LoadModel("item/test_generated")
	require.NoError(t, err)

	assert.Empty(t, loader.LoadAncestors(model))
}

func TestLoadInvalidModel(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	_, err := loader.LoadModel("block/test_invalid")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "invalid element rotation angle: 10", perr.Error())
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	_, err := loader.LoadModel("block/does_not_exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCache(t *testing.T) {
	loader := NewLoader("assets-test", nil)
	model1, err := loader.LoadModel("block/test_cube")
	require.NoError(t, err)

	model2, err := loader.LoadModel("test_cube")
	require.NoError(t, err)

	assert.Same(t, model1, model2, "expected the same model instance to be returned from cache")
}

func TestModelName(t *testing.T) {
	assert.Equal(t, "block/stone", ModelName("stone"))
	assert.Equal(t, "block/stone", ModelName("minecraft:block/stone"))
	assert.Equal(t, "item/stick", ModelName("item/stick"))
}

func TestMain(m *testing.M) {
	// Create dummy files for testing
	os.MkdirAll("assets-test/models/block", 0755)
	os.MkdirAll("assets-test/models/item", 0755)

	writeTestFile("assets-test/models/block/test_cube.json", `{
		"textures": { "all": "block/stone" },
		"elements": [ { "from": [0,0,0], "to": [16,16,16], "faces": { "down": { "texture": "#all" } } } ]
	}`)

	writeTestFile("assets-test/models/block/test_child.json", `{
		"parent": "block/test_cube",
		"textures": { "particle": "block/dirt" }
	}`)

	writeTestFile("assets-test/models/block/test_texture_resolve.json", `{
		"textures": { "primary": "block/diamond_block", "secondary": "#primary" },
		"elements": [ { "from": [0,0,0], "to": [16,16,16], "faces": { "north": { "texture": "#secondary" } } } ]
	}`)

	writeTestFile("assets-test/models/block/test_orphan.json", `{
		"parent": "block/not_there",
		"textures": { "all": "block/gold_block" }
	}`)

	writeTestFile("assets-test/models/item/test_generated.json", `{
		"parent": "builtin/generated",
		"textures": { "layer0": "item/stick" }
	}`)

	writeTestFile("assets-test/models/block/test_invalid.json", `{
		"elements": [ {
			"from": [0,0,0], "to": [16,16,16], "faces": {},
			"rotation": { "origin": [8,8,8], "axis": "y", "angle": 10 }
		} ]
	}`)

	exitCode := m.Run()
	os.RemoveAll("assets-test")
	os.Exit(exitCode)
}

func writeTestFile(path, content string) {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		panic(err)
	}
}
