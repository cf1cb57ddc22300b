package blockmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cube(texture string) Element {
	e := Element{From: Vec3{0, 0, 0}, To: Vec3{16, 16, 16}}
	for i := range e.Faces {
		e.Faces[i] = &Face{Texture: texture}
	}
	return e
}

func TestResolverOverridesTextures(t *testing.T) {
	root := &Model{Textures: map[string]string{"a": "x", "b": "inherited"}}
	leaf := &Model{
		Parent:   "root",
		Textures: map[string]string{"a": "y", "c": "z"},
		Elements: []Element{cube("#a")},
	}

	r := NewResolver(leaf, map[string]*Model{"root": root})

	assert.Equal(t, []*Model{leaf, root}, r.Chain())
	assert.Equal(t, leaf.Elements, r.Elements())
	assert.Equal(t, map[string]string{"a": "y", "b": "inherited", "c": "z"}, r.Textures())

	// Inputs are left untouched.
	assert.Equal(t, map[string]string{"a": "x", "b": "inherited"}, root.Textures)
	assert.Equal(t, map[string]string{"a": "y", "c": "z"}, leaf.Textures)
}

func TestResolverFirstNonEmptyElements(t *testing.T) {
	grand := &Model{Elements: []Element{cube("#g")}}
	parent := &Model{Parent: "grand", Elements: []Element{cube("#p"), cube("#p")}}
	leaf := &Model{Parent: "parent", Elements: []Element{}}

	r := NewResolver(leaf, map[string]*Model{"grand": grand, "parent": parent})
	assert.Len(t, r.Chain(), 3)
	assert.Equal(t, parent.Elements, r.Elements())
}

func TestResolverNoElements(t *testing.T) {
	root := &Model{}
	leaf := &Model{Parent: "root"}
	assert.Nil(t, NewResolver(leaf, map[string]*Model{"root": root}).Elements())
}

func TestResolverOrphanedParent(t *testing.T) {
	leaf := &Model{
		Parent:   "block/missing",
		Textures: map[string]string{"all": "block/stone"},
		Elements: []Element{cube("#all")},
	}

	r := NewResolver(leaf, map[string]*Model{"block/other": {}})
	assert.Equal(t, []*Model{leaf}, r.Chain())
	assert.Equal(t, leaf.Elements, r.Elements())
	assert.Equal(t, leaf.Textures, r.Textures())

	r = NewResolver(leaf, nil)
	assert.Len(t, r.Chain(), 1)
}

func TestResolverStopsOnCycle(t *testing.T) {
	a := &Model{Parent: "b", Textures: map[string]string{"t": "from_a"}}
	b := &Model{Parent: "a", Textures: map[string]string{"t": "from_b", "u": "from_b"}}

	r := NewResolver(a, map[string]*Model{"a": a, "b": b})
	assert.Equal(t, []*Model{a, b}, r.Chain())
	assert.Equal(t, map[string]string{"t": "from_a", "u": "from_b"}, r.Textures())
}

func TestResolverTextureIndirection(t *testing.T) {
	root := &Model{Textures: map[string]string{"side": "#all", "top": "#missing", "loop": "#loop"}}
	leaf := &Model{Parent: "root", Textures: map[string]string{"all": "block/planks"}}

	r := NewResolver(leaf, map[string]*Model{"root": root})
	assert.Equal(t, "block/planks", r.ResolveTexture("#side"))
	assert.Equal(t, "#missing", r.ResolveTexture("#top"))
	assert.Equal(t, "block/raw", r.ResolveTexture("block/raw"))
	assert.Equal(t, map[string]string{"all": "block/planks", "side": "block/planks"}, r.TexturePaths())
}

func TestResolverAmbientOcclusionAndDisplay(t *testing.T) {
	off := false
	root := &Model{
		AmbientOcclusion: &off,
		Display: map[DisplayPosition]Display{
			DisplayGUI:  {Rotation: Vec3{30, 225, 0}, Scale: Vec3{0.625, 0.625, 0.625}},
			DisplayHead: {Scale: Vec3{1, 1, 1}},
		},
	}
	leaf := &Model{
		Parent:  "root",
		Display: map[DisplayPosition]Display{DisplayGUI: {Scale: Vec3{1, 1, 1}}},
	}

	r := NewResolver(leaf, map[string]*Model{"root": root})
	assert.False(t, r.AmbientOcclusion())
	assert.Equal(t, Vec3{1, 1, 1}, r.Display()[DisplayGUI].Scale)
	assert.Contains(t, r.Display(), DisplayHead)

	resolved := r.Resolve()
	assert.False(t, resolved.UsesAmbientOcclusion())
	assert.Empty(t, resolved.Parent)

	assert.True(t, NewResolver(&Model{}, nil).AmbientOcclusion())
}
