package blockmodel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireParseError asserts that err is a *ParseError with the given message.
func requireParseError(t *testing.T, err error, msg string) {
	t.Helper()
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, msg, perr.Error())
}

func TestParseModel(t *testing.T) {
	m, err := Parse([]byte(`{
		"parent": "block/cube",
		"ambientocclusion": false,
		"textures": { "block/stone": "somePath" },
		"elements": [ {
			"from": [1, 1, 1], "to": [2, 2, 2],
			"rotation": { "origin": [8, 8, 8], "angle": -22.5, "axis": "z", "rescale": true },
			"shade": false,
			"faces": {
				"up": { "texture": "#top", "uv": [0, 0, 16, 8], "cullface": "up", "rotation": 180, "tintindex": 0 },
				"west": { "texture": "#side" }
			}
		} ],
		"display": { "gui": { "rotation": [1, 2, 3] } }
	}`))
	require.NoError(t, err)

	assert.Equal(t, "block/cube", m.Parent)
	assert.False(t, m.UsesAmbientOcclusion())
	assert.Equal(t, "somePath", m.Textures["block/stone"])
	require.Len(t, m.Elements, 1)

	e := m.Elements[0]
	assert.Equal(t, Vec3{1, 1, 1}, e.From)
	assert.Equal(t, Vec3{2, 2, 2}, e.To)
	assert.False(t, e.Shaded())
	require.NotNil(t, e.Rotation)
	assert.Equal(t, Rotation{Origin: Vec3{8, 8, 8}, Angle: -22.5, Axis: AxisZ, Rescale: true}, *e.Rotation)
	assert.Equal(t, 2, e.FaceCount())

	up := e.Faces[Up]
	require.NotNil(t, up)
	assert.Equal(t, "#top", up.Texture)
	assert.Equal(t, &Vec4{0, 0, 16, 8}, up.UV)
	require.NotNil(t, up.CullFace)
	assert.Equal(t, Up, *up.CullFace)
	assert.Equal(t, TextureRotation(180), up.Rotation)
	require.NotNil(t, up.TintIndex)
	assert.Equal(t, 0, *up.TintIndex)

	west := e.Faces[West]
	require.NotNil(t, west)
	assert.Nil(t, west.UV)
	assert.Nil(t, west.CullFace)
	assert.Nil(t, west.TintIndex)

	gui := m.Display[DisplayGUI]
	assert.Equal(t, Vec3{1, 2, 3}, gui.Rotation)
	assert.Equal(t, Vec3{1, 1, 1}, gui.Scale, "scale defaults to identity")
}

func TestParseModelDefaults(t *testing.T) {
	m, err := Parse([]byte(`{ "elements": [] }`))
	require.NoError(t, err)
	assert.True(t, m.UsesAmbientOcclusion())
	assert.Empty(t, m.Parent)
	assert.Nil(t, m.Textures)
	assert.Empty(t, m.Elements)
}

func TestParseModelErrors(t *testing.T) {
	cases := []struct {
		doc string
		msg string
	}{
		{`20`, "invalid model: 20"},
		{`[]`, "invalid model: []"},
		{`{"textures": 20}`, `invalid property "textures": 20`},
		{`{"textures": []}`, `invalid property "textures": []`},
		{`{"textures": {"a": 999}}`, `invalid property "textures": {"a":999}`},
		{`{"parent": 20}`, `invalid property "parent": 20`},
		{`{"elements": true}`, `invalid property "elements": true`},
		{`{"ambientocclusion": "a string"}`, `invalid property "ambientocclusion": "a string"`},
		{`{"display": 20}`, `invalid property "display": 20`},
		{`{"display": []}`, `invalid property "display": []`},
		{`{"display": {"gui": {}, "head": {}, "down_under": {}}}`, `unknown display type: "down_under"`},
	}
	for _, c := range cases {
		_, err := Parse([]byte(c.doc))
		requireParseError(t, err, c.msg)
	}
}

func TestParseElementErrors(t *testing.T) {
	cases := []struct {
		doc string
		msg string
	}{
		{`20`, "invalid element: 20"},
		{`[]`, "invalid element: []"},
		{`{"to": [1,1,1], "faces": {}}`, `element is missing property "from"`},
		{`{"from": [1,1,1], "faces": {}}`, `element is missing property "to"`},
		{`{"from": [1,1,1], "to": [2,2,2]}`, `element is missing property "faces"`},
		{`{"from": [1,1,1,1,1], "to": [2,2,2], "faces": {}}`, "invalid Vec3: [1,1,1,1,1]"},
		{`{"from": [1,1,1], "to": [2], "faces": {}}`, "invalid Vec3: [2]"},
		{`{"from": [-17,0,0], "to": [2,2,2], "faces": {}}`, `invalid element property "from": [-17,0,0]`},
		{`{"from": [0,0,0], "to": [2,33,2], "faces": {}}`, `invalid element property "to": [2,33,2]`},
		{`{"from": [1,1,1], "to": [2,2,2], "faces": {"west": {"texture": "#a"}, "around": {"texture": "#a"}}}`,
			`element has face with invalid name: "around"`},
		{`{"from": [1,1,1], "to": [2,2,2], "faces": {}, "shade": 2}`, `invalid property "shade": 2`},
	}
	for _, c := range cases {
		var e Element
		requireParseError(t, json.Unmarshal([]byte(c.doc), &e), c.msg)
	}
}

func TestParseRotationErrors(t *testing.T) {
	cases := []struct {
		doc string
		msg string
	}{
		{`20`, "invalid element rotation: 20"},
		{`{"angle": 22.5, "axis": "x"}`, `element rotation is missing property "origin"`},
		{`{"origin": [1,1,1], "angle": 22.5}`, `element rotation is missing property "axis"`},
		{`{"origin": [1,1,1], "axis": "x"}`, `element rotation is missing property "angle"`},
		{`{"origin": [1,1], "angle": 22.5, "axis": "y"}`, "invalid Vec3: [1,1]"},
		{`{"origin": [1,1,1], "angle": 10, "axis": "y"}`, "invalid element rotation angle: 10"},
		{`{"origin": [1,1,1], "angle": 22.5, "axis": "a"}`, `invalid element rotation axis: "a"`},
		{`{"origin": [1,1,1], "angle": 22.5, "axis": "x", "rescale": 3}`, `invalid element rotation property "rescale": 3`},
	}
	for _, c := range cases {
		var r Rotation
		requireParseError(t, json.Unmarshal([]byte(c.doc), &r), c.msg)
	}
}

func TestParseFaceErrors(t *testing.T) {
	cases := []struct {
		doc string
		msg string
	}{
		{`20`, "invalid face: 20"},
		{`[]`, "invalid face: []"},
		{`{}`, `face is missing property "texture"`},
		{`{"texture": "#"}`, `invalid face texture: "#"`},
		{`{"texture": ""}`, `invalid face texture: ""`},
		{`{"texture": "abc"}`, `invalid face texture: "abc"`},
		{`{"texture": "#stone", "uv": [1, 2, 3]}`, "invalid Vec4: [1,2,3]"},
		{`{"texture": "#stone", "uv": [0, 0, 17, 16]}`, "invalid face uv: [0,0,17,16]"},
		{`{"texture": "#stone", "cullface": "nyet"}`, `invalid face cullface: "nyet"`},
		{`{"texture": "#stone", "rotation": 91}`, "invalid face rotation: 91"},
		{`{"texture": "#stone", "tintindex": "abc"}`, `invalid face tintindex: "abc"`},
	}
	for _, c := range cases {
		var f Face
		requireParseError(t, json.Unmarshal([]byte(c.doc), &f), c.msg)
	}
}

func TestParseDisplayErrors(t *testing.T) {
	var d Display
	requireParseError(t, json.Unmarshal([]byte(`20`), &d), "invalid element display: 20")
	requireParseError(t, json.Unmarshal([]byte(`{"rotation": [1, 2]}`), &d), "invalid Vec3: [1,2]")
	requireParseError(t, json.Unmarshal([]byte(`{"translation": [1, 2]}`), &d), "invalid Vec3: [1,2]")
	requireParseError(t, json.Unmarshal([]byte(`{"scale": [1, 2]}`), &d), "invalid Vec3: [1,2]")

	require.NoError(t, json.Unmarshal([]byte(`{"rotation": [1,2,3], "translation": [4,5,6], "scale": [7,8,9]}`), &d))
	assert.Equal(t, Display{Rotation: Vec3{1, 2, 3}, Translation: Vec3{4, 5, 6}, Scale: Vec3{7, 8, 9}}, d)
}

func TestParseVectorErrors(t *testing.T) {
	for _, doc := range []string{`{}`, `"[1, 2, 3]"`, `[]`, `[1]`, `[1, 2]`, `[1, 2, 3, 4]`, `[1, 1, "1"]`, `[1, false, 1]`} {
		var v Vec3
		err := json.Unmarshal([]byte(doc), &v)
		var perr *ParseError
		require.ErrorAs(t, err, &perr, doc)
		assert.Equal(t, "Vec3", perr.Field)
	}

	var v Vec3
	require.NoError(t, json.Unmarshal([]byte(`[1, 2, 3]`), &v))
	assert.Equal(t, Vec3{1, 2, 3}, v)
}

func TestFaceTypeNames(t *testing.T) {
	for i := 0; i < FaceCount; i++ {
		ft, ok := ParseFaceType(FaceType(i).String())
		require.True(t, ok)
		assert.Equal(t, FaceType(i), ft)
	}
	_, ok := ParseFaceType("around")
	assert.False(t, ok)
}
