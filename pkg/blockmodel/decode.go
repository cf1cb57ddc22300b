package blockmodel

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// ParseError reports a model JSON value that violates the model format.
type ParseError struct {
	// Field names the offending property or value kind, e.g. "face rotation".
	Field string
	// Value is the raw JSON of the offending value, empty for missing properties.
	Value string
	msg   string
}

func (e *ParseError) Error() string {
	return e.msg
}

func invalidValue(field string, raw []byte) *ParseError {
	v := compact(raw)
	return &ParseError{Field: field, Value: v, msg: fmt.Sprintf("invalid %s: %s", field, v)}
}

func missingProperty(owner, prop string) *ParseError {
	return &ParseError{Field: prop, msg: fmt.Sprintf("%s is missing property %q", owner, prop)}
}

func compact(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Parse decodes and validates a model JSON document.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// decodeObject splits a JSON object into its properties. null and
// non-objects are rejected as invalid kind.
func decodeObject(raw []byte, kind string) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, invalidValue(kind, raw)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil, invalidValue(kind, raw)
	}
	return obj, nil
}

// optional returns the raw property value, treating explicit null as absent.
func optional(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

func (v *Vec3) UnmarshalJSON(data []byte) error {
	var xs []float32
	if err := json.Unmarshal(data, &xs); err != nil || len(xs) != 3 {
		return invalidValue("Vec3", data)
	}
	copy(v[:], xs)
	return nil
}

func (v *Vec4) UnmarshalJSON(data []byte) error {
	var xs []float32
	if err := json.Unmarshal(data, &xs); err != nil || len(xs) != 4 {
		return invalidValue("Vec4", data)
	}
	copy(v[:], xs)
	return nil
}

func (v Vec3) within(lo, hi float32) bool {
	for _, c := range v {
		if c < lo || c > hi {
			return false
		}
	}
	return true
}

func (v Vec4) within(lo, hi float32) bool {
	for _, c := range v {
		if c < lo || c > hi {
			return false
		}
	}
	return true
}

func (m *Model) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "model")
	if err != nil {
		return err
	}
	*m = Model{}

	if raw, ok := optional(obj, "parent"); ok {
		if err := json.Unmarshal(raw, &m.Parent); err != nil {
			return invalidValue(`property "parent"`, raw)
		}
	}

	if raw, ok := optional(obj, "ambientocclusion"); ok {
		var ao bool
		if err := json.Unmarshal(raw, &ao); err != nil {
			return invalidValue(`property "ambientocclusion"`, raw)
		}
		m.AmbientOcclusion = &ao
	}

	if raw, ok := optional(obj, "textures"); ok {
		if err := json.Unmarshal(raw, &m.Textures); err != nil {
			return invalidValue(`property "textures"`, raw)
		}
	}

	if raw, ok := optional(obj, "elements"); ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return invalidValue(`property "elements"`, raw)
		}
		m.Elements = make([]Element, len(items))
		for i, item := range items {
			if err := m.Elements[i].UnmarshalJSON(item); err != nil {
				return err
			}
		}
	}

	if raw, ok := optional(obj, "display"); ok {
		positions, err := decodeObject(raw, `property "display"`)
		if err != nil {
			return err
		}
		m.Display = make(map[DisplayPosition]Display, len(positions))
		for name, item := range positions {
			pos := DisplayPosition(name)
			if !pos.Valid() {
				return &ParseError{
					Field: "display",
					Value: fmt.Sprintf("%q", name),
					msg:   fmt.Sprintf("unknown display type: %q", name),
				}
			}
			var d Display
			if err := d.UnmarshalJSON(item); err != nil {
				return err
			}
			m.Display[pos] = d
		}
	}

	return nil
}

func (e *Element) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "element")
	if err != nil {
		return err
	}
	*e = Element{}

	for _, prop := range []string{"from", "to", "faces"} {
		if _, ok := optional(obj, prop); !ok {
			return missingProperty("element", prop)
		}
	}

	if err := e.From.UnmarshalJSON(obj["from"]); err != nil {
		return err
	}
	if !e.From.within(-16, 32) {
		return invalidValue(`element property "from"`, obj["from"])
	}
	if err := e.To.UnmarshalJSON(obj["to"]); err != nil {
		return err
	}
	if !e.To.within(-16, 32) {
		return invalidValue(`element property "to"`, obj["to"])
	}

	if raw, ok := optional(obj, "rotation"); ok {
		var r Rotation
		if err := r.UnmarshalJSON(raw); err != nil {
			return err
		}
		e.Rotation = &r
	}

	faces, err := decodeObject(obj["faces"], `property "faces"`)
	if err != nil {
		return err
	}
	for name, raw := range faces {
		ft, ok := ParseFaceType(name)
		if !ok {
			return &ParseError{
				Field: "faces",
				Value: fmt.Sprintf("%q", name),
				msg:   fmt.Sprintf("element has face with invalid name: %q", name),
			}
		}
		var f Face
		if err := f.UnmarshalJSON(raw); err != nil {
			return err
		}
		e.Faces[ft] = &f
	}

	if raw, ok := optional(obj, "shade"); ok {
		var shade bool
		if err := json.Unmarshal(raw, &shade); err != nil {
			return invalidValue(`property "shade"`, raw)
		}
		e.Shade = &shade
	}

	return nil
}

func (r *Rotation) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "element rotation")
	if err != nil {
		return err
	}
	*r = Rotation{}

	for _, prop := range []string{"origin", "axis", "angle"} {
		if _, ok := optional(obj, prop); !ok {
			return missingProperty("element rotation", prop)
		}
	}

	if err := r.Origin.UnmarshalJSON(obj["origin"]); err != nil {
		return err
	}

	var angle float64
	if err := json.Unmarshal(obj["angle"], &angle); err != nil {
		return invalidValue("element rotation angle", obj["angle"])
	}
	valid := false
	for _, a := range validRotationAngles {
		if math.Abs(angle-float64(a)) < 1e-6 {
			r.Angle = a
			valid = true
			break
		}
	}
	if !valid {
		return invalidValue("element rotation angle", obj["angle"])
	}

	var axis string
	if err := json.Unmarshal(obj["axis"], &axis); err != nil {
		return invalidValue("element rotation axis", obj["axis"])
	}
	if r.Axis, valid = ParseAxis(axis); !valid {
		return invalidValue("element rotation axis", obj["axis"])
	}

	if raw, ok := optional(obj, "rescale"); ok {
		if err := json.Unmarshal(raw, &r.Rescale); err != nil {
			return invalidValue(`element rotation property "rescale"`, raw)
		}
	}

	return nil
}

func (f *Face) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "face")
	if err != nil {
		return err
	}
	*f = Face{}

	raw, ok := optional(obj, "texture")
	if !ok {
		return missingProperty("face", "texture")
	}
	if err := json.Unmarshal(raw, &f.Texture); err != nil || len(f.Texture) < 2 || f.Texture[0] != '#' {
		return invalidValue("face texture", raw)
	}

	if raw, ok := optional(obj, "uv"); ok {
		var uv Vec4
		if err := uv.UnmarshalJSON(raw); err != nil {
			return err
		}
		if !uv.within(0, 16) {
			return invalidValue("face uv", raw)
		}
		f.UV = &uv
	}

	if raw, ok := optional(obj, "cullface"); ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			return invalidValue("face cullface", raw)
		}
		ft, valid := ParseFaceType(name)
		if !valid {
			return invalidValue("face cullface", raw)
		}
		f.CullFace = &ft
	}

	if raw, ok := optional(obj, "rotation"); ok {
		var rot int
		if err := json.Unmarshal(raw, &rot); err != nil || !TextureRotation(rot).Valid() {
			return invalidValue("face rotation", raw)
		}
		f.Rotation = TextureRotation(rot)
	}

	if raw, ok := optional(obj, "tintindex"); ok {
		var tint int
		if err := json.Unmarshal(raw, &tint); err != nil {
			return invalidValue("face tintindex", raw)
		}
		f.TintIndex = &tint
	}

	return nil
}

func (d *Display) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "element display")
	if err != nil {
		return err
	}
	*d = Display{Scale: Vec3{1, 1, 1}}

	fields := []struct {
		key string
		dst *Vec3
	}{
		{"rotation", &d.Rotation},
		{"translation", &d.Translation},
		{"scale", &d.Scale},
	}
	for _, fld := range fields {
		if raw, ok := optional(obj, fld.key); ok {
			if err := fld.dst.UnmarshalJSON(raw); err != nil {
				return err
			}
		}
	}
	return nil
}
