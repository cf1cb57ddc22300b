package blockmodel

import "strings"

// maxTextureIndirections bounds "#var" chains such as {"side": "#all"}.
const maxTextureIndirections = 10

// Resolver is the inherited view of a model: the model plus its chain of
// ancestors taken from an explicit lookup table. It is read-only once built.
type Resolver struct {
	// chain[0] is the model itself, chain[len-1] the most distant ancestor found.
	chain    []*Model
	textures map[string]string
}

// NewResolver walks m's parent references through ancestors. A parent that
// is not in the table, or that would revisit a model already in the chain,
// ends the chain without error.
func NewResolver(m *Model, ancestors map[string]*Model) *Resolver {
	r := &Resolver{chain: []*Model{m}}
	seen := map[*Model]bool{m: true}

	for cur := m; cur.Parent != ""; {
		parent, ok := ancestors[cur.Parent]
		if !ok || parent == nil || seen[parent] {
			break
		}
		seen[parent] = true
		r.chain = append(r.chain, parent)
		cur = parent
	}

	r.textures = make(map[string]string)
	for i := len(r.chain) - 1; i >= 0; i-- {
		for k, v := range r.chain[i].Textures {
			r.textures[k] = v
		}
	}
	return r
}

// Chain returns the model followed by its resolved ancestors, nearest first.
func (r *Resolver) Chain() []*Model {
	return r.chain
}

// Elements returns the elements of the first model in the chain that
// declares any, or nil.
func (r *Resolver) Elements() []Element {
	for _, m := range r.chain {
		if len(m.Elements) > 0 {
			return m.Elements
		}
	}
	return nil
}

// Textures returns the merged texture variable bindings; the most derived
// model wins on conflicts. The returned map must not be modified.
func (r *Resolver) Textures() map[string]string {
	return r.textures
}

// Display merges display transforms the same way textures are merged.
func (r *Resolver) Display() map[DisplayPosition]Display {
	var out map[DisplayPosition]Display
	for i := len(r.chain) - 1; i >= 0; i-- {
		for k, v := range r.chain[i].Display {
			if out == nil {
				out = make(map[DisplayPosition]Display)
			}
			out[k] = v
		}
	}
	return out
}

// AmbientOcclusion returns the nearest explicit ambient occlusion flag, true
// when no model in the chain sets one.
func (r *Resolver) AmbientOcclusion() bool {
	for _, m := range r.chain {
		if m.AmbientOcclusion != nil {
			return *m.AmbientOcclusion
		}
	}
	return true
}

// ResolveTexture follows "#var" references through the merged bindings and
// returns the first value that is not a reference. An unbound reference is
// returned as the last reference reached.
func (r *Resolver) ResolveTexture(ref string) string {
	for i := 0; i < maxTextureIndirections && strings.HasPrefix(ref, "#"); i++ {
		resolved, ok := r.textures[strings.TrimPrefix(ref, "#")]
		if !ok {
			break
		}
		ref = resolved
	}
	return ref
}

// TexturePaths returns the merged bindings with indirections collapsed.
// Variables that never reach a concrete path are left out, so faces that
// use them compile into the missing-texture group.
func (r *Resolver) TexturePaths() map[string]string {
	out := make(map[string]string, len(r.textures))
	for k := range r.textures {
		if path := r.ResolveTexture("#" + k); !strings.HasPrefix(path, "#") {
			out[k] = path
		}
	}
	return out
}

// Resolve returns a standalone model carrying the inherited elements,
// textures, display transforms and ambient occlusion flag.
func (r *Resolver) Resolve() *Model {
	ao := r.AmbientOcclusion()
	textures := make(map[string]string, len(r.textures))
	for k, v := range r.textures {
		textures[k] = v
	}
	return &Model{
		AmbientOcclusion: &ao,
		Textures:         textures,
		Elements:         r.Elements(),
		Display:          r.Display(),
	}
}
