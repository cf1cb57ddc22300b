// Package mesh ties compiled model geometry to one material slot per draw
// group and drives the animation of the textures bound to those slots.
package mesh

import (
	"fmt"
	"time"

	"mcmodel/pkg/animation"
	"mcmodel/pkg/blockmodel"
	"mcmodel/pkg/geometry"
)

// Material is one draw slot. Slot 0 is the missing-texture slot and has an
// empty Path; slots 1..N carry texture paths in sorted order.
type Material struct {
	Path    string
	Texture *animation.Texture
}

// Mesh is a compiled model ready to hand to a renderer.
type Mesh struct {
	Geometry  geometry.Attributes
	Materials []Material
	// AmbientOcclusion is the resolved ambient occlusion flag of the model.
	AmbientOcclusion bool

	animated animation.Set
}

// TextureResolver supplies the atlas state for a texture path.
type TextureResolver func(path string) (*animation.Texture, error)

// New resolves m against ancestors and compiles it.
func New(m *blockmodel.Model, ancestors map[string]*blockmodel.Model) *Mesh {
	return FromResolver(blockmodel.NewResolver(m, ancestors))
}

// FromResolver compiles an already resolved model.
func FromResolver(r *blockmodel.Resolver) *Mesh {
	attrs, paths := geometry.CompileResolved(r)

	materials := make([]Material, len(paths)+1)
	for i, p := range paths {
		materials[i+1].Path = p
	}
	return &Mesh{
		Geometry:         attrs,
		Materials:        materials,
		AmbientOcclusion: r.AmbientOcclusion(),
		animated:         animation.Set{Textures: make([]*animation.Texture, len(materials))},
	}
}

// BindTextures asks resolve for the texture of every textured slot. The
// first failure aborts binding and is returned with the path that caused it;
// slots bound before the failure keep their texture.
func (m *Mesh) BindTextures(resolve TextureResolver) error {
	for i := 1; i < len(m.Materials); i++ {
		tex, err := resolve(m.Materials[i].Path)
		if err != nil {
			return fmt.Errorf("texture %q: %w", m.Materials[i].Path, err)
		}
		m.Materials[i].Texture = tex
		m.animated.Textures[i] = tex
	}
	return nil
}

// BindMissing sets the texture shown for faces without a bound texture.
func (m *Mesh) BindMissing(tex *animation.Texture) {
	m.Materials[geometry.MissingMaterial].Texture = tex
	m.animated.Textures[geometry.MissingMaterial] = tex
}

// UpdateAnimation advances every bound texture by dt.
func (m *Mesh) UpdateAnimation(dt time.Duration) {
	m.animated.Advance(dt)
}

// SetAnimationFrame shows frame index (mod frame count) on every texture.
func (m *Mesh) SetAnimationFrame(index int) {
	m.animated.SetFrame(index)
}

// AnimationPeriod is the number of frames after which the whole mesh looks
// the same again.
func (m *Mesh) AnimationPeriod() int {
	return m.animated.Period()
}

func (m *Mesh) IsAnimated(policy animation.Policy) bool {
	return m.animated.Animated(policy)
}
