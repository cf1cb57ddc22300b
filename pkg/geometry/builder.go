package geometry

import "sort"

// GroupAttributes accumulates the buffers of one material during a compile.
type GroupAttributes struct {
	Vertices []float32 // stride 3
	UVs      []float32 // stride 2
	Indices  []uint32  // stride 3, local to this group
}

func (g *GroupAttributes) VertexCount() int {
	return len(g.Vertices) / 3
}

// Group is a contiguous range of the final index buffer drawn with one material.
type Group struct {
	Start         int
	Count         int
	MaterialIndex int
}

// Attributes are the flattened buffers of a compiled model.
type Attributes struct {
	Vertices []float32
	UVs      []float32
	Indices  []uint32
	Groups   []Group
}

func (a Attributes) VertexCount() int {
	return len(a.Vertices) / 3
}

func (a Attributes) TriangleCount() int {
	return len(a.Indices) / 3
}

// MissingMaterial is the material index of faces whose texture variable is unbound.
const MissingMaterial = 0

// Builder groups faces by texture path. It belongs to a single compile and
// must not be shared.
type Builder struct {
	groups  map[string]*GroupAttributes // by texture path
	vars    map[string]*GroupAttributes // by "#variable"
	missing *GroupAttributes
	paths   []string // sorted; material index is position+1
}

// NewBuilder creates one group per distinct texture path in textures, which
// maps variable names (without '#') to paths.
func NewBuilder(textures map[string]string) *Builder {
	b := &Builder{
		groups:  make(map[string]*GroupAttributes),
		vars:    make(map[string]*GroupAttributes, len(textures)),
		missing: &GroupAttributes{},
	}

	for name, path := range textures {
		g, ok := b.groups[path]
		if !ok {
			g = &GroupAttributes{}
			b.groups[path] = g
			b.paths = append(b.paths, path)
		}
		b.vars["#"+name] = g
	}
	sort.Strings(b.paths)
	return b
}

// GroupFor returns the group for a face texture reference such as "#side",
// or the missing group when the variable is not bound.
func (b *Builder) GroupFor(ref string) *GroupAttributes {
	if g, ok := b.vars[ref]; ok {
		return g
	}
	return b.missing
}

// TexturePaths returns the texture paths in material order: the path at
// position i is drawn with material index i+1.
func (b *Builder) TexturePaths() []string {
	out := make([]string, len(b.paths))
	copy(out, b.paths)
	return out
}

// Attributes concatenates the missing group and then every texture group in
// path order, rebasing indices onto the combined vertex buffer.
func (b *Builder) Attributes() Attributes {
	ordered := make([]*GroupAttributes, 0, len(b.paths)+1)
	ordered = append(ordered, b.missing)
	for _, p := range b.paths {
		ordered = append(ordered, b.groups[p])
	}

	var nv, ni int
	for _, g := range ordered {
		nv += len(g.Vertices)
		ni += len(g.Indices)
	}

	attrs := Attributes{
		Vertices: make([]float32, 0, nv),
		UVs:      make([]float32, 0, nv/3*2),
		Indices:  make([]uint32, 0, ni),
		Groups:   make([]Group, 0, len(ordered)),
	}

	for i, g := range ordered {
		offset := uint32(attrs.VertexCount())
		attrs.Groups = append(attrs.Groups, Group{
			Start:         len(attrs.Indices),
			Count:         len(g.Indices),
			MaterialIndex: i,
		})
		attrs.Vertices = append(attrs.Vertices, g.Vertices...)
		attrs.UVs = append(attrs.UVs, g.UVs...)
		for _, idx := range g.Indices {
			attrs.Indices = append(attrs.Indices, idx+offset)
		}
	}
	return attrs
}
