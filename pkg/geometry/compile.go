package geometry

import "mcmodel/pkg/blockmodel"

// AddElement appends the faces of one element to the builder's groups.
func (b *Builder) AddElement(e *blockmodel.Element) {
	corners := CornerVertices(e.From, e.To)
	if e.Rotation != nil {
		corners = rotateCorners(corners, e.Rotation)
	}

	for ft, face := range e.Faces {
		if face == nil {
			continue
		}
		faceType := blockmodel.FaceType(ft)
		g := b.GroupFor(face.Texture)

		// Two triangles per quad, split along the 0-2 diagonal.
		i := uint32(g.VertexCount())
		g.Indices = append(g.Indices, i, i+2, i+1, i, i+3, i+2)

		for _, c := range RotateFaceIndices(FaceCorners(faceType), face.Rotation) {
			v := corners[c]
			g.Vertices = append(g.Vertices, v[0], v[1], v[2])
		}

		uv := NormalizeUV(FaceUV(faceType, face, e.From, e.To))
		u1, v1, u2, v2 := uv[0], uv[1], uv[2], uv[3]
		g.UVs = append(g.UVs,
			u1, v2,
			u1, v1,
			u2, v1,
			u2, v2,
		)
	}
}

// Compile builds the buffers for a list of elements. textures maps variable
// names to texture paths.
func Compile(elements []blockmodel.Element, textures map[string]string) Attributes {
	b := NewBuilder(textures)
	for i := range elements {
		b.AddElement(&elements[i])
	}
	return b.Attributes()
}

// CompileModel resolves m against its ancestors and compiles the result.
// It also returns the texture paths in material order (material i+1).
func CompileModel(m *blockmodel.Model, ancestors map[string]*blockmodel.Model) (Attributes, []string) {
	return CompileResolved(blockmodel.NewResolver(m, ancestors))
}

// CompileResolved compiles an already resolved model.
func CompileResolved(r *blockmodel.Resolver) (Attributes, []string) {
	b := NewBuilder(r.TexturePaths())
	elements := r.Elements()
	for i := range elements {
		b.AddElement(&elements[i])
	}
	return b.Attributes(), b.TexturePaths()
}
