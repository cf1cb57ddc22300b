package main

import (
	"encoding/json"
	"fmt"
	"io"

	"mcmodel/pkg/animation"
	"mcmodel/pkg/mesh"
)

type groupReport struct {
	Material int    `json:"material"`
	Texture  string `json:"texture,omitempty"`
	Start    int    `json:"start"`
	Count    int    `json:"count"`
	Frames   int    `json:"frames,omitempty"`
}

type report struct {
	Model            string        `json:"model"`
	Vertices         int           `json:"vertices"`
	Triangles        int           `json:"triangles"`
	AmbientOcclusion bool          `json:"ambientOcclusion"`
	Animated         bool          `json:"animated"`
	Period           int           `json:"period"`
	Groups           []groupReport `json:"groups"`

	Positions []float32 `json:"positions,omitempty"`
	UVs       []float32 `json:"uvs,omitempty"`
	Indices   []uint32  `json:"indices,omitempty"`
}

func newReport(name string, m *mesh.Mesh, policy animation.Policy, buffers bool) report {
	r := report{
		Model:            name,
		Vertices:         m.Geometry.VertexCount(),
		Triangles:        m.Geometry.TriangleCount(),
		AmbientOcclusion: m.AmbientOcclusion,
		Animated:         m.IsAnimated(policy),
		Period:           m.AnimationPeriod(),
		Groups:           make([]groupReport, 0, len(m.Geometry.Groups)),
	}
	for _, g := range m.Geometry.Groups {
		mat := m.Materials[g.MaterialIndex]
		gr := groupReport{
			Material: g.MaterialIndex,
			Texture:  mat.Path,
			Start:    g.Start,
			Count:    g.Count,
		}
		if mat.Texture != nil {
			gr.Frames = mat.Texture.NumFrames()
		}
		r.Groups = append(r.Groups, gr)
	}
	if buffers {
		r.Positions = m.Geometry.Vertices
		r.UVs = m.Geometry.UVs
		r.Indices = m.Geometry.Indices
	}
	return r
}

func (r report) writeSummary(w io.Writer) {
	fmt.Fprintf(w, "%s: %d vertices, %d triangles", r.Model, r.Vertices, r.Triangles)
	if r.Animated {
		fmt.Fprintf(w, ", animated (period %d)", r.Period)
	}
	fmt.Fprintln(w)
	for _, g := range r.Groups {
		texture := g.Texture
		if texture == "" {
			texture = "(missing)"
		}
		fmt.Fprintf(w, "  [%d] %-32s %6d indices", g.Material, texture, g.Count)
		if g.Frames > 1 {
			fmt.Fprintf(w, "  %d frames", g.Frames)
		}
		fmt.Fprintln(w)
	}
}

func writeJSON(w io.Writer, reports []report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}
