package geometry

import "mcmodel/pkg/blockmodel"

// DefaultUV derives a face's texel rectangle (u1, v1, u2, v2) from the
// element's extents when the face has no explicit uv.
func DefaultUV(face blockmodel.FaceType, from, to blockmodel.Vec3) blockmodel.Vec4 {
	x1, y1, z1 := from[0], from[1], from[2]
	x2, y2, z2 := to[0], to[1], to[2]

	switch face {
	case blockmodel.West:
		return blockmodel.Vec4{z1, 16 - y2, z2, 16 - y1}
	case blockmodel.East:
		return blockmodel.Vec4{16 - z2, 16 - y2, 16 - z1, 16 - y1}
	case blockmodel.Down:
		return blockmodel.Vec4{x1, 16 - z2, x2, 16 - z1}
	case blockmodel.Up:
		return blockmodel.Vec4{x1, z1, x2, z2}
	case blockmodel.North:
		return blockmodel.Vec4{16 - x2, 16 - y2, 16 - x1, 16 - y1}
	default:
		return blockmodel.Vec4{x1, 16 - y2, x2, 16 - y1}
	}
}

// FaceUV returns the explicit uv of f or the derived default.
func FaceUV(face blockmodel.FaceType, f *blockmodel.Face, from, to blockmodel.Vec3) blockmodel.Vec4 {
	if f.UV != nil {
		return *f.UV
	}
	return DefaultUV(face, from, to)
}

// NormalizeUV maps texel coordinates to [0,1], flipping v so the texture
// origin is at the bottom left.
func NormalizeUV(uv blockmodel.Vec4) [4]float32 {
	return [4]float32{
		uv[0] / 16,
		(16 - uv[1]) / 16,
		uv[2] / 16,
		(16 - uv[3]) / 16,
	}
}
