package geometry

import (
	"github.com/go-gl/mathgl/mgl32"

	"mcmodel/pkg/blockmodel"
)

// faceCorners lists, per face, the four corner indices of the quad.
var faceCorners = [blockmodel.FaceCount][4]int{
	blockmodel.West:  {0, 1, 2, 3},
	blockmodel.East:  {4, 5, 6, 7},
	blockmodel.Down:  {0, 3, 4, 7},
	blockmodel.Up:    {2, 1, 6, 5},
	blockmodel.North: {7, 6, 1, 0},
	blockmodel.South: {3, 2, 5, 4},
}

// CornerVertices returns the eight corners of the box from..to, moved so the
// center of the 16x16x16 block is the origin.
//
//	0 (x1,y1,z1)  1 (x1,y2,z1)  2 (x1,y2,z2)  3 (x1,y1,z2)
//	4 (x2,y1,z2)  5 (x2,y2,z2)  6 (x2,y2,z1)  7 (x2,y1,z1)
func CornerVertices(from, to blockmodel.Vec3) [8]mgl32.Vec3 {
	x1, y1, z1 := from[0]-8, from[1]-8, from[2]-8
	x2, y2, z2 := to[0]-8, to[1]-8, to[2]-8

	return [8]mgl32.Vec3{
		{x1, y1, z1},
		{x1, y2, z1},
		{x1, y2, z2},
		{x1, y1, z2},
		{x2, y1, z2},
		{x2, y2, z2},
		{x2, y2, z1},
		{x2, y1, z1},
	}
}

// FaceCorners returns the corner indices forming the given face.
func FaceCorners(face blockmodel.FaceType) [4]int {
	return faceCorners[face]
}

// RotateFaceIndices shifts the corner order so the texture appears rotated
// by rot degrees on the face. The geometry itself does not move.
func RotateFaceIndices(idx [4]int, rot blockmodel.TextureRotation) [4]int {
	a, b, c, d := idx[0], idx[1], idx[2], idx[3]
	switch rot {
	case 90:
		return [4]int{b, c, d, a}
	case 180:
		return [4]int{c, d, a, b}
	case 270:
		return [4]int{d, a, b, c}
	default:
		return idx
	}
}
