package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"mcmodel/pkg/blockmodel"
)

// RotationMatrix returns the matrix rotating by angle radians about a
// principal axis. Components off the fixed axis are multiplied by scale.
func RotationMatrix(angle, scale float32, axis blockmodel.Axis) mgl32.Mat3 {
	a := float32(math.Cos(float64(angle))) * scale
	b := float32(math.Sin(float64(angle))) * scale

	switch axis {
	case blockmodel.AxisX:
		return mgl32.Mat3FromRows(
			mgl32.Vec3{1, 0, 0},
			mgl32.Vec3{0, a, -b},
			mgl32.Vec3{0, b, a},
		)
	case blockmodel.AxisY:
		return mgl32.Mat3FromRows(
			mgl32.Vec3{a, 0, b},
			mgl32.Vec3{0, 1, 0},
			mgl32.Vec3{-b, 0, a},
		)
	default:
		return mgl32.Mat3FromRows(
			mgl32.Vec3{a, -b, 0},
			mgl32.Vec3{b, a, 0},
			mgl32.Vec3{0, 0, 1},
		)
	}
}

// RotateAboutPivot applies m to p relative to pivot.
func RotateAboutPivot(p, pivot mgl32.Vec3, m mgl32.Mat3) mgl32.Vec3 {
	return m.Mul3x1(p.Sub(pivot)).Add(pivot)
}

// RescaleFactor stretches a rotated element back across the full block.
// A zero angle uses 45 degrees, matching the model format.
func RescaleFactor(angle float32, rescale bool) float32 {
	if !rescale {
		return 1
	}
	a := float64(angle)
	if a == 0 {
		a = math.Pi / 4
	}
	c := math.Cos(a)
	return float32(math.Sqrt2 / math.Sqrt(c*c*2))
}

// rotateCorners rotates all corners of an element about its rotation
// origin. Corners are already in centered space so the origin is shifted too.
func rotateCorners(corners [8]mgl32.Vec3, r *blockmodel.Rotation) [8]mgl32.Vec3 {
	origin := mgl32.Vec3(r.Origin).Sub(mgl32.Vec3{8, 8, 8})
	angle := mgl32.DegToRad(r.Angle)
	m := RotationMatrix(angle, RescaleFactor(angle, r.Rescale), r.Axis)

	for i, c := range corners {
		corners[i] = RotateAboutPivot(c, origin, m)
	}
	return corners
}
