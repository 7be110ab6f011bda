package constraint

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// seedParallelThreshold rejects a basis seed once the normal is nearly
// parallel to it; the cross product below would lose precision first.
const seedParallelThreshold = 1e-4

// PlaneFromNormal builds the orthonormal contact frame for a contact
// normal: column 0 is the normalized normal, columns 1 and 2 span the
// tangent plane, and the triplet is right-handed.
//
// The input is normalized here; a near-zero normal falls back to the world
// X axis so the frame stays finite, but such contacts are meaningless and
// callers are expected to filter them out before construction.
func PlaneFromNormal(normal mgl64.Vec3) mgl64.Mat3 {
	x := normal
	if l := x.Len(); l < 1e-12 {
		x = mgl64.Vec3{1, 0, 0}
	} else {
		x = x.Mul(1 / l)
	}

	seed := mgl64.Vec3{0, 1, 0}
	if math.Abs(x.Dot(seed)) > 1-seedParallelThreshold {
		seed = mgl64.Vec3{0, 0, 1}
	}

	z := x.Cross(seed).Normalize()
	y := z.Cross(x)

	return mgl64.Mat3FromCols(x, y, z)
}
