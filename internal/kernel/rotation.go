package kernel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Rotation is a rigid rotation about the origin.
type Rotation struct {
	m *r3.Mat
}

// NewRotation builds the rotation for the beam's three placement angles,
// given in degrees. The X rotation is applied first, then Y, then Z.
func NewRotation(angleX, angleY, angleZ float64) Rotation {
	rx := r3.NewRotation(deg2rad(angleX), r3.Vec{X: 1}).Mat()
	ry := r3.NewRotation(deg2rad(angleY), r3.Vec{Y: 1}).Mat()
	rz := r3.NewRotation(deg2rad(angleZ), r3.Vec{Z: 1}).Mat()

	var yx, zyx r3.Mat
	yx.Mul(ry, rx)
	zyx.Mul(rz, &yx)
	return Rotation{m: &zyx}
}

// Identity returns the rotation that leaves every point in place.
func Identity() Rotation {
	return Rotation{}
}

// IsIdentity reports whether r is the identity rotation.
func (r Rotation) IsIdentity() bool {
	if r.m == nil {
		return true
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(r.m.At(i, j)-want) > 1e-12 {
				return false
			}
		}
	}
	return true
}

// Apply rotates v.
func (r Rotation) Apply(v r3.Vec) r3.Vec {
	if r.m == nil {
		return v
	}
	return r.m.MulVec(v)
}

// Invert undoes Apply.
func (r Rotation) Invert(v r3.Vec) r3.Vec {
	if r.m == nil {
		return v
	}
	return r.m.MulVecTrans(v)
}

// At returns the matrix element at row i, column j.
func (r Rotation) At(i, j int) float64 {
	if r.m == nil {
		if i == j {
			return 1
		}
		return 0
	}
	return r.m.At(i, j)
}

func deg2rad(d float64) float64 {
	return d * math.Pi / 180
}
