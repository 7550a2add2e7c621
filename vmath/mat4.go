package vmath

import (
	"errors"
	"math"
)

// ErrDegenerateLookAt is returned when a look-at orientation cannot be
// derived because the forward direction is zero or parallel to up.
var ErrDegenerateLookAt = errors.New("vmath: degenerate look-at (forward parallel to up or zero length)")

const degToRad = math.Pi / 180.0

// lookAtEpsilon bounds the squared magnitude below which a basis vector
// is considered collapsed
const lookAtEpsilon = 1e-12

/*	column first, OpenGL layout
	+-          -+
	| 0  4  8 12 |
	| 1  5  9 13 |
	| 2  6 10 14 |
	| 3  7 11 15 |
	+-          -+
*/
type Mat4 [16]float64

func M4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4Mul returns a × b
func M4Mul(a, b Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// M4Perspective builds a perspective projection.
// fovy is in degrees, matching the scene-facing API surface.
func M4Perspective(fovy, aspect, near, far float64) Mat4 {
	nmf := near - far
	f := 1.0 / math.Tan(fovy*degToRad/2.0)

	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near + far) / nmf, -1,
		0, 0, (2 * far * near) / nmf, 0,
	}
}

// M4LookAt builds a world transform positioned at eye and oriented
// toward target, with up as the reference axis. Unlike a silent
// re-basing fallback, degenerate input is an error: a corrupt
// orientation must never be produced.
func M4LookAt(eye, target, up Vec3F) (Mat4, error) {
	z := V3FSub(eye, target)
	if V3FMagSq(z) < lookAtEpsilon {
		return Mat4{}, ErrDegenerateLookAt
	}
	z = V3FNormalize(z)

	x := V3FCross(up, z)
	if V3FMagSq(x) < lookAtEpsilon {
		return Mat4{}, ErrDegenerateLookAt
	}
	x = V3FNormalize(x)

	y := V3FCross(z, x)

	return Mat4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		eye.X, eye.Y, eye.Z, 1,
	}, nil
}

// M4Translation builds a translation transform
func M4Translation(v Vec3F) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v.X, v.Y, v.Z, 1,
	}
}

// M4RotationX builds a rotation about the X axis, angle in radians
func M4RotationX(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// M4RotationY builds a rotation about the Y axis, angle in radians
func M4RotationY(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// M4RotationZ builds a rotation about the Z axis, angle in radians
func M4RotationZ(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4NearlyEqual compares two matrices element-wise within epsilon
func M4NearlyEqual(a, b Mat4, epsilon float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}
