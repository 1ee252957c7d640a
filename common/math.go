package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// gimbalThreshold is the |m23| value above which the Y-X-Z decomposition is treated as gimbal locked.
const gimbalThreshold = 0.9999999

// Euler holds a rotation as three angles in radians, applied in Y-X-Z order
// (yaw about Y, then pitch about X, then roll about Z).
type Euler struct {
	// X is the pitch angle, rotation about the local X axis.
	X float32
	// Y is the yaw angle, rotation about the world Y axis.
	Y float32
	// Z is the roll angle, rotation about the local Z axis.
	Z float32
}

// EulerFromQuat decomposes a unit quaternion into Y-X-Z Euler angles.
//
// Parameters:
//   - q: the rotation to decompose (expected to be normalized)
//
// Returns:
//   - Euler: pitch, yaw and roll in radians
func EulerFromQuat(q mgl32.Quat) Euler {
	return EulerFromMatrix(q.Mat4())
}

// EulerFromMatrix decomposes the upper 3x3 of a pure rotation matrix into Y-X-Z Euler angles.
// When the pitch reaches ±π/2 the yaw absorbs the remaining rotation and roll is reported as 0.
//
// Parameters:
//   - m: a column-major rotation matrix (no scale)
//
// Returns:
//   - Euler: pitch, yaw and roll in radians
func EulerFromMatrix(m mgl32.Mat4) Euler {
	m11, m13 := m.At(0, 0), m.At(0, 2)
	m21, m22, m23 := m.At(1, 0), m.At(1, 1), m.At(1, 2)
	m31, m33 := m.At(2, 0), m.At(2, 2)

	var e Euler
	e.X = float32(math.Asin(float64(-Clamp(m23, -1, 1))))
	if math.Abs(float64(m23)) < gimbalThreshold {
		e.Y = float32(math.Atan2(float64(m13), float64(m33)))
		e.Z = float32(math.Atan2(float64(m21), float64(m22)))
	} else {
		e.Y = float32(math.Atan2(float64(-m31), float64(m11)))
		e.Z = 0
	}
	return e
}

// Quat recomposes the Euler angles into a unit quaternion equal to Ry(Y) * Rx(X) * Rz(Z).
//
// Returns:
//   - mgl32.Quat: the composed rotation
func (e Euler) Quat() mgl32.Quat {
	yaw := mgl32.QuatRotate(e.Y, mgl32.Vec3{0, 1, 0})
	pitch := mgl32.QuatRotate(e.X, mgl32.Vec3{1, 0, 0})
	roll := mgl32.QuatRotate(e.Z, mgl32.Vec3{0, 0, 1})
	return yaw.Mul(pitch).Mul(roll).Normalize()
}

// Clamp limits v to the closed interval [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T ~float32 | ~float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Perspective creates a perspective projection matrix.
// Uses the WebGPU clip space depth convention [0, 1], unlike mgl32.Perspective which targets [-1, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}
