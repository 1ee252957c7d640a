package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-controls/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-5

func assertVecNear(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], epsilon, "component %d of %v vs %v", i, expected, actual)
	}
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera()

	assert.Equal(t, mgl32.Vec3{}, cam.Position())
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up())
	assert.Equal(t, mgl32.QuatIdent(), cam.Quaternion())
	assert.InDelta(t, math.Pi/4, cam.Fov(), epsilon)
	assert.Equal(t, float32(1), cam.Aspect())
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(1000), cam.Far())
	assert.Equal(t, mgl32.Ident4(), cam.ViewMatrix())
}

func TestCameraOptions(t *testing.T) {
	cam := NewCamera(
		WithPosition(1, 2, 3),
		WithRotation(common.Euler{Y: math.Pi / 2}),
		WithUp(0, 0, 1),
		WithFov(1),
		WithAspect(2),
		WithNear(0.5),
		WithFar(50),
	)

	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, cam.Up())
	assert.InDelta(t, math.Pi/2, cam.Rotation().Y, epsilon)
	assert.Equal(t, float32(1), cam.Fov())
	assert.Equal(t, float32(2), cam.Aspect())
	assert.Equal(t, float32(0.5), cam.Near())
	assert.Equal(t, float32(50), cam.Far())
}

func TestCameraMatrixWorld(t *testing.T) {
	cam := NewCamera(WithPosition(5, 0, -2))
	cam.SetRotation(common.Euler{Y: math.Pi / 2})

	m := cam.MatrixWorld()

	// yaw of +90° turns the local right axis (+X) to -Z
	assertVecNear(t, mgl32.Vec3{0, 0, -1}, m.Col(0).Vec3())
	assertVecNear(t, mgl32.Vec3{5, 0, -2}, m.Col(3).Vec3())
}

func TestCameraViewIsInverseOfWorld(t *testing.T) {
	cam := NewCamera(WithPosition(3, 4, 5), WithRotation(common.Euler{X: 0.3, Y: -1.1}))
	cam.Update()

	// float32 inversion error across a 4x4 product exceeds epsilon
	product := cam.ViewMatrix().Mul4(cam.MatrixWorld())
	ident := mgl32.Ident4()
	for i := range product {
		assert.InDelta(t, ident[i], product[i], 1e-4, "view * world element %d", i)
	}
}

func TestCameraTranslate(t *testing.T) {
	cam := NewCamera(WithPosition(1, 1, 1))
	cam.Translate(mgl32.Vec3{1, -2, 3})
	assert.Equal(t, mgl32.Vec3{2, -1, 4}, cam.Position())
}

func TestCameraSetQuaternionNormalizes(t *testing.T) {
	cam := NewCamera()
	cam.SetQuaternion(mgl32.Quat{W: 2})
	assert.InDelta(t, 1, cam.Quaternion().Len(), epsilon)
}

func TestCameraProjectionUpdates(t *testing.T) {
	cam := NewCamera()
	before := cam.ProjectionMatrix()

	cam.SetAspect(2)
	after := cam.ProjectionMatrix()

	assert.NotEqual(t, before, after)
	assert.InDelta(t, before[0]/2, after[0], epsilon)
	assert.Equal(t, float32(-1), after[11])
}

func TestCameraUniform(t *testing.T) {
	cam := NewCamera(WithPosition(1, 2, 3))
	cam.Update()

	u := cam.Uniform()
	assert.Equal(t, [3]float32{1, 2, 3}, u.CameraPosition)
	assert.Equal(t, [16]float32(cam.ViewProjectionMatrix()), u.ViewProj)

	buf := u.Marshal()
	require.Len(t, buf, 80)
	assert.Equal(t, 80, u.Size())
	assert.Equal(t, float32(2), math.Float32frombits(binary.LittleEndian.Uint32(buf[68:])))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[76:]))
	assert.Contains(t, GPUCameraUniformSource, "CameraUniform")
}
