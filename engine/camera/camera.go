package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-controls/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	mu *sync.Mutex

	position   mgl32.Vec3
	quaternion mgl32.Quat
	up         mgl32.Vec3

	fov    float32
	aspect float32
	near   float32
	far    float32

	matrixWorld          mgl32.Mat4
	viewMatrix           mgl32.Mat4
	projectionMatrix     mgl32.Mat4
	viewProjectionMatrix mgl32.Mat4
}

// Camera defines the interface for a perspective camera transform.
// The camera owns its position and orientation; controls mutate them through the setters and
// the camera derives world, view and projection matrices from them.
type Camera interface {
	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition sets the camera's world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// Translate adds an offset to the camera's position.
	//
	// Parameters:
	//   - offset: world-space displacement
	Translate(offset mgl32.Vec3)

	// Quaternion returns the camera's orientation.
	//
	// Returns:
	//   - mgl32.Quat: unit orientation quaternion
	Quaternion() mgl32.Quat

	// SetQuaternion sets the camera's orientation. The quaternion is normalized.
	//
	// Parameters:
	//   - q: the new orientation
	SetQuaternion(q mgl32.Quat)

	// Rotation returns the orientation as Y-X-Z Euler angles.
	//
	// Returns:
	//   - common.Euler: pitch, yaw, roll in radians
	Rotation() common.Euler

	// SetRotation sets the orientation from Y-X-Z Euler angles.
	//
	// Parameters:
	//   - e: pitch, yaw, roll in radians
	SetRotation(e common.Euler)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: up vector
	Up() mgl32.Vec3

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// MatrixWorld returns the local-to-world transform (translation * rotation).
	//
	// Returns:
	//   - mgl32.Mat4: column-major world matrix
	MatrixWorld() mgl32.Mat4

	// ViewMatrix returns the world-to-camera transform as of the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: column-major view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the perspective projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: column-major projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns projection * view as of the last Update.
	//
	// Returns:
	//   - mgl32.Mat4: column-major view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// Uniform returns the GPU uniform payload for the camera as of the last Update.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform buffer contents
	Uniform() GPUCameraUniform

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// SetFov sets the vertical field of view in radians and recomputes the projection.
	SetFov(fov float32)

	// SetAspect sets the aspect ratio and recomputes the projection.
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes the projection.
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes the projection.
	SetFar(far float32)

	// Update recomputes the view and view-projection matrices from the current transform.
	// Should be called once per frame before the camera is uploaded.
	Update()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera at the origin looking down -Z with default perspective settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:         &sync.Mutex{},
		quaternion: mgl32.QuatIdent(),
		up:         mgl32.Vec3{0, 1, 0},
		fov:        45.0 * (math.Pi / 180.0), // radians
		aspect:     1.0,
		near:       0.1,
		far:        1000.0,
	}
	for _, option := range options {
		option(c)
	}
	c.updateProjection()
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
}

func (c *cameraImpl) Translate(offset mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.position.Add(offset)
}

func (c *cameraImpl) Quaternion() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quaternion
}

func (c *cameraImpl) SetQuaternion(q mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = q.Normalize()
}

func (c *cameraImpl) Rotation() common.Euler {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.EulerFromQuat(c.quaternion)
}

func (c *cameraImpl) SetRotation(e common.Euler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quaternion = e.Quat()
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) MatrixWorld() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.composeWorld()
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		CameraPosition: c.matrixWorld.Col(3).Vec3(),
	}
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateProjection()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateProjection()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateProjection()
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

// composeWorld builds translation * rotation from the current transform.
// Caller must hold the mutex.
func (c *cameraImpl) composeWorld() mgl32.Mat4 {
	return mgl32.Translate3D(c.position[0], c.position[1], c.position[2]).Mul4(c.quaternion.Mat4())
}

// updateProjection recalculates the projection matrix. Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// updateMatrices recalculates the world, view and view-projection matrices.
// The view matrix is the inverse of the rigid world transform. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	c.matrixWorld = c.composeWorld()
	c.viewMatrix = c.quaternion.Conjugate().Mat4().Mul4(
		mgl32.Translate3D(-c.position[0], -c.position[1], -c.position[2]),
	)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
