package renderer

import (
	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the display refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately without waiting for vertical blank.
	PresentModeUncapped
)

// BackendType selects the graphics API a Renderer draws with.
type BackendType int

const (
	// BackendTypeWGPU renders through WebGPU (wgpu-native).
	BackendTypeWGPU BackendType = iota
)

// rendererBackend is the graphics API specific half of a Renderer.
type rendererBackend interface {
	// ConfigureSurface (re)creates the swapchain and depth target for the given size.
	ConfigureSurface(width, height int)

	// SetPresentMode applies mode at the next ConfigureSurface.
	SetPresentMode(mode PresentMode)

	// UploadGeometry replaces the line list vertex data.
	UploadGeometry(vertexData []byte, vertexCount uint32) error

	// DrawFrame writes the camera uniform, clears to clearColor and draws the geometry.
	DrawFrame(uniform camera.GPUCameraUniform, clearColor wgpu.Color) error

	// Release frees every GPU object.
	Release()
}
