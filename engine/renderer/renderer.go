package renderer

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/Carmen-Shannon/oxy-controls/engine/logger"
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

type renderer struct {
	mu      *sync.Mutex
	backend rendererBackend
	logger  *zap.Logger

	width  int
	height int

	clearColor  wgpu.Color
	presentMode PresentMode

	gridHalfLines int
	gridSpacing   float32
}

// Renderer draws a reference ground grid seen through a Camera, giving first-person controls
// something to move against.
type Renderer interface {
	// Render refreshes cam's matrices and draws one frame from its point of view.
	//
	// Parameters:
	//   - cam: the camera whose uniform is uploaded for the frame
	//
	// Returns:
	//   - error: error if the surface texture cannot be acquired or the frame cannot be submitted
	Render(cam camera.Camera) error

	// Resize reconfigures the surface. Zero sizes (minimized windows) are ignored.
	//
	// Parameters:
	//   - width: new surface width in pixels
	//   - height: new surface height in pixels
	Resize(width, height int)

	// SetClearColor sets the background color.
	//
	// Parameters:
	//   - r, g, b, a: color components in [0, 1]
	SetClearColor(r, g, b, a float64)

	// Size returns the configured surface size.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	Size() (int, int)

	// Release frees the GPU resources.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer for the given surface.
// The grid defaults to 20 lines either side of each axis at 1 unit spacing.
//
// Parameters:
//   - backendType: the graphics API to render with
//   - surfaceDescriptor: the window surface to present to
//   - width: initial surface width in pixels
//   - height: initial surface height in pixels
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
//   - error: error if the backend cannot be created or the grid cannot be uploaded
func NewRenderer(backendType BackendType, surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	var backend rendererBackend
	switch backendType {
	case BackendTypeWGPU:
		b, err := newWGPURendererBackend(surfaceDescriptor)
		if err != nil {
			return nil, fmt.Errorf("failed to create wgpu backend: %w", err)
		}
		backend = b
	default:
		return nil, fmt.Errorf("unsupported backend type %d", backendType)
	}
	return newRenderer(backend, width, height, options...)
}

func newRenderer(backend rendererBackend, width, height int, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:            &sync.Mutex{},
		backend:       backend,
		logger:        logger.Provide(),
		width:         width,
		height:        height,
		clearColor:    wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		presentMode:   PresentModeVSync,
		gridHalfLines: 20,
		gridSpacing:   1,
	}
	for _, opt := range options {
		opt(r)
	}
	r.logger = r.logger.Named("renderer")

	r.backend.SetPresentMode(r.presentMode)
	if width > 0 && height > 0 {
		r.backend.ConfigureSurface(width, height)
	}

	verts := gridVertices(r.gridHalfLines, r.gridSpacing)
	if err := r.backend.UploadGeometry(marshalGrid(verts), uint32(len(verts))); err != nil {
		r.backend.Release()
		return nil, fmt.Errorf("failed to upload grid: %w", err)
	}
	r.logger.Debug("renderer ready",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int("grid_vertices", len(verts)),
	)
	return r, nil
}

func (r *renderer) Render(cam camera.Camera) error {
	r.mu.Lock()
	clear := r.clearColor
	ready := r.width > 0 && r.height > 0
	r.mu.Unlock()

	if !ready {
		return nil
	}
	cam.Update()
	return r.backend.DrawFrame(cam.Uniform(), clear)
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if width == r.width && height == r.height {
		return
	}
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetClearColor(red, green, blue, alpha float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: alpha}
}

func (r *renderer) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

func (r *renderer) Release() {
	r.backend.Release()
}
