package renderer

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	configured  [][2]int
	presentMode PresentMode
	vertexData  []byte
	vertexCount uint32
	uploadErr   error
	frames      []camera.GPUCameraUniform
	clears      []wgpu.Color
	released    bool
}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configured = append(f.configured, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(mode PresentMode) { f.presentMode = mode }

func (f *fakeBackend) UploadGeometry(vertexData []byte, vertexCount uint32) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	f.vertexData = vertexData
	f.vertexCount = vertexCount
	return nil
}

func (f *fakeBackend) DrawFrame(uniform camera.GPUCameraUniform, clearColor wgpu.Color) error {
	f.frames = append(f.frames, uniform)
	f.clears = append(f.clears, clearColor)
	return nil
}

func (f *fakeBackend) Release() { f.released = true }

func TestGridVertices(t *testing.T) {
	verts := gridVertices(2, 0.5)
	require.Len(t, verts, 5*4)

	for _, v := range verts {
		assert.Equal(t, float32(0), v.Position[1], "grid lies on the ground plane")
		assert.LessOrEqual(t, float32(math.Abs(float64(v.Position[0]))), float32(1))
		assert.LessOrEqual(t, float32(math.Abs(float64(v.Position[2]))), float32(1))
	}

	// the middle line pair are the axes
	mid := 2 * 4
	assert.Equal(t, gridAxisX, verts[mid].Color)
	assert.Equal(t, [3]float32{-1, 0, 0}, verts[mid].Position)
	assert.Equal(t, gridAxisZ, verts[mid+2].Color)
	assert.Equal(t, [3]float32{0, 0, 1}, verts[mid+3].Position)

	assert.Nil(t, gridVertices(0, 1))
	assert.Nil(t, gridVertices(3, 0))
}

func TestMarshalGrid(t *testing.T) {
	verts := []gridVertex{{Position: [3]float32{1, 2, 3}, Color: [3]float32{0.5, 0.25, 1}}}
	buf := marshalGrid(verts)
	require.Len(t, buf, gridVertexStride)

	read := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	assert.Equal(t, float32(1), read(0))
	assert.Equal(t, float32(3), read(8))
	assert.Equal(t, float32(0.5), read(12))
	assert.Equal(t, float32(1), read(20))
}

func TestNewRendererUploadsGrid(t *testing.T) {
	fb := &fakeBackend{}
	r, err := newRenderer(fb, 640, 480, WithGrid(3, 2), WithPresentMode(PresentModeUncapped))
	require.NoError(t, err)

	assert.Equal(t, PresentModeUncapped, fb.presentMode)
	assert.Equal(t, [][2]int{{640, 480}}, fb.configured)
	assert.Equal(t, uint32(7*4), fb.vertexCount)
	assert.Len(t, fb.vertexData, 7*4*gridVertexStride)

	w, h := r.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestNewRendererUploadFailureReleases(t *testing.T) {
	fb := &fakeBackend{uploadErr: errors.New("out of memory")}
	_, err := newRenderer(fb, 640, 480)
	assert.ErrorContains(t, err, "out of memory")
	assert.True(t, fb.released)
}

func TestRenderUsesCameraUniformAndClearColor(t *testing.T) {
	fb := &fakeBackend{}
	r, err := newRenderer(fb, 640, 480, WithClearColor(0, 0, 0, 1))
	require.NoError(t, err)

	cam := camera.NewCamera(camera.WithPosition(1, 2, 3))
	require.NoError(t, r.Render(cam))
	r.SetClearColor(1, 1, 1, 1)
	require.NoError(t, r.Render(cam))

	require.Len(t, fb.frames, 2)
	assert.Equal(t, cam.Uniform(), fb.frames[0])

	cam.Translate(mgl32.Vec3{0, 0, -1})
	require.NoError(t, r.Render(cam))
	assert.Equal(t, [3]float32{1, 2, 2}, fb.frames[2].CameraPosition, "render picks up the latest transform")
	assert.Equal(t, wgpu.Color{R: 0, G: 0, B: 0, A: 1}, fb.clears[0])
	assert.Equal(t, wgpu.Color{R: 1, G: 1, B: 1, A: 1}, fb.clears[1])
}

func TestResize(t *testing.T) {
	fb := &fakeBackend{}
	r, err := newRenderer(fb, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, fb.configured)

	require.NoError(t, r.Render(camera.NewCamera()))
	assert.Empty(t, fb.frames, "nothing is drawn before the surface has a size")

	r.Resize(800, 600)
	r.Resize(800, 600)
	r.Resize(0, 600)
	assert.Equal(t, [][2]int{{800, 600}}, fb.configured)

	r.Release()
	assert.True(t, fb.released)
}
