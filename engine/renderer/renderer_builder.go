package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"
)

// RendererBuilderOption is a functional option for configuring a Renderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.presentMode = mode
	}
}

// WithClearColor sets the background color.
//
// Parameters:
//   - red, green, blue, alpha: color components in [0, 1]
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithClearColor(red, green, blue, alpha float64) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = wgpu.Color{R: red, G: green, B: blue, A: alpha}
	}
}

// WithGrid sets the ground grid size.
//
// Parameters:
//   - halfLines: number of lines either side of each axis; values < 1 are ignored
//   - spacing: distance between lines; values <= 0 are ignored
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithGrid(halfLines int, spacing float32) RendererBuilderOption {
	return func(r *renderer) {
		if halfLines >= 1 {
			r.gridHalfLines = halfLines
		}
		if spacing > 0 {
			r.gridSpacing = spacing
		}
	}
}

// WithLogger sets the renderer logger.
//
// Parameters:
//   - l: the logger; nil keeps the process logger
//
// Returns:
//   - RendererBuilderOption: option function to apply
func WithLogger(l *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		if l != nil {
			r.logger = l
		}
	}
}
