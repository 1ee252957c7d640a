package camera

import (
	"github.com/Carmen-Shannon/oxy-controls/engine/input"
	"go.uber.org/zap"
)

// PointerLockControlsOption is a functional option for configuring PointerLockControls.
type PointerLockControlsOption func(*pointerLockControlsImpl)

// WithElement binds the controls to an element; the controls connect to it on construction.
//
// Parameters:
//   - el: the element whose document delivers motion and capture events
//
// Returns:
//   - PointerLockControlsOption: functional option to set the element
func WithElement(el input.Element) PointerLockControlsOption {
	return func(c *pointerLockControlsImpl) {
		c.element = el
	}
}

// WithPointerSpeed sets the motion multiplier applied on top of the base sensitivity.
//
// Parameters:
//   - speed: positive multiplier (default 1)
//
// Returns:
//   - PointerLockControlsOption: functional option to set the pointer speed
func WithPointerSpeed(speed float32) PointerLockControlsOption {
	return func(c *pointerLockControlsImpl) {
		if speed > 0 {
			c.pointerSpeed = speed
		}
	}
}

// WithPolarAngleBounds sets the vertical look limits as polar angles from the up axis.
//
// Parameters:
//   - min: lower polar angle in radians (default 0)
//   - max: upper polar angle in radians (default π)
//
// Returns:
//   - PointerLockControlsOption: functional option to set the polar bounds
func WithPolarAngleBounds(min, max float32) PointerLockControlsOption {
	return func(c *pointerLockControlsImpl) {
		c.minPolarAngle, c.maxPolarAngle = sanitizePolarBounds(min, max)
	}
}

// WithEnabled sets whether the controls start enabled.
//
// Parameters:
//   - enabled: initial enabled state (default true)
//
// Returns:
//   - PointerLockControlsOption: functional option to set the enabled state
func WithEnabled(enabled bool) PointerLockControlsOption {
	return func(c *pointerLockControlsImpl) {
		c.enabled = enabled
	}
}

// WithLogger sets the logger used to report capture failures.
//
// Parameters:
//   - logger: the zap logger (nil keeps the default)
//
// Returns:
//   - PointerLockControlsOption: functional option to set the logger
func WithLogger(logger *zap.Logger) PointerLockControlsOption {
	return func(c *pointerLockControlsImpl) {
		if logger != nil {
			c.logger = logger
		}
	}
}
