package window

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-controls/engine/input"
)

// ErrWindowNotFocused is reported when pointer capture is requested for a window without focus.
var ErrWindowNotFocused = errors.New("window is not focused")

// checkCapture decides whether a capture request can be honoured.
//
// Parameters:
//   - focused: whether the window has input focus
//   - rawSupported: whether the platform can deliver raw mouse motion
//   - unadjusted: whether raw motion was requested
//
// Returns:
//   - error: ErrWindowNotFocused, input.ErrRawMotionUnsupported, or nil
func checkCapture(focused, rawSupported, unadjusted bool) error {
	if !focused {
		return ErrWindowNotFocused
	}
	if unadjusted && !rawSupported {
		return input.ErrRawMotionUnsupported
	}
	return nil
}

// toMouseButton maps a GLFW button index to a MouseButton. GLFW numbers left, right, middle as 0, 1, 2.
func toMouseButton(button int) (MouseButton, bool) {
	switch button {
	case 0:
		return MouseButtonLeft, true
	case 1:
		return MouseButtonRight, true
	case 2:
		return MouseButtonMiddle, true
	}
	return 0, false
}
