package window

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-controls/engine/input"
	"github.com/stretchr/testify/assert"
)

func TestCheckCapture(t *testing.T) {
	assert.NoError(t, checkCapture(true, false, false))
	assert.NoError(t, checkCapture(true, true, true))
	assert.ErrorIs(t, checkCapture(false, true, false), ErrWindowNotFocused)
	assert.ErrorIs(t, checkCapture(true, false, true), input.ErrRawMotionUnsupported)
}

func TestToMouseButton(t *testing.T) {
	for idx, want := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
		got, ok := toMouseButton(idx)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := toMouseButton(5)
	assert.False(t, ok)
}
