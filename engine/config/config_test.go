package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/Carmen-Shannon/oxy-controls/engine/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(1), cfg.Controls.PointerSpeed)
	assert.Equal(t, float32(0), cfg.Controls.MinPolarAngle)
	assert.Equal(t, float32(math.Pi), cfg.Controls.MaxPolarAngle)
	assert.True(t, cfg.Controls.IsEnabled())
}

func TestLoadYAMLEmptyDocument(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadYAMLOverrides(t *testing.T) {
	src := `
window:
  title: walk
  width: 800
  height: 600
engine:
  tick_rate: 120
  profiling: true
logging:
  level: debug
controls:
  enabled: false
  pointer_speed: 0.5
  min_polar_angle: 0.2
  max_polar_angle: 2.9
  unadjusted_movement: true
  damping: 8
`
	cfg, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Title: "walk", Width: 800, Height: 600}, cfg.Window)
	assert.Equal(t, EngineConfig{TickRate: 120, Profiling: true}, cfg.Engine)
	assert.Equal(t, logger.LevelDebug, cfg.Logging.Level)
	assert.False(t, cfg.Controls.IsEnabled())
	assert.Equal(t, float32(0.5), cfg.Controls.PointerSpeed)
	assert.Equal(t, float32(0.2), cfg.Controls.MinPolarAngle)
	assert.Equal(t, float32(2.9), cfg.Controls.MaxPolarAngle)
	assert.True(t, cfg.Controls.UnadjustedMovement)
	assert.Equal(t, float32(8), cfg.Controls.Damping)
	assert.Equal(t, float32(400), cfg.Controls.Acceleration, "unset keys keep defaults")
}

func TestLoadYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("controls:\n  speed: 2\n"))
	assert.Error(t, err)
}

func TestLoadYAMLValidation(t *testing.T) {
	cases := map[string]string{
		"negative speed":   "controls:\n  pointer_speed: -1\n",
		"inverted bounds":  "controls:\n  min_polar_angle: 2\n  max_polar_angle: 1\n",
		"bound above pi":   "controls:\n  max_polar_angle: 4\n",
		"negative damping": "controls:\n  damping: -3\n",
		"zero width":       "window:\n  width: 0\n",
		"negative tick":    "engine:\n  tick_rate: -5\n",
		"unknown level":    "logging:\n  level: loud\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(src))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controls.yaml")
	require.NoError(t, os.WriteFile(path, []byte("controls:\n  pointer_speed: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(3), cfg.Controls.PointerSpeed)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestControlsOptions(t *testing.T) {
	cfg := Default()
	disabled := false
	cfg.Controls.Enabled = &disabled
	cfg.Controls.PointerSpeed = 2
	cfg.Controls.MinPolarAngle = 0.25
	cfg.Controls.MaxPolarAngle = 2.5

	c := camera.NewPointerLockControls(camera.NewCamera(), cfg.Controls.Options()...)

	assert.False(t, c.Enabled())
	assert.Equal(t, float32(2), c.PointerSpeed())
	assert.Equal(t, float32(0.25), c.MinPolarAngle())
	assert.Equal(t, float32(2.5), c.MaxPolarAngle())
}

func TestWalkerOptions(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.Controls.WalkerOptions(), 2)
	assert.NotNil(t, camera.NewWalker(nil, cfg.Controls.WalkerOptions()...))
}
