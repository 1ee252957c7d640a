// Package config loads the YAML configuration for a pointer lock scene: window, engine loop,
// logging and controls settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-controls/common"
	"github.com/Carmen-Shannon/oxy-controls/engine/camera"
	"github.com/Carmen-Shannon/oxy-controls/engine/logger"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the configuration file.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Logging  LoggingConfig  `yaml:"logging"`
	Controls ControlsConfig `yaml:"controls"`
}

// WindowConfig configures the host window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// EngineConfig configures the engine loop.
type EngineConfig struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
}

// LoggingConfig configures the process logger.
type LoggingConfig struct {
	Level logger.Level `yaml:"level"`
}

// ControlsConfig configures PointerLockControls and the Walker.
// Angles are in radians. A zero damping or acceleration keeps the walker default.
type ControlsConfig struct {
	Enabled            *bool   `yaml:"enabled"`
	PointerSpeed       float32 `yaml:"pointer_speed"`
	MinPolarAngle      float32 `yaml:"min_polar_angle"`
	MaxPolarAngle      float32 `yaml:"max_polar_angle"`
	UnadjustedMovement bool    `yaml:"unadjusted_movement"`
	Damping            float32 `yaml:"damping"`
	Acceleration       float32 `yaml:"acceleration"`
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	enabled := true
	return Config{
		Window: WindowConfig{
			Title:  "Oxy Engine - Pointer Lock",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Logging: LoggingConfig{
			Level: logger.LevelInfo,
		},
		Controls: ControlsConfig{
			Enabled:       &enabled,
			PointerSpeed:  1,
			MinPolarAngle: 0,
			MaxPolarAngle: math.Pi,
			Damping:       10,
			Acceleration:  400,
		},
	}
}

// Load reads and validates a YAML file. Missing keys keep their Default values.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - Config: the loaded configuration
//   - error: error if the file cannot be read, decoded or validated
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadYAML(f)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadYAML decodes and validates YAML from r on top of Default.
// An empty document yields Default.
//
// Parameters:
//   - r: the YAML source
//
// Returns:
//   - Config: the decoded configuration
//   - error: error if decoding or validation fails
func LoadYAML(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
//
// Returns:
//   - error: an error wrapping ErrInvalidConfig describing the first problem found, or nil
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Engine.TickRate < 0 {
		return fmt.Errorf("%w: tick_rate must not be negative, got %v", ErrInvalidConfig, c.Engine.TickRate)
	}
	if !c.Logging.Level.Valid() {
		return fmt.Errorf("%w: unknown logging level %q", ErrInvalidConfig, c.Logging.Level)
	}
	ctl := c.Controls
	if ctl.PointerSpeed <= 0 {
		return fmt.Errorf("%w: pointer_speed must be positive, got %v", ErrInvalidConfig, ctl.PointerSpeed)
	}
	if ctl.MinPolarAngle < 0 || ctl.MaxPolarAngle > math.Pi || ctl.MinPolarAngle > ctl.MaxPolarAngle {
		return fmt.Errorf("%w: polar angles must satisfy 0 <= min <= max <= pi, got [%v, %v]",
			ErrInvalidConfig, ctl.MinPolarAngle, ctl.MaxPolarAngle)
	}
	if ctl.Damping < 0 || ctl.Acceleration < 0 {
		return fmt.Errorf("%w: damping and acceleration must not be negative", ErrInvalidConfig)
	}
	return nil
}

// IsEnabled reports the configured enabled state, defaulting to true when unset.
//
// Returns:
//   - bool: whether the controls start enabled
func (c ControlsConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Options converts the settings into PointerLockControls options.
//
// Returns:
//   - []camera.PointerLockControlsOption: options for camera.NewPointerLockControls
func (c ControlsConfig) Options() []camera.PointerLockControlsOption {
	return []camera.PointerLockControlsOption{
		camera.WithEnabled(c.IsEnabled()),
		camera.WithPointerSpeed(common.Coalesce(c.PointerSpeed, 1)),
		camera.WithPolarAngleBounds(c.MinPolarAngle, c.MaxPolarAngle),
	}
}

// WalkerOptions converts the movement settings into Walker options.
//
// Returns:
//   - []camera.WalkerOption: options for camera.NewWalker
func (c ControlsConfig) WalkerOptions() []camera.WalkerOption {
	return []camera.WalkerOption{
		camera.WithDamping(c.Damping),
		camera.WithAcceleration(c.Acceleration),
	}
}
