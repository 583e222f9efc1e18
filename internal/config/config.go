package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all renderer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
	Debug    DebugConfig    `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	FrameWidth   int    `yaml:"frame_width"`  // framebuffer resolution, scaled to the window
	FrameHeight  int    `yaml:"frame_height"` // framebuffer resolution, scaled to the window
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	Background   [3]int `yaml:"background"` // shown where no wall was drawn
	TPS          int    `yaml:"tps"`
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"` // horizontal, degrees
	Height      float64 `yaml:"height"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	StartAngle  float64 `yaml:"start_angle"` // degrees
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`     // units per second
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per second
	Radius        float64 `yaml:"radius"`         // collision radius around the camera
	NoClip        bool    `yaml:"noclip"`         // walk through walls
}

type AssetsConfig struct {
	SceneFile string `yaml:"scene_file"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Encoding    string `yaml:"encoding"` // "json" or "console"
	Development bool   `yaml:"development"`
}

type DebugConfig struct {
	ShowFPS     bool    `yaml:"show_fps"`
	FPSInterval float64 `yaml:"fps_interval"` // seconds between FPS reports
	SnapshotDir string  `yaml:"snapshot_dir"`
}

// Default returns a configuration populated with the built-in defaults.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills every zero value with its default.
func (c *Config) ApplyDefaults() {
	setInt(&c.Display.FrameWidth, 640)
	setInt(&c.Display.FrameHeight, 400)
	setInt(&c.Display.ScreenWidth, 960)
	setInt(&c.Display.ScreenHeight, 600)
	setInt(&c.Display.TPS, 60)
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "wallcaster"
	}

	setFloat(&c.Camera.FieldOfView, 60)
	setFloat(&c.Camera.Height, 0.6)

	setFloat(&c.Movement.MoveSpeed, 3.8)
	setFloat(&c.Movement.RotationSpeed, 120)
	setFloat(&c.Movement.Radius, 0.2)

	if c.Assets.SceneFile == "" {
		c.Assets.SceneFile = "assets/scene.yaml"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Encoding == "" {
		c.Logging.Encoding = "console"
	}

	setFloat(&c.Debug.FPSInterval, 0.5)
	if c.Debug.SnapshotDir == "" {
		c.Debug.SnapshotDir = "snapshots"
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Display.FrameWidth <= 0 || c.Display.FrameHeight <= 0 {
		errs = append(errs, fmt.Errorf("frame size must be positive, got %dx%d", c.Display.FrameWidth, c.Display.FrameHeight))
	}
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight))
	}
	if c.Display.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.Display.TPS))
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("field_of_view must be in (0, 180) degrees, got %v", c.Camera.FieldOfView))
	}
	if c.Movement.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius must not be negative, got %v", c.Movement.Radius))
	}
	if c.Logging.Encoding != "json" && c.Logging.Encoding != "console" {
		errs = append(errs, fmt.Errorf("unknown log encoding %q", c.Logging.Encoding))
	}
	return errors.Join(errs...)
}

// LoadConfig loads the configuration from a yaml file and validates it. Keys
// missing from the file keep their defaults; keys present keep their value,
// zero included.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetFrameWidth() int {
	return c.Display.FrameWidth
}

func (c *Config) GetFrameHeight() int {
	return c.Display.FrameHeight
}

// GetCameraFOV returns the horizontal field of view in radians
func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView * math.Pi / 180
}

// GetStartAngle returns the start angle in radians
func (c *Config) GetStartAngle() float64 {
	return c.Camera.StartAngle * math.Pi / 180
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

// GetRotSpeed returns the rotation speed in radians per second
func (c *Config) GetRotSpeed() float64 {
	return c.Movement.RotationSpeed * math.Pi / 180
}

func setInt(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}

func setFloat(v *float64, def float64) {
	if *v == 0 {
		*v = def
	}
}
