package plot3d

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

type Config struct {
	Title      string       `yaml:"title"`
	Color      string       `yaml:"color"`
	Width      int          `yaml:"width"`
	Height     int          `yaml:"height"`
	Trajectory Trajectory   `yaml:"trajectory"`
	Bounds     AxisBounds   `yaml:"bounds"`
	Camera     CameraConfig `yaml:"camera"`
}

type CameraConfig struct {
	Elevation float64 `yaml:"elevation"`
	Azimuth   float64 `yaml:"azimuth"`
}

// DefaultConfig reproduces the built-in plot exactly.
func DefaultConfig() *Config {
	return &Config{
		Title:      DefaultTitle,
		Color:      DefaultColor,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Trajectory: DefaultTrajectory(),
		Bounds:     DefaultBounds(),
		Camera: CameraConfig{
			Elevation: DefaultElevation,
			Azimuth:   DefaultAzimuth,
		},
	}
}

// Load reads a YAML config. Keys missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, invalidf("window size must be positive: %dx%d", cfg.Width, cfg.Height)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) NewCamera() *Camera {
	return NewCamera(c.Camera.Elevation, c.Camera.Azimuth)
}

// Scene validates the configured data and builds the scene it describes.
func (c *Config) Scene() (*Scene, error) {
	s, err := NewScene(c.Trajectory, c.Bounds, c.Color)
	if err != nil {
		return nil, err
	}
	s.Title = c.Title
	return s, nil
}

// UnmarshalYAML replaces the whole trajectory. Giving only some of x, y and z
// is an error so user data is never paired with default coordinates.
func (t *Trajectory) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		X *[]float64 `yaml:"x"`
		Y *[]float64 `yaml:"y"`
		Z *[]float64 `yaml:"z"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.X == nil && raw.Y == nil && raw.Z == nil {
		return nil
	}
	if raw.X == nil || raw.Y == nil || raw.Z == nil {
		return invalidf("line %d: trajectory needs all of x, y and z", value.Line)
	}
	t.X, t.Y, t.Z = *raw.X, *raw.Y, *raw.Z
	return nil
}

// UnmarshalYAML reads a range written as [min, max].
func (r *AxisRange) UnmarshalYAML(value *yaml.Node) error {
	var pair []float64
	if err := value.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: axis range needs [min, max], got %d values", value.Line, len(pair))
	}
	r.Min, r.Max = pair[0], pair[1]
	return nil
}

func (r AxisRange) MarshalYAML() (interface{}, error) {
	return []float64{r.Min, r.Max}, nil
}
