// Package config handles export configuration loading and management.
package config

import (
	"github.com/Faultbox/roadexport/pkg/math"
	"github.com/Faultbox/roadexport/pkg/road"
)

// Config holds all export settings.
type Config struct {
	Source  SourceConfig  `yaml:"source" toml:"source"`
	Output  OutputConfig  `yaml:"output" toml:"output"`
	Road    road.Options  `yaml:"road" toml:"road"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// SourceConfig describes where the centerline comes from and how it is
// placed in the world.
type SourceConfig struct {
	Mesh        string     `yaml:"mesh" toml:"mesh"`               // Path to the OBJ file
	Translation [3]float64 `yaml:"translation" toml:"translation"` // Object location
	Rotation    [3]float64 `yaml:"rotation" toml:"rotation"`       // XYZ Euler, degrees
	Scale       [3]float64 `yaml:"scale" toml:"scale"`
}

// OutputConfig holds the destination of the exported records.
type OutputConfig struct {
	Path string `yaml:"path" toml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with the editor's default road settings.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Scale: [3]float64{1, 1, 1},
		},
		Output: OutputConfig{
			Path: "road.json",
		},
		Road: road.DefaultOptions(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Matrix returns the object-to-world transform of the source mesh.
func (s SourceConfig) Matrix() math.Mat4 {
	return math.FromTRS(
		math.Vec3{X: s.Translation[0], Y: s.Translation[1], Z: s.Translation[2]},
		math.Vec3{X: s.Rotation[0], Y: s.Rotation[1], Z: s.Rotation[2]},
		math.Vec3{X: s.Scale[0], Y: s.Scale[1], Z: s.Scale[2]},
	)
}
