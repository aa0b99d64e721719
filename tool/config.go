package tool

import (
	"fmt"
	"os"

	draft "github.com/draftkit/draft2d"
	"gopkg.in/yaml.v3"
)

// Config holds the host-supplied drafting configuration: measurement and
// dimension precision, unit string, default entity style and active
// layer.
type Config struct {
	// Precision is the number of decimals in formatted values, 0 to 4.
	Precision int `yaml:"precision"`

	// Unit is the unit suffix for non-angular values (mm/cm/m/in/ft).
	Unit string `yaml:"unit"`

	// ActiveLayer is the layer new entities are committed to.
	ActiveLayer string `yaml:"layer"`

	// StrokeWidth is the default stroke width for new entities.
	StrokeWidth float64 `yaml:"stroke_width"`

	// Dash is the default dash pattern for new entities, empty for solid.
	Dash []float64 `yaml:"dash"`
}

// DefaultConfig returns the configuration used when the host supplies
// none: 2 decimals, millimeters, layer "0", solid 1-unit strokes.
func DefaultConfig() Config {
	return Config{
		Precision:   2,
		Unit:        "mm",
		ActiveLayer: "0",
		StrokeWidth: 1,
	}
}

// LoadConfig reads a YAML configuration file, applying defaults for
// absent fields.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("tool: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("tool: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports an invalid configuration. Precision outside 0..4 is a
// programmer error per the error-handling policy and fails construction.
func (c Config) Validate() error {
	if c.Precision < 0 || c.Precision > 4 {
		return fmt.Errorf("tool: precision %d out of range [0, 4]", c.Precision)
	}
	if c.StrokeWidth < 0 {
		return fmt.Errorf("tool: negative stroke width %v", c.StrokeWidth)
	}
	return nil
}

// Style returns the default entity style described by the configuration.
func (c Config) Style() draft.Style {
	s := draft.DefaultStyle()
	if c.StrokeWidth > 0 {
		s.StrokeWidth = c.StrokeWidth
	}
	if len(c.Dash) > 0 {
		s.Dash = draft.NewDash(c.Dash...)
	}
	return s
}

// FormatValue formats a measured value with the configured precision and
// unit suffix. Angular values take the degree sign with no separating
// space; other values take the configured unit string.
func (c Config) FormatValue(v float64, angular bool) string {
	if angular {
		return fmt.Sprintf("%.*f°", c.Precision, v)
	}
	if c.Unit == "" {
		return fmt.Sprintf("%.*f", c.Precision, v)
	}
	return fmt.Sprintf("%.*f %s", c.Precision, v, c.Unit)
}
