package carousel

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds the tuning parameters of a Controller.
type Config struct {
	Friction                  float64 `yaml:"friction"`
	Sensitivity               float64 `yaml:"sensitivity"`
	VerticalSensitivityFactor float64 `yaml:"vertical_sensitivity_factor"`
	VelocityBoost             float64 `yaml:"velocity_boost"`
	VelocityEpsilon           float64 `yaml:"velocity_epsilon"`
	MinX                      float64 `yaml:"min_x"`
	MaxX                      float64 `yaml:"max_x"`
	InitialRotationX          float64 `yaml:"initial_rotation_x"`

	// ItemCount is the number of cards on the ring, used by FocusItem
	// when the caller does not know the count.
	ItemCount int `yaml:"item_count"`

	// ResumeAutoSpin restores the auto-spin presentation when a drag ends.
	ResumeAutoSpin bool `yaml:"resume_auto_spin"`

	// ReducedMotion starts the ring without auto-spin.
	ReducedMotion bool `yaml:"reduced_motion"`

	Ring RingConfig `yaml:"ring"`
}

// RingConfig holds the geometry used by viewers to lay out cards.
type RingConfig struct {
	Radius     float64 `yaml:"radius"`
	CardWidth  float64 `yaml:"card_width"`
	CardHeight float64 `yaml:"card_height"`
}

// DefaultConfig returns the stock carousel tuning.
func DefaultConfig() Config {
	return Config{
		Friction:                  DefaultFriction,
		Sensitivity:               DefaultSensitivity,
		VerticalSensitivityFactor: DefaultVerticalSensitivityFactor,
		VelocityBoost:             DefaultVelocityBoost,
		VelocityEpsilon:           DefaultVelocityEpsilon,
		MinX:                      DefaultMinX,
		MaxX:                      DefaultMaxX,
		InitialRotationX:          DefaultRotationX,
		ItemCount:                 DefaultItemCount,
		Ring: RingConfig{
			Radius:     DefaultRadius,
			CardWidth:  DefaultCardWidth,
			CardHeight: DefaultCardHeight,
		},
	}
}

// LoadConfig loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first parameter that would break the physics.
func (c Config) Validate() error {
	if c.Friction <= 0 || c.Friction >= 1 {
		return fmt.Errorf("friction must be in (0, 1), got %v", c.Friction)
	}
	if c.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be positive, got %v", c.Sensitivity)
	}
	if c.VerticalSensitivityFactor < 0 {
		return fmt.Errorf("vertical sensitivity factor must not be negative, got %v", c.VerticalSensitivityFactor)
	}
	if c.VelocityBoost < 0 {
		return fmt.Errorf("velocity boost must not be negative, got %v", c.VelocityBoost)
	}
	if c.VelocityEpsilon < 0 {
		return fmt.Errorf("velocity epsilon must not be negative, got %v", c.VelocityEpsilon)
	}
	if c.MinX > c.MaxX {
		return fmt.Errorf("min_x %v is greater than max_x %v", c.MinX, c.MaxX)
	}
	if c.ItemCount < 0 {
		return fmt.Errorf("item count must not be negative, got %d", c.ItemCount)
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
