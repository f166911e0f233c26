package watering

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/sprout/internal/aptitude"
)

// ErrInvalidConfig is matched by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid watering config")

// ConfigError reports a configuration value that cannot start a session.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid watering config: %s %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool { return target == ErrInvalidConfig }

// Config holds the construction-time tuning of a challenge.
// It is immutable once a Machine is built from it.
type Config struct {
	StageCount     int        `yaml:"stage_count"`
	MaxLives       int        `yaml:"max_lives"`
	IndicatorSpeed float64    `yaml:"indicator_speed"` // bar widths per second
	Zones          ZoneConfig `yaml:",inline"`

	// PatienceBaseline is the attempt count that still earns full patience.
	PatienceBaseline int `yaml:"patience_baseline_attempts"`

	EvaluationDelay         time.Duration `yaml:"evaluation_delay"`
	SuccessMessageDelay     time.Duration `yaml:"success_message_delay"`
	GrowthAnimationDuration time.Duration `yaml:"growth_animation_duration"`
	FailureDelay            time.Duration `yaml:"failure_delay"`
	WitherDelay             time.Duration `yaml:"wither_delay"`
	VictoryDelay            time.Duration `yaml:"victory_delay"`

	// Area receives the derived scores.
	Area aptitude.Area `yaml:"area"`
}

// DefaultConfig returns the standard tuning:
// three stages (seed, sprout, adult), three lives.
func DefaultConfig() Config {
	return Config{
		StageCount:     3,
		MaxLives:       3,
		IndicatorSpeed: 0.3,
		Zones: ZoneConfig{
			GreenStart: 0.4,
			GreenEnd:   0.6,
			Margin:     0.15,
		},
		PatienceBaseline:        3,
		EvaluationDelay:         300 * time.Millisecond,
		SuccessMessageDelay:     time.Second,
		GrowthAnimationDuration: time.Second,
		FailureDelay:            1500 * time.Millisecond,
		WitherDelay:             2 * time.Second,
		VictoryDelay:            time.Second,
		Area:                    aptitude.NaturalSciences,
	}
}

// Validate rejects configurations a session could not run with.
func (c Config) Validate() error {
	z := c.Zones
	switch {
	case c.StageCount < 1:
		return &ConfigError{Field: "stage_count", Reason: "must be at least 1"}
	case c.MaxLives < 1:
		return &ConfigError{Field: "max_lives", Reason: "must be at least 1"}
	case !(c.IndicatorSpeed > 0) || math.IsInf(c.IndicatorSpeed, 0):
		return &ConfigError{Field: "indicator_speed", Reason: "must be a positive number"}
	case math.IsNaN(z.GreenStart) || math.IsNaN(z.GreenEnd):
		return &ConfigError{Field: "green_zone", Reason: "must be numbers"}
	case z.GreenStart < 0 || z.GreenEnd > 1:
		return &ConfigError{Field: "green_zone", Reason: "must lie within [0, 1]"}
	case z.GreenStart >= z.GreenEnd:
		return &ConfigError{Field: "green_zone", Reason: "start must be below end"}
	case !(z.Margin >= 0):
		return &ConfigError{Field: "yellow_zone_margin", Reason: "must not be negative"}
	case c.PatienceBaseline < 0:
		return &ConfigError{Field: "patience_baseline_attempts", Reason: "must not be negative"}
	}

	delays := []struct {
		name string
		d    time.Duration
	}{
		{"evaluation_delay", c.EvaluationDelay},
		{"success_message_delay", c.SuccessMessageDelay},
		{"growth_animation_duration", c.GrowthAnimationDuration},
		{"failure_delay", c.FailureDelay},
		{"wither_delay", c.WitherDelay},
		{"victory_delay", c.VictoryDelay},
	}
	for _, d := range delays {
		if d.d < 0 {
			return &ConfigError{Field: d.name, Reason: "must not be negative"}
		}
	}

	if _, err := aptitude.ParseArea(string(c.Area)); err != nil {
		return &ConfigError{Field: "area", Reason: err.Error()}
	}
	return nil
}

// LoadConfig reads a YAML tuning file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
