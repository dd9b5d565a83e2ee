// Package config provides configuration data structures for profilecard.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/logging"
	"github.com/wexinc/profilecard/internal/profile"
)

// Config represents the complete profilecard configuration loaded from
// .profilecard/config.yaml.
type Config struct {
	Profile   profile.Record  `yaml:"profile"   json:"profile"   mapstructure:"profile"`
	Animation AnimationConfig `yaml:"animation" json:"animation" mapstructure:"animation"`
	UI        UIConfig        `yaml:"ui"        json:"ui"        mapstructure:"ui"`
	Log       LogConfig       `yaml:"log"       json:"log"       mapstructure:"log"`
	Hooks     HooksConfig     `yaml:"hooks"     json:"hooks"     mapstructure:"hooks"`
}

// AnimationConfig tunes the entrance animation.
type AnimationConfig struct {
	// Speed multiplies playback speed: 2 plays twice as fast (default: 1).
	Speed float64 `yaml:"speed" json:"speed" mapstructure:"speed"`
	// Disabled shows the card at rest immediately after load.
	Disabled bool `yaml:"disabled" json:"disabled" mapstructure:"disabled"`
}

// UIConfig configures the terminal program.
type UIConfig struct {
	// AltScreen draws the card in the alternate screen buffer (default: true).
	AltScreen bool `yaml:"alt_screen" json:"alt_screen" mapstructure:"alt_screen"`
	// Mouse enables hover and click on the controls (default: true).
	Mouse bool `yaml:"mouse" json:"mouse" mapstructure:"mouse"`
}

// LogConfig configures the log file.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info).
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// JSON switches the log file to JSON lines.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
	// Dir is the log directory (default: .profilecard/logs).
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
}

// HooksConfig holds shell commands run when the card's controls are
// activated. Empty commands are skipped.
type HooksConfig struct {
	// OnEdit runs when the edit button is activated.
	OnEdit string `yaml:"on_edit" json:"on_edit" mapstructure:"on_edit"`
	// OnCreate runs when the floating "+" control is activated.
	OnCreate string `yaml:"on_create" json:"on_create" mapstructure:"on_create"`
	// Timeout bounds each command (default: 30s).
	Timeout time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
}

// Default values.
const (
	DefaultSpeed    = 1.0
	MinSpeed        = 0.01
	MaxSpeed        = 10.0
	DefaultLogLevel = "info"
	DefaultLogDir   = ".profilecard/logs"

	DefaultHookTimeout = 30 * time.Second
)

// NewConfig returns a new Config with default values applied. The profile
// is the built-in sample.
func NewConfig() *Config {
	return &Config{
		Profile: profile.Sample(),
		Animation: AnimationConfig{
			Speed:    DefaultSpeed,
			Disabled: false,
		},
		UI: UIConfig{
			AltScreen: true,
			Mouse:     true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
			Dir:   DefaultLogDir,
		},
		Hooks: HooksConfig{
			Timeout: DefaultHookTimeout,
		},
	}
}

// ApplyDefaults fills unset fields after decoding. Booleans cannot be told
// apart from an explicit false, so the loader decodes over NewConfig instead.
func (c *Config) ApplyDefaults() {
	if c.Animation.Speed == 0 {
		c.Animation.Speed = DefaultSpeed
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Dir == "" {
		c.Log.Dir = DefaultLogDir
	}
	if c.Hooks.Timeout == 0 {
		c.Hooks.Timeout = DefaultHookTimeout
	}
	c.Profile = c.Profile.Normalize()
}

// Schedule returns the animation timing this configuration asks for.
func (c *Config) Schedule() anim.Schedule {
	s := anim.DefaultSchedule()
	if c.Animation.Disabled {
		return s.Scaled(0)
	}
	speed := c.Animation.Speed
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return s.Scaled(1 / speed)
}

// LoggingConfig converts the log section into a logger configuration.
// Validate should have accepted the level first; an unknown level falls
// back to info.
func (c *Config) LoggingConfig() *logging.Config {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	lc.JSONFormat = c.Log.JSON
	if c.Log.Dir != "" {
		lc.LogDir = c.Log.Dir
	}
	return lc
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	var b strings.Builder
	b.WriteString("multiple validation errors:")
	for _, err := range e {
		b.WriteString("\n  - " + err.Error())
	}
	return b.String()
}

// Validate validates the configuration and returns any errors. Profile
// content is displayed as given and is not validated.
func (c *Config) Validate() error {
	var errs ValidationErrors

	// Zero means the default speed.
	if speed := c.Animation.Speed; speed != 0 && !(speed >= MinSpeed && speed <= MaxSpeed) {
		errs = append(errs, &ValidationError{
			Field:   "animation.speed",
			Message: fmt.Sprintf("must be between %g and %g", MinSpeed, MaxSpeed),
		})
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		})
	}

	if c.Hooks.Timeout < 0 {
		errs = append(errs, &ValidationError{Field: "hooks.timeout", Message: "must not be negative"})
	}

	if err := c.Schedule().Validate(); err != nil {
		errs = append(errs, &ValidationError{Field: "animation", Message: err.Error()})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
