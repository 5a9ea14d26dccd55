package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all procedure CLI configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Demo    DemoConfig    `mapstructure:"demo"`
}

// DisplayConfig holds status line rendering settings
type DisplayConfig struct {
	Padding int    `mapstructure:"padding"`
	Color   string `mapstructure:"color"`
}

// DemoConfig holds settings for the demo command
type DemoConfig struct {
	Delay  time.Duration `mapstructure:"delay"`
	FailAt int64         `mapstructure:"fail_at"`
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise falls back to LoadConfig with the working directory.
func LoadConfigWithFile(workDir, configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}
	return LoadConfig(workDir)
}

// LoadConfig loads configuration from procedure.yaml in the given directory,
// then from the global config file. If neither exists, defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := newViper()

	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		if global, err := GlobalConfigPath(); err == nil {
			return LoadConfigFromPath(global)
		}
	}

	return unmarshal(v)
}

// LoadConfigFromPath loads configuration from a specific file path.
// A missing file yields defaults.
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := newViper()

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return unmarshal(v)
		}
		return nil, err
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

// Validate checks that values are usable by the printer.
func (c *Config) Validate() error {
	if c.Display.Padding < 0 {
		return fmt.Errorf("%w: display.padding must not be negative, got %d", ErrInvalidConfig, c.Display.Padding)
	}
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: display.color must be one of auto, always, never, got %q", ErrInvalidConfig, c.Display.Color)
	}
	if c.Demo.Delay < 0 {
		return fmt.Errorf("%w: demo.delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	// PROCEDURE_DISPLAY_PADDING overrides display.padding
	v.SetEnvPrefix("PROCEDURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("display.padding", DefaultPadding)
	v.SetDefault("display.color", DefaultColor)

	v.SetDefault("demo.delay", DefaultDemoDelay)
	v.SetDefault("demo.fail_at", DefaultDemoFailAt)
}
