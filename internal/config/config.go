// Package config loads the flubber settings from defaults, an optional YAML
// file and FLUBBER_ environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Engine EngineConfig `mapstructure:"engine"`
	Files  FilesConfig  `mapstructure:"files"`
}

// WindowConfig holds window settings. The screen is scaled to fit.
type WindowConfig struct {
	Title   string `mapstructure:"title"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	ShowFPS bool   `mapstructure:"show_fps"`
}

// EngineConfig holds clock and diagnostics settings.
type EngineConfig struct {
	TPS   int  `mapstructure:"tps"`
	Debug bool `mapstructure:"debug"`
}

// FilesConfig holds the seed catalog and the saved panel state paths. An
// empty catalog path starts with an empty catalog.
type FilesConfig struct {
	Catalog string `mapstructure:"catalog"`
	State   string `mapstructure:"state"`
}

// Load reads configuration from path, or from FLUBBER_CONFIG, or from
// ~/.config/flubber/config.yaml, in that order. Only an explicitly named
// file must exist. Env var overrides use prefix FLUBBER_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("window.title", "flubber")
	v.SetDefault("window.width", 360)
	v.SetDefault("window.height", 640)
	v.SetDefault("window.show_fps", false)
	v.SetDefault("engine.tps", 60)
	v.SetDefault("engine.debug", false)
	v.SetDefault("files.catalog", "")
	v.SetDefault("files.state", filepath.Join(os.Getenv("HOME"), ".local", "share", "flubber", "state.yaml"))

	v.SetConfigType("yaml")

	if path == "" {
		path = os.Getenv("FLUBBER_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "flubber"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLUBBER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports settings the app cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Engine.TPS <= 0 {
		errs = append(errs, fmt.Errorf("engine tps %d must be positive", c.Engine.TPS))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
