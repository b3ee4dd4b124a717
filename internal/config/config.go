// Package config loads sift configuration from defaults, an optional
// config file, and the environment. Precedence, lowest to highest:
// defaults, ~/.sift/config.yaml (or an explicit file), SIFT_* environment
// variables, then command-line flags applied by the caller.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/siftgo/filter"
)

// Config is the effective sift configuration.
type Config struct {
	// Delimiter is the CSV field separator, a single character.
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`

	// NullLiterals lists cell values treated as null on top of the
	// built-in ones (empty, na, n/a, nan, null, none).
	NullLiterals []string `mapstructure:"null_literals" yaml:"null_literals"`

	// DateLayouts lists Go time layouts tried after the built-in ones
	// when inferring datetime columns.
	DateLayouts []string `mapstructure:"date_layouts" yaml:"date_layouts"`

	// CategoricalCap bounds how many distinct values a categorical
	// column may have before value listings are suppressed.
	CategoricalCap int `mapstructure:"categorical_cap" yaml:"categorical_cap"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`

	// PlotWidth and PlotHeight size rendered charts, in inches.
	PlotWidth  float64 `mapstructure:"plot_width" yaml:"plot_width"`
	PlotHeight float64 `mapstructure:"plot_height" yaml:"plot_height"`
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".sift"), nil
}

// Load reads configuration from cfgFile, or from ~/.sift/config.yaml when
// cfgFile is empty. A missing default config file is not an error. A .env
// file in the working directory is folded into the environment first.
func Load(cfgFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SIFT")
	v.AutomaticEnv()

	v.SetDefault("delimiter", ",")
	v.SetDefault("null_literals", []string{})
	v.SetDefault("date_layouts", []string{})
	v.SetDefault("categorical_cap", filter.MaxCategoricalOptions)
	v.SetDefault("log_level", "info")
	v.SetDefault("plot_width", 8.0)
	v.SetDefault("plot_height", 6.0)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		dir, err := defaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		_ = v.ReadInConfig()
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Save writes the configuration to cfgFile, or to ~/.sift/config.yaml when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Config, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := defaultDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for values the commands cannot use.
func (c *Config) Validate() error {
	if _, err := c.DelimiterRune(); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (use debug, info, warn, or error)", c.LogLevel)
	}
	if c.CategoricalCap <= 0 {
		return fmt.Errorf("categorical_cap must be positive, got %d", c.CategoricalCap)
	}
	if c.PlotWidth <= 0 || c.PlotHeight <= 0 {
		return fmt.Errorf("plot size must be positive, got %gx%g", c.PlotWidth, c.PlotHeight)
	}
	return nil
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() (rune, error) {
	rs := []rune(c.Delimiter)
	if len(rs) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return rs[0], nil
}
