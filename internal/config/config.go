// Package config loads the fluentstr CLI configuration from a YAML file,
// a .env file and FLUENTSTR_* environment variables, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. FLUENTSTR_LOG_LEVEL.
	EnvPrefix = "FLUENTSTR"

	defaultName    = "fluentstr"
	defaultEnvFile = ".env"
)

// Config is the CLI configuration.
type Config struct {
	Log LogConfig `mapstructure:"log"`
	// Recipes maps a name to a list of operation specs, e.g.
	//
	//	recipes:
	//	  headline: [trim, title, "truncate:60"]
	Recipes map[string][]string `mapstructure:"recipes"`
}

// LogConfig selects the level and output format of the CLI logger.
type LogConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// Validate checks the level and format names.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required,
			validation.In("trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled")),
		validation.Field(&c.Format, validation.Required, validation.In("console", "json")),
	)
}

// Recipe returns the specs stored under name.
func (c *Config) Recipe(name string) ([]string, bool) {
	specs, ok := c.Recipes[strings.ToLower(name)]
	return specs, ok
}

type options struct {
	configFile string
	envFile    string
	searchDirs []string
}

// Option customizes Load.
type Option func(*options)

// WithConfigFile reads path instead of searching for fluentstr.yml.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvFile loads path instead of ./.env.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithSearchDirs replaces the directories searched for fluentstr.yml.
func WithSearchDirs(dirs ...string) Option {
	return func(o *options) { o.searchDirs = dirs }
}

// Load builds a Config. A missing config or .env file is not an error
// unless it was named explicitly.
func Load(opts ...Option) (*Config, error) {
	o := options{searchDirs: defaultSearchDirs()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadEnvFile(o.envFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.no_color", false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.configFile != "" {
		v.SetConfigFile(o.configFile)
	} else {
		v.SetConfigName(defaultName)
		v.SetConfigType("yaml")
		for _, dir := range o.searchDirs {
			v.AddConfigPath(dir)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if err := cfg.Log.Validate(); err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(defaultEnvFile); err != nil {
			return nil
		}
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

func defaultSearchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home+"/.config/fluentstr")
	}
	return dirs
}
