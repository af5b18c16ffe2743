package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// AdventureConfig says which adventure to play and where to begin.
type AdventureConfig struct {
	Path          string `mapstructure:"path"`
	StartLocation int    `mapstructure:"start_location"`
}

// StoreConfig selects where adventures are read from.
type StoreConfig struct {
	// Backend is "file" or "redis".
	Backend     string `mapstructure:"backend"`
	RedisAddr   string `mapstructure:"redis_addr"`
	RedisPrefix string `mapstructure:"redis_prefix"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
	// Output is where log lines go. The terminal belongs to the game, so
	// this defaults to a file.
	Output string `mapstructure:"output"`
}

// Config holds the application configuration.
type Config struct {
	Adventure AdventureConfig `mapstructure:"adventure"`
	Store     StoreConfig     `mapstructure:"store"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// Load reads configuration from path, applies ADVENTURE_ environment
// overrides and validates the result. An empty path uses defaults and the
// environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("adventure.path", "data/adventure.yaml")
	v.SetDefault("adventure.start_location", 0)

	v.SetDefault("store.backend", "file")
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_prefix", "adventure:")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "adventure.log")
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []string

	if c.Adventure.Path == "" {
		errs = append(errs, "adventure.path must not be empty")
	}
	if c.Adventure.StartLocation < 0 {
		errs = append(errs, fmt.Sprintf("adventure.start_location must be >= 0, got %d", c.Adventure.StartLocation))
	}

	switch c.Store.Backend {
	case "file":
	case "redis":
		if c.Store.RedisAddr == "" {
			errs = append(errs, "store.redis_addr must not be empty for the redis backend")
		}
	default:
		errs = append(errs, fmt.Sprintf("store.backend must be one of [file, redis], got %q", c.Store.Backend))
	}

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.Output == "" {
		return errors.New("logging.output must not be empty")
	}
	return nil
}
