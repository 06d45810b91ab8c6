package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Shared validator instance for config struct validation.
var validate = validator.New()

// Load configuration from environment variables and optionally a config
// file. Environment variables take precedence over values from the file.
// Returns a populated Config struct or an error if loading/validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults must be registered for AutomaticEnv to surface the keys.
	v.SetDefault("logging.level", "info")
	v.SetDefault("taxonomy.file", "")

	// Optional config file: entities.yaml in the working directory.
	v.SetConfigName("entities")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with the ENTITIES_ prefix, e.g.
	// ENTITIES_LOGGING_LEVEL, ENTITIES_TAXONOMY_FILE.
	v.SetEnvPrefix("ENTITIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
