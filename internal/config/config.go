package config

// Config holds all settings for the entities demo binary.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"  validate:"required"`
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy"`
}

// LoggingConfig contains structured-logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// TaxonomyConfig points at an optional vocabulary override file. When File
// is empty the built-in vocabulary applies.
type TaxonomyConfig struct {
	File string `mapstructure:"file"`
}
