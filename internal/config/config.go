// internal/config/config.go - Configuration management
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Decoder DecoderConfig `mapstructure:"decoder"`
	Labels  LabelsConfig  `mapstructure:"labels"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DecoderConfig contains tile decoding configuration
type DecoderConfig struct {
	Extent int `mapstructure:"extent"`
}

// LabelsConfig contains label anchor extraction configuration
type LabelsConfig struct {
	LayerFilter []string `mapstructure:"layer_filter"`
	Simplify    bool     `mapstructure:"simplify"`
	Tolerance   float64  `mapstructure:"tolerance"`
}

// OutputConfig contains output formatting configuration
type OutputConfig struct {
	Format      string `mapstructure:"format"`
	File        string `mapstructure:"file"`
	Compression bool   `mapstructure:"compression"`
	Pretty      bool   `mapstructure:"pretty"`
	Metadata    bool   `mapstructure:"metadata"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load loads configuration from various sources
func Load() (*Config, error) {
	setDefaults()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults configures default values for all configuration options
func setDefaults() {
	// Decoder defaults
	viper.SetDefault("decoder.extent", 4096)

	// Labels defaults
	viper.SetDefault("labels.simplify", false)
	viper.SetDefault("labels.tolerance", 1.0)

	// Output defaults
	viper.SetDefault("output.format", "geojson")
	viper.SetDefault("output.pretty", true)
	viper.SetDefault("output.compression", false)
	viper.SetDefault("output.metadata", false)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.verbose", false)
}
