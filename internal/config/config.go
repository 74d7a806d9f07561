// Package config loads engine configuration from a config file,
// environment variables and defaults using Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all engine settings.
type Config struct {
	Logging      LoggingConfig      `mapstructure:"logging"`
	Vitals       VitalsConfig       `mapstructure:"vitals"`
	Prescription PrescriptionConfig `mapstructure:"prescription"`
	RefData      RefDataConfig      `mapstructure:"refdata"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// VitalsConfig tunes the vitals classifier.
type VitalsConfig struct {
	// CriticalDeviation is the fraction beyond a normal-range bound at
	// which a warning escalates to critical.
	CriticalDeviation float64 `mapstructure:"critical_deviation"`
}

// PrescriptionConfig tunes prescription sessions.
type PrescriptionConfig struct {
	// DefaultDurationDays is the treatment duration for ad-hoc medication
	// adds; template applies use the template's own duration.
	DefaultDurationDays int `mapstructure:"default_duration_days"`
}

// RefDataConfig points at optional reference-data overrides.
type RefDataConfig struct {
	// FormularyPath overrides the embedded formulary when set.
	FormularyPath string `mapstructure:"formulary_path"`
}

// Manager loads and validates configuration using Viper.
type Manager struct {
	config *Config
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from various sources.
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/pedcalc/")

	viper.SetEnvPrefix("PEDCALC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values.
func (m *Manager) setDefaults() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	viper.SetDefault("vitals.critical_deviation", 0.20)

	viper.SetDefault("prescription.default_duration_days", 7)

	viper.SetDefault("refdata.formulary_path", "")
}

// GetConfig returns the complete configuration.
func (m *Manager) GetConfig() *Config {
	return m.config
}

// Validate validates the configuration.
func (m *Manager) Validate() error {
	config := m.config

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}
	if config.Logging.Format != "json" && config.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", config.Logging.Format)
	}

	if config.Vitals.CriticalDeviation <= 0 || config.Vitals.CriticalDeviation >= 1 {
		return fmt.Errorf("vitals critical deviation must be in (0, 1): %g", config.Vitals.CriticalDeviation)
	}

	if config.Prescription.DefaultDurationDays <= 0 {
		return fmt.Errorf("default treatment duration must be positive: %d", config.Prescription.DefaultDurationDays)
	}

	return nil
}

// NewLogger builds a logrus logger from the logging configuration.
func (m *Manager) NewLogger() *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(m.config.Logging.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if m.config.Logging.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
