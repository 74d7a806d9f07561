package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerDefaults(t *testing.T) {
	manager, err := NewManager()
	require.NoError(t, err)

	config := manager.GetConfig()
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Equal(t, 0.20, config.Vitals.CriticalDeviation)
	assert.Equal(t, 7, config.Prescription.DefaultDurationDays)
	assert.Empty(t, config.RefData.FormularyPath)

	assert.NoError(t, manager.Validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	valid := Config{
		Logging:      LoggingConfig{Level: "info", Format: "json"},
		Vitals:       VitalsConfig{CriticalDeviation: 0.20},
		Prescription: PrescriptionConfig{DefaultDurationDays: 7},
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"Unknown log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"Unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
		{"Zero critical deviation", func(c *Config) { c.Vitals.CriticalDeviation = 0 }},
		{"Critical deviation at 1", func(c *Config) { c.Vitals.CriticalDeviation = 1 }},
		{"Non-positive duration", func(c *Config) { c.Prescription.DefaultDurationDays = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			tt.mutate(&config)
			manager := &Manager{config: &config}
			assert.Error(t, manager.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	manager := &Manager{config: &Config{
		Logging: LoggingConfig{Level: "debug", Format: "text"},
	}}

	logger := manager.NewLogger()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	// Unparseable levels fall back to info rather than failing startup.
	manager = &Manager{config: &Config{
		Logging: LoggingConfig{Level: "chatty", Format: "json"},
	}}
	logger = manager.NewLogger()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
