package config

import (
	"time"

	"github.com/thushan/recap/internal/core/domain"
)

// Config holds all configuration for the application
type Config struct {
	Filename   string            `yaml:"-" mapstructure:"-"`
	Credential domain.Credential `yaml:"credential" mapstructure:"credential"`
	Logging    LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Output     OutputConfig      `yaml:"output" mapstructure:"output"`
	Inference  InferenceConfig   `yaml:"inference" mapstructure:"inference"`
}

// InferenceConfig holds the endpoint and retry behaviour for model calls
type InferenceConfig struct {
	BaseURL        string        `yaml:"base_url" mapstructure:"base_url"`
	Model          string        `yaml:"model" mapstructure:"model"`
	RetryPolicy    string        `yaml:"retry_policy" mapstructure:"retry_policy"`
	Timeout        time.Duration `yaml:"timeout" mapstructure:"timeout"`
	RetryDelay     time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
	ColdStartDelay time.Duration `yaml:"cold_start_delay" mapstructure:"cold_start_delay"`
	MaxAttempts    int           `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// OutputConfig controls how results are presented
type OutputConfig struct {
	Locale string `yaml:"locale" mapstructure:"locale"`
	// ErrorPrefix overrides the locale's prefix for errors embedded in results
	ErrorPrefix string `yaml:"error_prefix" mapstructure:"error_prefix"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Dir        string `yaml:"dir" mapstructure:"dir"`
	Theme      string `yaml:"theme" mapstructure:"theme"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
	FileOutput bool   `yaml:"file_output" mapstructure:"file_output"`
}
