package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thushan/recap/internal/core/constants"
	"github.com/thushan/recap/internal/core/domain"
	"github.com/thushan/recap/internal/logger"
	"github.com/thushan/recap/internal/util"
	"github.com/thushan/recap/theme"
)

const (
	EnvPrefix     = "RECAP"
	EnvConfigFile = "RECAP_CONFIG_FILE"
	EnvDotEnvFile = "RECAP_ENV_FILE"

	DefaultConfigName = "recap"
	DefaultLogDir     = "./logs"

	maxAttemptsLimit = 10
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Inference: InferenceConfig{
			BaseURL:        constants.DefaultInferenceBaseURL,
			Model:          constants.DefaultModel,
			Timeout:        constants.DefaultRequestTimeout,
			MaxAttempts:    constants.DefaultMaxAttempts,
			RetryDelay:     constants.DefaultRetryDelay,
			ColdStartDelay: constants.DefaultColdStartDelay,
			RetryPolicy:    constants.RetryPolicyAny,
		},
		Output: OutputConfig{
			Locale: constants.DefaultLocale,
		},
		Logging: LoggingConfig{
			Level:      logger.LogLevelWarn,
			Dir:        DefaultLogDir,
			Theme:      "default",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
			FileOutput: false,
		},
	}
}

// Load reads .env, then recap.yaml (if any), then RECAP_* environment variables.
// The credential comes from HF_TOKEN or HUGGINGFACE_API_KEY. A missing credential
// is not an error here, callers decide when it's required.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	cfg := DefaultConfig()
	setDefaults(v, cfg)

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// explicit names, no prefix, first one set wins
	if err := v.BindEnv("credential", constants.EnvHFToken, constants.EnvHuggingFaceAPIKey); err != nil {
		return nil, fmt.Errorf("unable to bind credential env: %w", err)
	}

	if configFile := os.Getenv(EnvConfigFile); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Filename = v.ConfigFileUsed()

	return cfg, nil
}

func loadDotEnv() error {
	path := os.Getenv(EnvDotEnvFile)
	if path == "" {
		path = constants.DefaultEnvFile
	}

	// godotenv never overrides variables already set in the process
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && os.Getenv(EnvDotEnvFile) == "" {
			return nil
		}
		return fmt.Errorf("error loading env file %s: %w", path, err)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("inference.base_url", cfg.Inference.BaseURL)
	v.SetDefault("inference.model", cfg.Inference.Model)
	v.SetDefault("inference.timeout", cfg.Inference.Timeout)
	v.SetDefault("inference.max_attempts", cfg.Inference.MaxAttempts)
	v.SetDefault("inference.retry_delay", cfg.Inference.RetryDelay)
	v.SetDefault("inference.cold_start_delay", cfg.Inference.ColdStartDelay)
	v.SetDefault("inference.retry_policy", cfg.Inference.RetryPolicy)

	v.SetDefault("output.locale", cfg.Output.Locale)
	v.SetDefault("output.error_prefix", cfg.Output.ErrorPrefix)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.dir", cfg.Logging.Dir)
	v.SetDefault("logging.theme", cfg.Logging.Theme)
	v.SetDefault("logging.max_size", cfg.Logging.MaxSize)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
	v.SetDefault("logging.max_age", cfg.Logging.MaxAge)
	v.SetDefault("logging.file_output", cfg.Logging.FileOutput)
}

// Validate checks everything except the credential
func (c *Config) Validate() error {
	inf := c.Inference

	if _, err := util.JoinModelURL(inf.BaseURL, inf.Model); err != nil {
		return domain.NewConfigValidationError("inference.base_url/model", inf.BaseURL+" "+inf.Model, err.Error())
	}
	if inf.MaxAttempts < 1 || inf.MaxAttempts > maxAttemptsLimit {
		return domain.NewConfigValidationError("inference.max_attempts", inf.MaxAttempts,
			fmt.Sprintf("must be between 1 and %d", maxAttemptsLimit))
	}
	if inf.Timeout <= 0 {
		return domain.NewConfigValidationError("inference.timeout", inf.Timeout, "must be positive")
	}
	if inf.RetryDelay < 0 || inf.RetryDelay > constants.MaxRetryDelay {
		return domain.NewConfigValidationError("inference.retry_delay", inf.RetryDelay,
			fmt.Sprintf("must be between 0 and %s", constants.MaxRetryDelay))
	}
	if inf.ColdStartDelay < 0 || inf.ColdStartDelay > constants.MaxRetryDelay {
		return domain.NewConfigValidationError("inference.cold_start_delay", inf.ColdStartDelay,
			fmt.Sprintf("must be between 0 and %s", constants.MaxRetryDelay))
	}
	switch inf.RetryPolicy {
	case constants.RetryPolicyAny, constants.RetryPolicyColdStart:
	default:
		return domain.NewConfigValidationError("inference.retry_policy", inf.RetryPolicy,
			fmt.Sprintf("must be %q or %q", constants.RetryPolicyAny, constants.RetryPolicyColdStart))
	}

	switch c.Output.Locale {
	case constants.LocaleEnglish, constants.LocaleLatvian:
	default:
		return domain.NewConfigValidationError("output.locale", c.Output.Locale,
			fmt.Sprintf("must be %q or %q", constants.LocaleEnglish, constants.LocaleLatvian))
	}

	if !logger.IsValidLevel(c.Logging.Level) {
		return domain.NewConfigValidationError("logging.level", c.Logging.Level, "must be debug, info, warn or error")
	}
	if !theme.IsKnown(c.Logging.Theme) {
		return domain.NewConfigValidationError("logging.theme", c.Logging.Theme, "must be default, dark or light")
	}
	if c.Logging.FileOutput && c.Logging.Dir == "" {
		return domain.NewConfigValidationError("logging.dir", c.Logging.Dir, "required when file_output is enabled")
	}

	return nil
}

// RequireCredential is checked before any network activity
func (c *Config) RequireCredential() error {
	if !c.Credential.IsSet() {
		return domain.ErrMissingCredential
	}
	return nil
}

// LoggerConfig maps logging settings onto the logger package
func (c *Config) LoggerConfig() *logger.Config {
	return &logger.Config{
		Level:      c.Logging.Level,
		LogDir:     c.Logging.Dir,
		Theme:      c.Logging.Theme,
		MaxSize:    c.Logging.MaxSize,
		MaxBackups: c.Logging.MaxBackups,
		MaxAge:     c.Logging.MaxAge,
		FileOutput: c.Logging.FileOutput,
	}
}

// Dump writes the effective configuration as YAML with the credential redacted
func (c *Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("unable to encode config: %w", err)
	}
	return enc.Close()
}
