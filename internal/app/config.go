package app

import (
	"github.com/thushan/recap/internal/adapter/inference"
	"github.com/thushan/recap/internal/config"
)

// inferenceConfig maps the loaded configuration onto the client, the error
// prefix follows the locale unless overridden
func inferenceConfig(cfg *config.Config, msgs Messages) inference.Config {
	prefix := cfg.Output.ErrorPrefix
	if prefix == "" {
		prefix = msgs.ErrorPrefix
	}

	return inference.Config{
		BaseURL:        cfg.Inference.BaseURL,
		Credential:     cfg.Credential,
		RetryPolicy:    cfg.Inference.RetryPolicy,
		ErrorPrefix:    prefix,
		Timeout:        cfg.Inference.Timeout,
		RetryDelay:     cfg.Inference.RetryDelay,
		ColdStartDelay: cfg.Inference.ColdStartDelay,
		MaxAttempts:    cfg.Inference.MaxAttempts,
	}
}
