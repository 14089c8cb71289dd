package inference

import (
	"time"

	"github.com/thushan/recap/internal/core/constants"
	"github.com/thushan/recap/internal/core/domain"
)

// Config is everything the client needs, passed in at construction so tests
// can point it at a local server without touching the environment.
type Config struct {
	BaseURL        string
	Credential     domain.Credential
	RetryPolicy    string
	ErrorPrefix    string
	Timeout        time.Duration
	RetryDelay     time.Duration
	ColdStartDelay time.Duration
	MaxAttempts    int
}

func DefaultConfig() Config {
	return Config{
		BaseURL:        constants.DefaultInferenceBaseURL,
		RetryPolicy:    constants.RetryPolicyAny,
		ErrorPrefix:    constants.DefaultErrorPrefix,
		Timeout:        constants.DefaultRequestTimeout,
		RetryDelay:     constants.DefaultRetryDelay,
		ColdStartDelay: constants.DefaultColdStartDelay,
		MaxAttempts:    constants.DefaultMaxAttempts,
	}
}
