package constants

import "time"

// Retry constants for the inference client. Delays are fixed, never exponential.
const (
	// DefaultMaxAttempts counts the first request, so 3 means 2 retries
	DefaultMaxAttempts = 3

	// DefaultRetryDelay applies to non-200, non-503 responses when the policy retries them
	DefaultRetryDelay = 1500 * time.Millisecond

	// DefaultColdStartDelay applies to 503, which the endpoint returns while a model loads
	DefaultColdStartDelay = 5 * time.Second

	// MaxRetryDelay caps any configured delay so a typo can't hang the CLI for hours
	MaxRetryDelay = 2 * time.Minute
)

const (
	// RetryPolicyAny retries every non-200 status
	RetryPolicyAny = "any"
	// RetryPolicyColdStart retries 503 only and returns any other status immediately
	RetryPolicyColdStart = "cold-start"
)
