package constants

import "time"

const (
	// DefaultInferenceBaseURL is the Hugging Face router path models are appended to
	DefaultInferenceBaseURL = "https://router.huggingface.co/hf-inference/models"
	DefaultModel            = "HuggingFaceH4/zephyr-7b-beta"

	// DefaultRequestTimeout bounds every attempt, not the whole call
	DefaultRequestTimeout = 60 * time.Second

	DefaultErrorPrefix = "Error"
)

// Credential sources, checked in order
const (
	EnvHFToken           = "HF_TOKEN"
	EnvHuggingFaceAPIKey = "HUGGINGFACE_API_KEY"
	DefaultEnvFile       = ".env"
)
