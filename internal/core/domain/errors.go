package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("HF_TOKEN or HUGGINGFACE_API_KEY not set (environment or .env file)")
	ErrUndecodableBody   = errors.New("response body is not valid JSON")
)

type EndpointError struct {
	Err       error
	Operation string
	URL       string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("%s failed for endpoint %s: %v", e.Operation, e.URL, e.Err)
}

func (e *EndpointError) Unwrap() error {
	return e.Err
}

type ConfigValidationError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *ConfigValidationError) Error() string {
	return fmt.Sprintf("invalid configuration for %s=%v: %s", e.Field, e.Value, e.Reason)
}

type InputFileError struct {
	Err  error
	Path string
}

func (e *InputFileError) Error() string {
	return fmt.Sprintf("input file '%s' could not be read: %v", e.Path, e.Err)
}

func (e *InputFileError) Unwrap() error {
	return e.Err
}

// InferenceError describes a call that never reached a 200.
// The client renders it into the output text instead of returning it.
type InferenceError struct {
	Model      string
	Body       string
	StatusCode int
	Attempts   int
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference for %s failed after %d attempt(s): HTTP %d", e.Model, e.Attempts, e.StatusCode)
}

func NewInputFileError(path string, err error) *InputFileError {
	return &InputFileError{
		Path: path,
		Err:  err,
	}
}

func NewConfigValidationError(field string, value interface{}, reason string) *ConfigValidationError {
	return &ConfigValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}
