package ports

import (
	"context"
)

// InferenceClient sends a prompt to a hosted model and returns displayable text.
// Remote and decoding failures come back as text; the error is reserved for
// transport failures and cancellation.
type InferenceClient interface {
	Query(ctx context.Context, model, prompt string) (string, error)
}
