package embedding

import "fmt"

// EmbeddingError represents a failure of the external embedding provider.
// The adapter never substitutes zero vectors; callers treat the affected
// candidate as failed rather than scoring garbage.
type EmbeddingError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *EmbeddingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("embedding unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("embedding unavailable: %s", e.Message)
}

func (e *EmbeddingError) Unwrap() error {
	return e.Cause
}
