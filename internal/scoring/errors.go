package scoring

import "fmt"

// DomainError represents a sub-score outside its declared domain. It is a
// caller error, fatal to that candidate but never to the batch; values are
// rejected rather than clamped so upstream bugs surface.
type DomainError struct {
	Cause error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid score domain: %v", e.Cause)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}
