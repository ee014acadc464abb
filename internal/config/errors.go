package config

import "fmt"

// ValidationError represents a configuration error detected at load time.
// Configuration problems are fatal to the whole run, never per-candidate.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}
