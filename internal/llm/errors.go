package llm

import "fmt"

// ConfigError indicates the client cannot be constructed at all, most
// often a missing API key. It is fatal: callers must not fall back to a
// degraded strategy, they must surface it.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("llm config error: %s", e.Message)
}

// APICallError represents a failed call to the text-generation service.
// Non-fatal: strategy selectors convert it into a fallback.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}
