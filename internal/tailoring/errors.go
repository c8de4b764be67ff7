package tailoring

import "fmt"

// ParseError represents a model reply that does not contain the expected
// structure. It is handled identically to an upstream service error: the
// engine falls back to the deterministic strategy instead of surfacing it.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// StepError indicates an invalid tailoring-session transition
type StepError struct {
	From    string
	Attempt string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("invalid session transition: %s -> %s", e.From, e.Attempt)
}
