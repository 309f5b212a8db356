package explanation

import "fmt"

// CollaboratorError represents a failed narrative generation call: timeout,
// transport failure, or malformed output. The engine recovers it locally with
// the deterministic fallback.
type CollaboratorError struct {
	Message string
	Cause   error
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("collaborator failure: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("collaborator failure: %s", e.Message)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}
