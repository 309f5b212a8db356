// Package scoring implements the dimension scorers, the weighted score
// combiner, and the threshold classifier.
package scoring

import "fmt"

// ConfigurationError indicates the weight table is inconsistent. It is fatal
// at startup and never recoverable per call.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ContractViolationError indicates a required input field was absent or
// malformed. The single scoring call fails; upstream validation is the
// caller's responsibility.
type ContractViolationError struct {
	Message string
	Cause   error
}

func (e *ContractViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("contract violation: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("contract violation: %s", e.Message)
}

func (e *ContractViolationError) Unwrap() error {
	return e.Cause
}
