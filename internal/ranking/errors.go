package ranking

import "fmt"

// InsufficientCandidatesError indicates a comparison was requested with fewer
// than two resolvable candidates. It is surfaced to the caller and not
// retried.
type InsufficientCandidatesError struct {
	Got int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("comparison requires at least 2 candidates, got %d", e.Got)
}
