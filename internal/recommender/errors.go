package recommender

import "fmt"

// InsufficientCandidatesError reports that a strategy was asked for more
// recipes than the candidate pool can supply. It is deliberate that this
// is an error instead of a silent truncation: callers that want "as many
// as available" pass a pool-bounded N.
type InsufficientCandidatesError struct {
	Requested int
	Available int
}

func (e *InsufficientCandidatesError) Error() string {
	return fmt.Sprintf("insufficient candidates: requested %d, pool has %d", e.Requested, e.Available)
}
