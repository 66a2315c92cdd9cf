package recommender

import "context"

// CandidateStore is the narrow read surface the partitioner needs.
// Satisfied by repository.ReviewRepository.
type CandidateStore interface {
	RelevantRecipeIDs(ctx context.Context, user string) ([]int64, error)
	SeenRecipeIDs(ctx context.Context, user string) ([]int64, error)
	UnknownRecipeIDs(ctx context.Context, user string) ([]int64, error)
}

// Candidates is the per-request partition of the catalog relative to one
// user. The three sets are pairwise disjoint and together cover every
// recipe known at query time: Relevant holds positive ratings, Seen holds
// the rating-0 sentinel rows, Unknown holds everything without a review.
// A user with no history is not an error; they simply get empty Relevant
// and Seen sets and the whole catalog in Unknown.
type Candidates struct {
	Relevant []int64
	Seen     []int64
	Unknown  []int64
}

// Partition queries the store for the full three-way split. Each set is a
// snapshot, not a live view.
func (r *Recommender) Partition(ctx context.Context, user string) (Candidates, error) {
	relevant, err := r.candidates.RelevantRecipeIDs(ctx, user)
	if err != nil {
		return Candidates{}, err
	}
	seen, err := r.candidates.SeenRecipeIDs(ctx, user)
	if err != nil {
		return Candidates{}, err
	}
	unknown, err := r.candidates.UnknownRecipeIDs(ctx, user)
	if err != nil {
		return Candidates{}, err
	}
	return Candidates{Relevant: relevant, Seen: seen, Unknown: unknown}, nil
}

// resolveCandidates fills in the relevant and unknown sides, querying the
// store only for the sides the caller did not override. The evaluation
// harness relies on this: it injects its train/test split and the store
// must not be re-queried for those sides, not even when an override is
// empty but non-nil.
func (r *Recommender) resolveCandidates(ctx context.Context, user string, relevantOverride, unknownOverride []int64) (relevant, unknown []int64, err error) {
	relevant = relevantOverride
	if relevant == nil {
		relevant, err = r.candidates.RelevantRecipeIDs(ctx, user)
		if err != nil {
			return nil, nil, err
		}
	}
	unknown = unknownOverride
	if unknown == nil {
		unknown, err = r.candidates.UnknownRecipeIDs(ctx, user)
		if err != nil {
			return nil, nil, err
		}
	}
	return relevant, unknown, nil
}
