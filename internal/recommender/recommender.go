package recommender

import (
	"context"
	"math/rand"
)

const (
	// DefaultN is the page size for the main recommendations view.
	DefaultN = 16
	// DefaultContextN is the smaller page size for contextual
	// ("related to this recipe") recommendations.
	DefaultContextN = 4
)

// PopularityStore ranks a candidate pool by the fixed popularity score
// rating * ln(num_ratings + 1). Satisfied by repository.RecipeRepository.
type PopularityStore interface {
	TopByWeightedRating(ctx context.Context, pool []int64, n int) ([]int64, error)
}

// CoRatingStore ranks a candidate pool by co-rated counts against the
// user's relevant set. Satisfied by repository.ReviewRepository.
type CoRatingStore interface {
	CoRatedRecipeIDs(ctx context.Context, relevant, pool []int64, n int) ([]int64, error)
}

// Recommender dispatches recommendation requests to a ranking strategy.
// Every call is request-scoped and synchronous: a bounded sequence of
// store reads, no state kept between calls.
type Recommender struct {
	candidates CandidateStore
	popularity PopularityStore
	coRatings  CoRatingStore
}

func New(candidates CandidateStore, popularity PopularityStore, coRatings CoRatingStore) *Recommender {
	return &Recommender{
		candidates: candidates,
		popularity: popularity,
		coRatings:  coRatings,
	}
}

// Options tunes a single Recommend call. A nil Relevant/Unknown means
// "query the store"; a non-nil value (even empty) is used as-is.
type Options struct {
	Relevant []int64
	Unknown  []int64
	N        int
}

// Recommend resolves the user's candidate sets and ranks min(N, pool)
// unknown recipes with the given strategy. Every returned recipe comes
// from the unknown pool, so a recipe the user already rated or saw can
// never be recommended back to them.
func (r *Recommender) Recommend(ctx context.Context, user string, strategy Strategy, opts Options) ([]int64, error) {
	relevant, unknown, err := r.resolveCandidates(ctx, user, opts.Relevant, opts.Unknown)
	if err != nil {
		return nil, err
	}
	n := opts.N
	if n <= 0 {
		n = DefaultN
	}
	return r.rank(ctx, strategy, relevant, unknown, n)
}

// RecommendContextual is Recommend seeded by a recipe of current interest.
// Today the focal recipe only shrinks the page size; no strategy biases
// its ranking toward it yet. The parameter stays explicit so that a
// context-aware strategy can pick it up without an interface change.
func (r *Recommender) RecommendContextual(ctx context.Context, user string, focalRecipeID int64, strategy Strategy, opts Options) ([]int64, error) {
	_ = focalRecipeID
	if opts.N <= 0 {
		opts.N = DefaultContextN
	}
	return r.Recommend(ctx, user, strategy, opts)
}

func (r *Recommender) rank(ctx context.Context, strategy Strategy, relevant, unknown []int64, n int) ([]int64, error) {
	switch strategy {
	case StrategyTopPopularity:
		return r.rankTopPopularity(ctx, unknown, n)
	case StrategyPairs:
		return r.rankPairs(ctx, relevant, unknown, n)
	default:
		return r.rankRandom(unknown, n)
	}
}

// rankRandom draws a uniform sample without replacement. Asking for more
// than the pool holds is an explicit error, never a short list.
func (r *Recommender) rankRandom(unknown []int64, n int) ([]int64, error) {
	if n > len(unknown) {
		return nil, &InsufficientCandidatesError{Requested: n, Available: len(unknown)}
	}
	picked := make([]int64, 0, n)
	for _, i := range rand.Perm(len(unknown))[:n] {
		picked = append(picked, unknown[i])
	}
	return picked, nil
}

// rankTopPopularity is deterministic for a fixed catalog: the score only
// depends on stored aggregates, so consecutive calls agree.
func (r *Recommender) rankTopPopularity(ctx context.Context, unknown []int64, n int) ([]int64, error) {
	return r.popularity.TopByWeightedRating(ctx, unknown, n)
}

// rankPairs ranks by the co-rating signal "raters who liked what you liked
// also liked these". With no positive history there is nothing to join on,
// so it degrades to the popularity ranking (cold start).
func (r *Recommender) rankPairs(ctx context.Context, relevant, unknown []int64, n int) ([]int64, error) {
	if len(relevant) == 0 {
		return r.rankTopPopularity(ctx, unknown, n)
	}
	return r.coRatings.CoRatedRecipeIDs(ctx, relevant, unknown, n)
}
