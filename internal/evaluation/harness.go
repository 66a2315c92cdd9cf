package evaluation

import (
	"context"
	"fmt"
	"math/rand"

	"recipehub/internal/recommender"
)

const (
	// trainFraction of a user's relevant recipes feeds the strategy; the
	// held-out remainder is hidden in the candidate pool.
	trainFraction = 0.8
	// evalN is the fixed ranking depth scored per user.
	evalN = 20
)

// Engine is the recommendation entrypoint under evaluation.
type Engine interface {
	Recommend(ctx context.Context, user string, strategy recommender.Strategy, opts recommender.Options) ([]int64, error)
}

// RatingStore supplies the candidate sets and ground-truth ratings.
// Satisfied by repository.ReviewRepository.
type RatingStore interface {
	RelevantRecipeIDs(ctx context.Context, user string) ([]int64, error)
	SeenRecipeIDs(ctx context.Context, user string) ([]int64, error)
	UnknownRecipeIDs(ctx context.Context, user string) ([]int64, error)
	RatingFor(ctx context.Context, user string, recipeID int64) (int, error)
}

// Harness measures offline ranking quality with a per-user held-out split.
// It is a long-running batch job, not latency-sensitive, and runs its user
// sample sequentially.
type Harness struct {
	engine Engine
	store  RatingStore
}

func NewHarness(engine Engine, store RatingStore) *Harness {
	return &Harness{engine: engine, store: store}
}

// UserScore is one user's evaluation result.
type UserScore struct {
	User  string
	Score float64
}

// Report aggregates a sample run. Mean is the system's sole offline
// quality metric for comparing strategies.
type Report struct {
	Strategy recommender.Strategy
	Scores   []UserScore
	Mean     float64
}

// EvaluateUser hides 20% of the user's positively rated recipes inside the
// candidate pool, asks the strategy for a top-20 ranking of that pool, and
// scores the ranking with NDCG against the user's true ratings. Recipes
// the user never reviewed count as relevance 0.
func (h *Harness) EvaluateUser(ctx context.Context, user string, strategy recommender.Strategy) (float64, error) {
	relevant, err := h.store.RelevantRecipeIDs(ctx, user)
	if err != nil {
		return 0, err
	}
	seen, err := h.store.SeenRecipeIDs(ctx, user)
	if err != nil {
		return 0, err
	}
	unknown, err := h.store.UnknownRecipeIDs(ctx, user)
	if err != nil {
		return 0, err
	}

	rand.Shuffle(len(relevant), func(i, j int) {
		relevant[i], relevant[j] = relevant[j], relevant[i]
	})
	cut := int(float64(len(relevant)) * trainFraction)
	training := relevant[:cut]

	// The test pool is the held-out relevant recipes plus everything the
	// strategy would normally be allowed to draw from.
	pool := make([]int64, 0, len(relevant)-cut+len(seen)+len(unknown))
	pool = append(pool, relevant[cut:]...)
	pool = append(pool, seen...)
	pool = append(pool, unknown...)

	ranked, err := h.engine.Recommend(ctx, user, strategy, recommender.Options{
		Relevant: training,
		Unknown:  pool,
		N:        evalN,
	})
	if err != nil {
		return 0, fmt.Errorf("recommend for %q: %w", user, err)
	}

	relevances := make([]int, 0, len(ranked))
	for _, recipeID := range ranked {
		rating, err := h.store.RatingFor(ctx, user, recipeID)
		if err != nil {
			return 0, err
		}
		relevances = append(relevances, rating)
	}
	return NDCG(relevances), nil
}

// EvaluateSample scores each user in turn and reports the mean. Any
// per-user failure aborts the run; there is no partial aggregation.
func (h *Harness) EvaluateSample(ctx context.Context, users []string, strategy recommender.Strategy) (*Report, error) {
	report := &Report{Strategy: strategy, Scores: make([]UserScore, 0, len(users))}
	var sum float64
	for _, user := range users {
		score, err := h.EvaluateUser(ctx, user, strategy)
		if err != nil {
			return nil, err
		}
		report.Scores = append(report.Scores, UserScore{User: user, Score: score})
		sum += score
	}
	if len(report.Scores) > 0 {
		report.Mean = sum / float64(len(report.Scores))
	}
	return report, nil
}
