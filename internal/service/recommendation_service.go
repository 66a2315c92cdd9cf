package service

import (
	"context"
	"errors"
	"fmt"

	"recipehub/internal/dto"
	"recipehub/internal/models"
	"recipehub/internal/recommender"
	"recipehub/internal/repository"

	"gorm.io/gorm"
)

var ErrRecipeNotFound = errors.New("recipe not found")

// RecommendationEngine is the piece of the ranking engine this service
// drives. Satisfied by recommender.Recommender.
type RecommendationEngine interface {
	Recommend(ctx context.Context, user string, strategy recommender.Strategy, opts recommender.Options) ([]int64, error)
	RecommendContextual(ctx context.Context, user string, focalRecipeID int64, strategy recommender.Strategy, opts recommender.Options) ([]int64, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, user string, strategy recommender.Strategy) (*dto.RecommendationsResponse, error)
	Related(ctx context.Context, user string, recipeID int64, strategy recommender.Strategy) (*dto.RelatedResponse, error)
	SubmitRatings(ctx context.Context, user string, entries []dto.RatingEntry) error
	Reset(ctx context.Context, user string) error
}

type recommendationService struct {
	engine     RecommendationEngine
	recipeRepo repository.RecipeRepository
	reviewRepo repository.ReviewRepository
}

func NewRecommendationService(
	engine RecommendationEngine,
	recipeRepo repository.RecipeRepository,
	reviewRepo repository.ReviewRepository,
) RecommendationService {
	return &recommendationService{
		engine:     engine,
		recipeRepo: recipeRepo,
		reviewRepo: reviewRepo,
	}
}

// Recommend produces one page of recommendations and records each returned
// recipe as seen (rating 0) so it is never recommended to the user again.
// The seen-mark upsert is idempotent: recommending the same recipe twice
// keeps a single row, and a later real rating overwrites the 0.
func (s *recommendationService) Recommend(ctx context.Context, user string, strategy recommender.Strategy) (*dto.RecommendationsResponse, error) {
	ids, err := s.engine.Recommend(ctx, user, strategy, recommender.Options{})
	if err != nil {
		return nil, err
	}
	if err := s.markSeen(ctx, user, ids); err != nil {
		return nil, err
	}
	return s.buildPage(ctx, user, strategy, ids)
}

// Related produces the short contextual page shown on a recipe's detail
// view. The focal recipe must exist; beyond that it only shrinks the page
// size today.
func (s *recommendationService) Related(ctx context.Context, user string, recipeID int64, strategy recommender.Strategy) (*dto.RelatedResponse, error) {
	focal, err := s.recipeRepo.GetByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	ids, err := s.engine.RecommendContextual(ctx, user, recipeID, strategy, recommender.Options{})
	if err != nil {
		return nil, err
	}
	if err := s.markSeen(ctx, user, ids); err != nil {
		return nil, err
	}

	page, err := s.buildPage(ctx, user, strategy, ids)
	if err != nil {
		return nil, err
	}
	return &dto.RelatedResponse{
		Strategy:   strategy.String(),
		Recipe:     dto.FromModelToRecipeResponse(focal),
		Related:    page.Recipes,
		RatedCount: page.RatedCount,
		SeenCount:  page.SeenCount,
	}, nil
}

// SubmitRatings upserts the explicit ratings from a page submission.
// Rating 0 means "did not rate" and is skipped; the seen-mark row from the
// recommendation stays in place for those.
func (s *recommendationService) SubmitRatings(ctx context.Context, user string, entries []dto.RatingEntry) error {
	for _, entry := range entries {
		if entry.Rating <= 0 {
			continue
		}
		if entry.Rating > 5 {
			return fmt.Errorf("rating %d for recipe %d out of range", entry.Rating, entry.RecipeID)
		}
		if err := s.reviewRepo.Upsert(ctx, entry.RecipeID, user, entry.Rating); err != nil {
			return err
		}
	}
	return nil
}

// Reset wipes the user's whole review history, rated and seen alike.
func (s *recommendationService) Reset(ctx context.Context, user string) error {
	return s.reviewRepo.ClearForAuthor(ctx, user)
}

func (s *recommendationService) markSeen(ctx context.Context, user string, ids []int64) error {
	for _, id := range ids {
		if err := s.reviewRepo.Upsert(ctx, id, user, 0); err != nil {
			return err
		}
	}
	return nil
}

func (s *recommendationService) buildPage(ctx context.Context, user string, strategy recommender.Strategy, ids []int64) (*dto.RecommendationsResponse, error) {
	recipes, err := s.recipeRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The batch fetch does not preserve ranking order; restore it.
	byID := make(map[int64]*models.Recipe, len(recipes))
	for i := range recipes {
		byID[recipes[i].ID] = &recipes[i]
	}
	ordered := make([]dto.RecipeResponse, 0, len(ids))
	for _, id := range ids {
		if recipe, ok := byID[id]; ok {
			ordered = append(ordered, dto.FromModelToRecipeResponse(recipe))
		}
	}

	rated, err := s.reviewRepo.CountRated(ctx, user)
	if err != nil {
		return nil, err
	}
	seen, err := s.reviewRepo.CountSeen(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.RecommendationsResponse{
		Strategy:   strategy.String(),
		Recipes:    ordered,
		RatedCount: rated,
		SeenCount:  seen,
	}, nil
}
