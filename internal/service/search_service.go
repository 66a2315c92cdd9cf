package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipehub/internal/cache"
	"recipehub/internal/repository"
)

type SearchService interface {
	Search(ctx context.Context, query string) ([]repository.SearchResult, error)
}

type searchService struct {
	recipeRepo repository.RecipeRepository
	cache      cache.Store
	cacheTTL   time.Duration
}

// NewSearchService builds the title-search service. A nil cache disables
// caching and every query hits the database.
func NewSearchService(recipeRepo repository.RecipeRepository, cacheStore cache.Store, cacheTTL time.Duration) SearchService {
	return &searchService{
		recipeRepo: recipeRepo,
		cache:      cacheStore,
		cacheTTL:   cacheTTL,
	}
}

// Search runs the bounded case-insensitive title search, read-through
// cached per normalized query. Cache failures are not fatal; the database
// result still serves the request.
func (s *searchService) Search(ctx context.Context, query string) ([]repository.SearchResult, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []repository.SearchResult{}, nil
	}

	key := fmt.Sprintf("search:recipes:%s", query)
	if s.cache != nil {
		var cached []repository.SearchResult
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	results, err := s.recipeRepo.SearchByTitle(ctx, query)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, results, s.cacheTTL)
	}
	return results, nil
}
