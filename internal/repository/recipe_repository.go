package repository

import (
	"context"
	"strings"

	"recipehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchLimit caps title search results.
const searchLimit = 15

// SearchResult is the trimmed row returned by title search.
type SearchResult struct {
	ID    int64  `json:"recipe_id"`
	Title string `json:"title"`
}

type RecipeRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Recipe, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Recipe, error)
	SearchByTitle(ctx context.Context, query string) ([]SearchResult, error)
	TopByWeightedRating(ctx context.Context, pool []int64, n int) ([]int64, error)
	UpsertBatch(ctx context.Context, recipes []models.Recipe) error
	Count(ctx context.Context) (int64, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, storageErr("get recipe", err)
	}
	return &recipe, nil
}

// GetByIDs batch-fetches recipes. Duplicate IDs collapse to one record and
// result order is not guaranteed to match the input.
func (r *recipeRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if len(ids) == 0 {
		return recipes, nil
	}
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&recipes).Error
	return recipes, storageErr("get recipes", err)
}

// SearchByTitle performs a case-insensitive substring match on title,
// ordered by rating volume descending and capped to searchLimit rows.
func (r *recipeRepository) SearchByTitle(ctx context.Context, query string) ([]SearchResult, error) {
	results := []SearchResult{}
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("id", "title").
		Where("title ILIKE ?", "%"+query+"%").
		Order("num_ratings DESC").
		Limit(searchLimit).
		Scan(&results).Error
	return results, storageErr("search recipes", err)
}

// TopByWeightedRating ranks the pool by rating * ln(num_ratings + 1)
// descending and returns the top n IDs. The log dampens volume so popular
// recipes cannot win on count alone; ties fall back to storage order.
func (r *recipeRepository) TopByWeightedRating(ctx context.Context, pool []int64, n int) ([]int64, error) {
	ids := []int64{}
	if len(pool) == 0 || n <= 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id IN ?", pool).
		Order("(rating * ln(num_ratings + 1)) DESC").
		Limit(n).
		Pluck("id", &ids).Error
	return ids, storageErr("rank by popularity", err)
}

// UpsertBatch bulk-loads catalog records from the ETL sync, replacing any
// existing row with the same upstream ID.
func (r *recipeRepository) UpsertBatch(ctx context.Context, recipes []models.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(recipes, 500).Error
	return storageErr("upsert recipe batch", err)
}

func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Recipe{}).Count(&count).Error
	return count, storageErr("count recipes", err)
}
