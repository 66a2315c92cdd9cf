package repository

import (
	"context"
	"errors"

	"recipehub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	RelevantRecipeIDs(ctx context.Context, author string) ([]int64, error)
	SeenRecipeIDs(ctx context.Context, author string) ([]int64, error)
	UnknownRecipeIDs(ctx context.Context, author string) ([]int64, error)
	CoRatedRecipeIDs(ctx context.Context, relevant, pool []int64, n int) ([]int64, error)
	RatingFor(ctx context.Context, author string, recipeID int64) (int, error)
	Upsert(ctx context.Context, recipeID int64, author string, rating int) error
	UpsertBatch(ctx context.Context, reviews []models.Review) error
	ClearForAuthor(ctx context.Context, author string) error
	CountRated(ctx context.Context, author string) (int64, error)
	CountSeen(ctx context.Context, author string) (int64, error)
	ActiveAuthors(ctx context.Context, minReviews, limit int) ([]string, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// RelevantRecipeIDs returns the recipes the user rated positively.
func (r *reviewRepository) RelevantRecipeIDs(ctx context.Context, author string) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("author = ? AND rating > 0", author).
		Pluck("recipe_id", &ids).Error
	return ids, storageErr("list relevant recipes", err)
}

// SeenRecipeIDs returns the recipes already shown to the user but never
// rated (the rating-0 sentinel rows).
func (r *reviewRepository) SeenRecipeIDs(ctx context.Context, author string) ([]int64, error) {
	ids := []int64{}
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("author = ? AND rating = 0", author).
		Pluck("recipe_id", &ids).Error
	return ids, storageErr("list seen recipes", err)
}

// UnknownRecipeIDs returns every catalog recipe with no review row for the
// user. The complement is computed inside the database so the full rated
// set is never materialized client-side.
func (r *reviewRepository) UnknownRecipeIDs(ctx context.Context, author string) ([]int64, error) {
	ids := []int64{}
	reviewed := r.db.Model(&models.Review{}).
		Select("recipe_id").
		Where("author = ?", author)

	err := r.db.WithContext(ctx).
		Model(&models.Recipe{}).
		Where("id NOT IN (?)", reviewed).
		Pluck("id", &ids).Error
	return ids, storageErr("list unknown recipes", err)
}

// CoRatedRecipeIDs ranks the pool recipes by how many raters liked (>3)
// both a relevant recipe and the pool recipe, descending. A recipe with no
// co-raters does not appear at all, so the result may be shorter than n.
// The target user never contributes rows: their reviews on pool recipes do
// not exist by construction, so the self-join only matches other raters.
func (r *reviewRepository) CoRatedRecipeIDs(ctx context.Context, relevant, pool []int64, n int) ([]int64, error) {
	ids := []int64{}
	if len(relevant) == 0 || len(pool) == 0 || n <= 0 {
		return ids, nil
	}
	err := r.db.WithContext(ctx).
		Table("reviews AS r1").
		Select("r2.recipe_id").
		Joins("JOIN reviews AS r2 ON r1.author = r2.author").
		Where("r1.recipe_id IN ?", relevant).
		Where("r2.recipe_id IN ?", pool).
		Where("r1.recipe_id <> r2.recipe_id").
		Where("r1.rating > 3 AND r2.rating > 3").
		Group("r2.recipe_id").
		Order("count(*) DESC").
		Limit(n).
		Pluck("r2.recipe_id", &ids).Error
	return ids, storageErr("rank co-rated recipes", err)
}

// RatingFor returns the user's rating for a recipe, 0 when no review row
// exists. Absence of a row is not an error here: the evaluation harness
// treats unreviewed recommendations as relevance 0.
func (r *reviewRepository) RatingFor(ctx context.Context, author string, recipeID int64) (int, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("author = ? AND recipe_id = ?", author, recipeID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storageErr("get rating", err)
	}
	return review.Rating, nil
}

// Upsert inserts or overwrites the user's review for a recipe. Last write
// wins: concurrent upserts for the same (recipe, author) pair may
// interleave and the final rating is whichever write lands last. That race
// is accepted; there is no optimistic locking on reviews.
func (r *reviewRepository) Upsert(ctx context.Context, recipeID int64, author string, rating int) error {
	review := models.Review{
		RecipeID: recipeID,
		Author:   author,
		Rating:   rating,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "author"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		Create(&review).Error
	return storageErr("upsert review", err)
}

// UpsertBatch bulk-inserts reviews from the ETL sync, overwriting on the
// (recipe_id, author) key like Upsert.
func (r *reviewRepository) UpsertBatch(ctx context.Context, reviews []models.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "author"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
		}).
		CreateInBatches(reviews, 500).Error
	return storageErr("upsert review batch", err)
}

// ClearForAuthor deletes every review row for the user at once.
func (r *reviewRepository) ClearForAuthor(ctx context.Context, author string) error {
	err := r.db.WithContext(ctx).
		Where("author = ?", author).
		Delete(&models.Review{}).Error
	return storageErr("clear reviews", err)
}

func (r *reviewRepository) CountRated(ctx context.Context, author string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("author = ? AND rating > 0", author).
		Count(&count).Error
	return count, storageErr("count rated", err)
}

func (r *reviewRepository) CountSeen(ctx context.Context, author string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("author = ? AND rating = 0", author).
		Count(&count).Error
	return count, storageErr("count seen", err)
}

// ActiveAuthors returns up to limit user names with at least minReviews
// review rows, the sample the offline evaluation runs over.
func (r *reviewRepository) ActiveAuthors(ctx context.Context, minReviews, limit int) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("(SELECT count(*) FROM reviews WHERE reviews.author = users.name) >= ?", minReviews).
		Limit(limit).
		Pluck("name", &names).Error
	return names, storageErr("list active authors", err)
}
