package foodcom

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"recipehub/internal/models"
	"recipehub/internal/repository"
)

const (
	recipesPerPage   = 10 // confirmed page size of the collection endpoint
	recipeBatchSize  = 1000
	defaultWorkers   = 8
	defaultMaxTotal  = 100000
	defaultCollectID = 17
)

// SyncConfig holds configuration for the sync service
type SyncConfig struct {
	BaseURL        string
	CollectionID   int
	MaxRecipes     int
	WorkerCount    int
	CheckpointPath string
}

// SyncService pulls the recipe catalog and its reviews from food.com into
// the local store. Recipe paging is sequential with a resumable
// checkpoint; review fetching fans out over a worker pool.
type SyncService struct {
	client     *Client
	recipeRepo repository.RecipeRepository
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	config     SyncConfig
}

// NewSyncService creates a new sync service instance
func NewSyncService(config SyncConfig, recipeRepo repository.RecipeRepository, reviewRepo repository.ReviewRepository, userRepo repository.UserRepository) *SyncService {
	if config.CollectionID == 0 {
		config.CollectionID = defaultCollectID
	}
	if config.MaxRecipes == 0 {
		config.MaxRecipes = defaultMaxTotal
	}
	if config.WorkerCount == 0 {
		config.WorkerCount = defaultWorkers
	}
	if config.CheckpointPath == "" {
		config.CheckpointPath = "progress.json"
	}
	return &SyncService{
		client:     NewClient(config.BaseURL),
		recipeRepo: recipeRepo,
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		config:     config,
	}
}

// checkpoint tracks recipe paging progress so an interrupted sync resumes
// where it stopped.
type checkpoint struct {
	LastPage   int `json:"last_page"`
	TotalSaved int `json:"total_saved"`
}

func (s *SyncService) loadCheckpoint() checkpoint {
	var cp checkpoint
	data, err := os.ReadFile(s.config.CheckpointPath)
	if err != nil {
		return cp
	}
	if err := json.Unmarshal(data, &cp); err != nil {
		return checkpoint{}
	}
	return cp
}

func (s *SyncService) saveCheckpoint(cp checkpoint) {
	data, err := json.Marshal(cp)
	if err != nil {
		return
	}
	if err := os.WriteFile(s.config.CheckpointPath, data, 0o644); err != nil {
		log.Printf("[FoodComSync] Failed to save checkpoint: %v", err)
	}
}

// SyncRecipes pages the collection endpoint and batch-upserts catalog
// records until the endpoint runs dry or MaxRecipes is reached.
func (s *SyncService) SyncRecipes(ctx context.Context) error {
	cp := s.loadCheckpoint()
	page := cp.LastPage + 1
	totalPages := (s.config.MaxRecipes + recipesPerPage - 1) / recipesPerPage

	log.Printf("[FoodComSync] Resuming recipe sync: saved=%d, next page=%d", cp.TotalSaved, page)

	batch := make([]models.Recipe, 0, recipeBatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := s.recipeRepo.UpsertBatch(ctx, batch); err != nil {
			return err
		}
		cp.TotalSaved += len(batch)
		batch = batch[:0]
		s.saveCheckpoint(cp)
		log.Printf("[FoodComSync] Saved %d/%d recipes (page %d)", cp.TotalSaved, s.config.MaxRecipes, cp.LastPage)
		return nil
	}

	for page <= totalPages && cp.TotalSaved+len(batch) < s.config.MaxRecipes {
		if err := ctx.Err(); err != nil {
			return err
		}

		resp, err := s.client.GetRecipePage(ctx, s.config.CollectionID, page)
		if err != nil {
			return err
		}
		if len(resp.Response.Results) == 0 {
			log.Printf("[FoodComSync] Page %d returned no recipes, stopping", page)
			break
		}

		for _, result := range resp.Response.Results {
			recipe, ok := toRecipe(result)
			if !ok {
				continue
			}
			batch = append(batch, recipe)
			if cp.TotalSaved+len(batch) >= s.config.MaxRecipes {
				break
			}
		}

		cp.LastPage = page
		if len(batch) >= recipeBatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
		page++
	}

	if err := flush(); err != nil {
		return err
	}
	log.Printf("[FoodComSync] Recipe sync complete: %d recipes", cp.TotalSaved)
	return nil
}

// SyncReviews fetches the review feed of every recipe passed in, fanning
// out over the worker pool, and upserts the reviews plus the author names
// they mention.
func (s *SyncService) SyncReviews(ctx context.Context, recipeIDs []int64) error {
	pool := newFetchPool(s.config.WorkerCount, s.syncRecipeReviews)
	failed := pool.Run(ctx, recipeIDs)

	if len(failed) > 0 {
		log.Printf("[FoodComSync] Review sync finished: %d ok, %d failed", pool.Completed(), len(failed))
	} else {
		log.Printf("[FoodComSync] Review sync complete for %d recipes", len(recipeIDs))
	}
	return ctx.Err()
}

// syncRecipeReviews drains one recipe's paginated review feed.
func (s *SyncService) syncRecipeReviews(ctx context.Context, recipeID int64) error {
	var reviews []models.Review
	var authors []string
	total := -1

	for page := 1; ; page++ {
		resp, err := s.client.GetReviewPage(ctx, recipeID, page)
		if err != nil {
			return err
		}
		if total < 0 {
			total = resp.Total
		}
		if len(resp.Data.Items) == 0 {
			break
		}

		for _, item := range resp.Data.Items {
			if item.MemberName == "" {
				continue
			}
			rating := int(item.Rating)
			if rating < 0 || rating > 5 {
				continue
			}
			reviews = append(reviews, models.Review{
				RecipeID: recipeID,
				Author:   item.MemberName,
				Rating:   rating,
			})
			authors = append(authors, item.MemberName)
		}

		if len(reviews) >= total {
			break
		}
	}

	if err := s.userRepo.UpsertNames(ctx, authors); err != nil {
		return err
	}
	return s.reviewRepo.UpsertBatch(ctx, reviews)
}

// toRecipe maps an API result onto the catalog model, dropping records
// without a usable ID or title.
func toRecipe(r RecipeResult) (models.Recipe, bool) {
	id := r.CatalogID()
	if id == 0 || r.Title == "" {
		return models.Recipe{}, false
	}
	recipe := models.Recipe{
		ID:         id,
		Title:      r.Title,
		Rating:     r.MainRating,
		NumRatings: int(r.MainNumRatings),
	}
	if r.Description != "" {
		recipe.Description = &r.Description
	}
	if r.RecipePhotoURL != "" {
		recipe.ImageURL = &r.RecipePhotoURL
	}
	if r.RecordURL != "" {
		recipe.URL = &r.RecordURL
	}
	if r.PrimaryCategoryName != "" {
		recipe.Category = &r.PrimaryCategoryName
	}
	if r.RecipePrepTime != 0 {
		v := int(r.RecipePrepTime)
		recipe.PrepTime = &v
	}
	if r.RecipeCookTime != 0 {
		v := int(r.RecipeCookTime)
		recipe.CookTime = &v
	}
	if r.RecipeTotalTime != 0 {
		v := int(r.RecipeTotalTime)
		recipe.TotalTime = &v
	}
	if r.MainUsername != "" {
		recipe.AuthorName = &r.MainUsername
	}
	return recipe, true
}
