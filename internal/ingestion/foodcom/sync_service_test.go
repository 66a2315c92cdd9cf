package foodcom

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"recipehub/internal/models"
	"recipehub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecipeStore collects UpsertBatch calls. The embedded interface is
// nil: the sync path never touches the other methods.
type fakeRecipeStore struct {
	repository.RecipeRepository
	mu      sync.Mutex
	recipes []models.Recipe
}

func (f *fakeRecipeStore) UpsertBatch(ctx context.Context, recipes []models.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recipes = append(f.recipes, recipes...)
	return nil
}

type fakeReviewStore struct {
	repository.ReviewRepository
	mu      sync.Mutex
	reviews []models.Review
}

func (f *fakeReviewStore) UpsertBatch(ctx context.Context, reviews []models.Review) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, reviews...)
	return nil
}

type fakeUserStore struct {
	repository.UserRepository
	mu    sync.Mutex
	names []string
}

func (f *fakeUserStore) UpsertNames(ctx context.Context, names []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = append(f.names, names...)
	return nil
}

func TestToRecipe(t *testing.T) {
	t.Run("FullRecord", func(t *testing.T) {
		recipe, ok := toRecipe(RecipeResult{
			RecipeID:        123,
			Title:           "Pad Thai",
			Description:     "noodles",
			MainRating:      4.5,
			MainNumRatings:  200,
			RecipeTotalTime: 45,
			MainUsername:    "chef_anna",
		})
		require.True(t, ok)
		assert.Equal(t, int64(123), recipe.ID)
		assert.Equal(t, "Pad Thai", recipe.Title)
		assert.Equal(t, 4.5, recipe.Rating)
		assert.Equal(t, 200, recipe.NumRatings)
		require.NotNil(t, recipe.TotalTime)
		assert.Equal(t, 45, *recipe.TotalTime)
		require.NotNil(t, recipe.AuthorName)
		assert.Equal(t, "chef_anna", *recipe.AuthorName)
		assert.Nil(t, recipe.PrepTime)
	})

	t.Run("FallsBackToID", func(t *testing.T) {
		recipe, ok := toRecipe(RecipeResult{ID: 77, Title: "Soup"})
		require.True(t, ok)
		assert.Equal(t, int64(77), recipe.ID)
	})

	t.Run("DropsUnusableRecords", func(t *testing.T) {
		_, ok := toRecipe(RecipeResult{Title: "No ID"})
		assert.False(t, ok)
		_, ok = toRecipe(RecipeResult{RecipeID: 5})
		assert.False(t, ok)
	})
}

func TestCheckpointRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	svc := &SyncService{config: SyncConfig{CheckpointPath: path}}

	// Missing file starts from scratch.
	assert.Equal(t, checkpoint{}, svc.loadCheckpoint())

	svc.saveCheckpoint(checkpoint{LastPage: 12, TotalSaved: 118})
	cp := svc.loadCheckpoint()
	assert.Equal(t, 12, cp.LastPage)
	assert.Equal(t, 118, cp.TotalSaved)
}

func TestSyncRecipes(t *testing.T) {
	pages := map[string]string{
		"1": `{"response":{"results":[
			{"recipe_id":1,"title":"One","main_rating":4.0,"main_num_ratings":10},
			{"recipe_id":2,"title":"Two","main_rating":3.5,"main_num_ratings":5},
			{"recipe_id":3,"title":"","main_rating":1.0}
		],"totalResultsCount":3}}`,
		"2": `{"response":{"results":[],"totalResultsCount":3}}`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pages[r.URL.Query().Get("pn")])
	}))
	defer server.Close()

	recipeStore := &fakeRecipeStore{}
	svc := &SyncService{
		client:     NewClient(server.URL),
		recipeRepo: recipeStore,
		config: SyncConfig{
			CollectionID:   17,
			MaxRecipes:     100,
			CheckpointPath: filepath.Join(t.TempDir(), "progress.json"),
		},
	}

	require.NoError(t, svc.SyncRecipes(context.Background()))

	// The titleless record is dropped; the rest land in the store.
	require.Len(t, recipeStore.recipes, 2)
	assert.Equal(t, "One", recipeStore.recipes[0].Title)

	cp := svc.loadCheckpoint()
	assert.Equal(t, 2, cp.TotalSaved)
}

func TestSyncReviews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pn") != "1" {
			fmt.Fprint(w, `{"total":2,"data":{"items":[]}}`)
			return
		}
		fmt.Fprint(w, `{"total":2,"data":{"items":[
			{"memberName":"alice","rating":5},
			{"memberName":"","rating":4},
			{"memberName":"bob","rating":9}
		]}}`)
	}))
	defer server.Close()

	reviewStore := &fakeReviewStore{}
	userStore := &fakeUserStore{}
	svc := &SyncService{
		client:     NewClient(server.URL),
		reviewRepo: reviewStore,
		userRepo:   userStore,
		config:     SyncConfig{WorkerCount: 2},
	}

	require.NoError(t, svc.SyncReviews(context.Background(), []int64{42}))

	// Nameless and out-of-range reviews never reach the store.
	require.Len(t, reviewStore.reviews, 1)
	assert.Equal(t, "alice", reviewStore.reviews[0].Author)
	assert.Equal(t, 5, reviewStore.reviews[0].Rating)
	assert.Equal(t, []string{"alice"}, userStore.names)
}
