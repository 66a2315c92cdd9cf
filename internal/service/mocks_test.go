package service

import (
	"context"

	"recipehub/internal/models"
	"recipehub/internal/recommender"
	"recipehub/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertNames(ctx context.Context, names []string) error {
	args := m.Called(ctx, names)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockRecipeRepository mocks repository.RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) GetByID(ctx context.Context, id int64) (*models.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Recipe, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) SearchByTitle(ctx context.Context, query string) ([]repository.SearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]repository.SearchResult), args.Error(1)
}

func (m *MockRecipeRepository) TopByWeightedRating(ctx context.Context, pool []int64, n int) ([]int64, error) {
	args := m.Called(ctx, pool, n)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRecipeRepository) UpsertBatch(ctx context.Context, recipes []models.Recipe) error {
	args := m.Called(ctx, recipes)
	return args.Error(0)
}

func (m *MockRecipeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository mocks repository.ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) RelevantRecipeIDs(ctx context.Context, author string) ([]int64, error) {
	args := m.Called(ctx, author)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReviewRepository) SeenRecipeIDs(ctx context.Context, author string) ([]int64, error) {
	args := m.Called(ctx, author)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReviewRepository) UnknownRecipeIDs(ctx context.Context, author string) ([]int64, error) {
	args := m.Called(ctx, author)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReviewRepository) CoRatedRecipeIDs(ctx context.Context, relevant, pool []int64, n int) ([]int64, error) {
	args := m.Called(ctx, relevant, pool, n)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReviewRepository) RatingFor(ctx context.Context, author string, recipeID int64) (int, error) {
	args := m.Called(ctx, author, recipeID)
	return args.Int(0), args.Error(1)
}

func (m *MockReviewRepository) Upsert(ctx context.Context, recipeID int64, author string, rating int) error {
	args := m.Called(ctx, recipeID, author, rating)
	return args.Error(0)
}

func (m *MockReviewRepository) UpsertBatch(ctx context.Context, reviews []models.Review) error {
	args := m.Called(ctx, reviews)
	return args.Error(0)
}

func (m *MockReviewRepository) ClearForAuthor(ctx context.Context, author string) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockReviewRepository) CountRated(ctx context.Context, author string) (int64, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) CountSeen(ctx context.Context, author string) (int64, error) {
	args := m.Called(ctx, author)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewRepository) ActiveAuthors(ctx context.Context, minReviews, limit int) ([]string, error) {
	args := m.Called(ctx, minReviews, limit)
	return args.Get(0).([]string), args.Error(1)
}

// MockEngine mocks the RecommendationEngine interface
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Recommend(ctx context.Context, user string, strategy recommender.Strategy, opts recommender.Options) ([]int64, error) {
	args := m.Called(ctx, user, strategy, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockEngine) RecommendContextual(ctx context.Context, user string, focalRecipeID int64, strategy recommender.Strategy, opts recommender.Options) ([]int64, error) {
	args := m.Called(ctx, user, focalRecipeID, strategy, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}
