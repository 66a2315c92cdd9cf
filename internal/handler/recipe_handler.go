package handler

import (
	"errors"
	"net/http"
	"strconv"

	"recipehub/internal/dto"
	"recipehub/internal/repository"
	"recipehub/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeHandler struct {
	recipeRepo    repository.RecipeRepository
	searchService service.SearchService
}

func NewRecipeHandler(recipeRepo repository.RecipeRepository, searchService service.SearchService) *RecipeHandler {
	return &RecipeHandler{
		recipeRepo:    recipeRepo,
		searchService: searchService,
	}
}

// RegisterRoutes registers recipe catalog routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recipes/search", h.Search)
	router.GET("/recipes/:recipe_id", h.Get)
}

// Search performs the bounded case-insensitive title search.
// GET /api/recipes/search?q=cake
func (h *RecipeHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, results)
}

// Get returns one catalog recipe.
// GET /api/recipes/:recipe_id
func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return
	}

	recipe, err := h.recipeRepo.GetByID(c.Request.Context(), recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recipe"})
		return
	}

	c.JSON(http.StatusOK, dto.FromModelToRecipeResponse(recipe))
}
