package handler

import (
	"errors"
	"net/http"
	"strconv"

	"recipehub/internal/dto"
	"recipehub/internal/middleware"
	"recipehub/internal/recommender"
	"recipehub/internal/service"

	"github.com/gin-gonic/gin"
)

// strategyCookie holds the user's ranking strategy preference. The cookie
// is the only place the preference lives; the engine always receives it as
// an explicit argument.
const strategyCookie = "strategy"

type RecommendationHandler struct {
	recService service.RecommendationService
}

func NewRecommendationHandler(recService service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recService: recService}
}

// RegisterRoutes registers recommendation routes (all authenticated)
func (h *RecommendationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/recommendations", h.List)
	router.GET("/recipes/:recipe_id/related", h.Related)
	router.POST("/ratings", h.SubmitRatings)
	router.POST("/reset", h.Reset)
	router.GET("/strategy", h.SetStrategy)
}

// List returns one page of recommendations for the authenticated user,
// marking every returned recipe as seen.
// GET /api/recommendations
func (h *RecommendationHandler) List(c *gin.Context) {
	user, ok := middleware.UserName(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	page, err := h.recService.Recommend(c.Request.Context(), user, strategyFromCookie(c))
	if err != nil {
		var insufficient *recommender.InsufficientCandidatesError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusConflict, gin.H{"error": insufficient.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// Related returns the contextual recommendations for one recipe.
// GET /api/recipes/:recipe_id/related
func (h *RecommendationHandler) Related(c *gin.Context) {
	user, ok := middleware.UserName(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	recipeID, err := strconv.ParseInt(c.Param("recipe_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe ID"})
		return
	}

	page, err := h.recService.Related(c.Request.Context(), user, recipeID, strategyFromCookie(c))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		var insufficient *recommender.InsufficientCandidatesError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusConflict, gin.H{"error": insufficient.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// SubmitRatings stores the explicit ratings from a page submission.
// POST /api/ratings
func (h *RecommendationHandler) SubmitRatings(c *gin.Context) {
	user, ok := middleware.UserName(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.SubmitRatingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recService.SubmitRatings(c.Request.Context(), user, req.Ratings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ratings saved"})
}

// Reset clears the authenticated user's whole review history.
// POST /api/reset
func (h *RecommendationHandler) Reset(c *gin.Context) {
	user, ok := middleware.UserName(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := h.recService.Reset(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reset history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}

// SetStrategy stores the strategy preference in a cookie. Unknown names
// are coerced to the default instead of rejected.
// GET /api/strategy?name=top_n
func (h *RecommendationHandler) SetStrategy(c *gin.Context) {
	strategy := recommender.ParseStrategy(c.Query("name"))
	c.SetCookie(strategyCookie, strategy.String(), 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"strategy": strategy.String()})
}

// strategyFromCookie parses the preference cookie, defaulting to the
// random strategy when the cookie is missing or holds garbage.
func strategyFromCookie(c *gin.Context) recommender.Strategy {
	name, err := c.Cookie(strategyCookie)
	if err != nil {
		return recommender.StrategyRandom
	}
	return recommender.ParseStrategy(name)
}
