package dto

import "recipehub/internal/models"

type RecipeResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	URL         *string `json:"url,omitempty"`
	Category    *string `json:"category,omitempty"`
	Rating      float64 `json:"rating"`
	NumRatings  int     `json:"num_ratings"`
	TotalTime   *int    `json:"total_time,omitempty"`
	AuthorName  *string `json:"author_name,omitempty"`
}

func FromModelToRecipeResponse(recipe *models.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		ImageURL:    recipe.ImageURL,
		URL:         recipe.URL,
		Category:    recipe.Category,
		Rating:      recipe.Rating,
		NumRatings:  recipe.NumRatings,
		TotalTime:   recipe.TotalTime,
		AuthorName:  recipe.AuthorName,
	}
}
