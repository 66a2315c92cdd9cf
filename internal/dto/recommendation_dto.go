package dto

// RecommendationsResponse is one page of recommendations, in ranked order,
// plus the user's current history counters.
type RecommendationsResponse struct {
	Strategy   string           `json:"strategy"`
	Recipes    []RecipeResponse `json:"recipes"`
	RatedCount int64            `json:"rated_count"`
	SeenCount  int64            `json:"seen_count"`
}

// RelatedResponse is a contextual page: the focal recipe plus a short list
// of recommendations produced while viewing it.
type RelatedResponse struct {
	Strategy   string           `json:"strategy"`
	Recipe     RecipeResponse   `json:"recipe"`
	Related    []RecipeResponse `json:"related"`
	RatedCount int64            `json:"rated_count"`
	SeenCount  int64            `json:"seen_count"`
}

type RatingEntry struct {
	RecipeID int64 `json:"recipe_id" binding:"required"`
	Rating   int   `json:"rating"`
}

type SubmitRatingsRequest struct {
	Ratings []RatingEntry `json:"ratings" binding:"required"`
}
