package foodcom

import "encoding/json"

// flexInt tolerates the API's habit of sending numbers as strings or
// omitting them entirely.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" || string(data) == `""` {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		var n json.Number = json.Number(s)
		v, err := n.Float64()
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexInt(int(v))
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexInt(int(v))
	return nil
}

// SectionFrontResponse is a page of the recipe collection endpoint
// (/services/mobile/fdc/search/sectionfront).
type SectionFrontResponse struct {
	Response struct {
		Results           []RecipeResult `json:"results"`
		TotalResultsCount int            `json:"totalResultsCount"`
	} `json:"response"`
}

// RecipeResult is one catalog record as served by the collection endpoint.
type RecipeResult struct {
	RecipeID            flexInt `json:"recipe_id"`
	ID                  flexInt `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	RecipePhotoURL      string  `json:"recipe_photo_url"`
	RecordURL           string  `json:"record_url"`
	PrimaryCategoryName string  `json:"primary_category_name"`
	MainRating          float64 `json:"main_rating"`
	MainNumRatings      flexInt `json:"main_num_ratings"`
	RecipePrepTime      flexInt `json:"recipe_preptime"`
	RecipeCookTime      flexInt `json:"recipe_cooktime"`
	RecipeTotalTime     flexInt `json:"recipe_totaltime"`
	MainUsername        string  `json:"main_username"`
}

// CatalogID prefers recipe_id and falls back to id, mirroring the feed.
func (r *RecipeResult) CatalogID() int64 {
	if r.RecipeID != 0 {
		return int64(r.RecipeID)
	}
	return int64(r.ID)
}

// ReviewFeedResponse is a page of a recipe's review feed
// (/external/v1/recipes/{id}/feed/reviews).
type ReviewFeedResponse struct {
	Total int `json:"total"`
	Data  struct {
		Items []ReviewItem `json:"items"`
	} `json:"data"`
}

// ReviewItem is one review as served by the feed.
type ReviewItem struct {
	ID         json.Number `json:"id"`
	MemberID   flexInt     `json:"memberId"`
	MemberName string      `json:"memberName"`
	Rating     flexInt     `json:"rating"`
	Submitted  string      `json:"submitted"`
	Text       string      `json:"text"`
	Counts     struct {
		Like int `json:"like"`
	} `json:"counts"`
}
