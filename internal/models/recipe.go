package models

import "time"

// Recipe is an immutable catalog record. IDs come from the upstream
// food.com catalog, so the primary key is never auto-generated here.
// Rating and NumRatings are the site-wide aggregates captured at sync
// time, not derived from local reviews.
type Recipe struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Title       string     `json:"title" gorm:"not null;index"`
	Description *string    `json:"description,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
	URL         *string    `json:"url,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Rating      float64    `json:"rating" gorm:"not null;default:0"`
	NumRatings  int        `json:"num_ratings" gorm:"not null;default:0;index"`
	PrepTime    *int       `json:"prep_time,omitempty"`
	CookTime    *int       `json:"cook_time,omitempty"`
	TotalTime   *int       `json:"total_time,omitempty"`
	AuthorName  *string    `json:"author_name,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"autoCreateTime"`
}

func (Recipe) TableName() string {
	return "recipes"
}
