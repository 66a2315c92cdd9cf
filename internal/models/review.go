package models

import "time"

// Review ratings live in 1..5. Rating 0 is reserved: it means the recipe
// was shown to the user but never explicitly rated ("seen"). Never rated
// at all is the absence of a row, not a 0 — the two must not be conflated.
type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	RecipeID  int64     `json:"recipe_id" gorm:"not null;index;uniqueIndex:idx_reviews_recipe_author"`
	Author    string    `json:"author" gorm:"not null;index;uniqueIndex:idx_reviews_recipe_author"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 0 AND rating <= 5"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Association
	Recipe Recipe `json:"recipe,omitempty" gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
