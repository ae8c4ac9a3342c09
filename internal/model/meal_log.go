package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealLog is post-cooking feedback: what was cooked, how it tasted, how
// the user felt afterwards. RecipeID is optional so users can log meals
// that never existed as stored recipes.
type MealLog struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	RecipeID     *uuid.UUID       `gorm:"type:uuid" json:"recipe_id,omitempty"`
	RecipeTitle  string           `gorm:"size:255;not null" json:"recipe_title"`
	TasteRating  *int             `json:"taste_rating,omitempty"`
	LikedTags    JSONBStringArray `gorm:"type:jsonb" json:"liked_tags,omitempty"`
	DislikedTags JSONBStringArray `gorm:"type:jsonb" json:"disliked_tags,omitempty"`
	FeelAfter    string           `gorm:"size:50" json:"feel_after,omitempty"`
	Notes        string           `gorm:"type:text" json:"notes,omitempty"`
	CookedAt     time.Time        `json:"cooked_at"`
}

func (m *MealLog) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CookedAt.IsZero() {
		m.CookedAt = time.Now().UTC()
	}
	return nil
}
