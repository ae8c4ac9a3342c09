package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/internal/recommend"
)

const expirationDateLayout = "2006-01-02"

// PantryItem is one item the user has on hand. Quantity counts units;
// consume/restock adjust it without deleting the row so purchase history
// survives an empty jar.
type PantryItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Name           string         `gorm:"size:255;not null" json:"name"`
	Category       string         `gorm:"size:50" json:"category,omitempty"`
	Quantity       float64        `json:"quantity"`
	Unit           string         `gorm:"size:20" json:"unit,omitempty"`
	PurchaseDate   *time.Time     `json:"purchase_date,omitempty"`
	ExpirationDate *time.Time     `json:"expiration_date,omitempty"`

	// Per-unit estimates used when logging consumed items into the meal
	// history. Nullable like the recipe macros.
	EstimatedCalories *float64 `gorm:"type:float" json:"estimated_calories,omitempty"`
	EstimatedProteinG *float64 `gorm:"type:float" json:"estimated_protein_g,omitempty"`
	EstimatedCarbsG   *float64 `gorm:"type:float" json:"estimated_carbs_g,omitempty"`
	EstimatedFatG     *float64 `gorm:"type:float" json:"estimated_fat_g,omitempty"`
}

func (p *PantryItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ToScoring adapts the row onto the scoring engine's read shape. The
// expiration travels as a date string; items without one score zero on
// the expiry axis.
func (p *PantryItem) ToScoring() recommend.PantryItem {
	expiration := ""
	if p.ExpirationDate != nil {
		expiration = p.ExpirationDate.Format(expirationDateLayout)
	}
	return recommend.PantryItem{Name: p.Name, Expiration: expiration}
}
