package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kitchenpal/backend/internal/recommend"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is the stored recipe row. Macro columns are nullable pointers so
// "never imported" stays distinct from zero; the Nutrition* columns are
// the alternates written by the bulk nutrition importer and are read only
// when the primary column is null.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	Title       string           `gorm:"size:255;not null" json:"title"`
	Cuisine     string           `gorm:"size:50" json:"cuisine,omitempty"`
	Diet        string           `gorm:"size:50" json:"diet,omitempty"`
	TimeMinutes *int             `json:"time_minutes,omitempty"`
	AvgRating   *float64         `gorm:"type:float" json:"avg_rating,omitempty"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`

	Calories *float64 `gorm:"type:float" json:"calories,omitempty"`
	ProteinG *float64 `gorm:"type:float" json:"protein_g,omitempty"`
	CarbsG   *float64 `gorm:"type:float" json:"carbs_g,omitempty"`
	FatG     *float64 `gorm:"type:float" json:"fat_g,omitempty"`
	SugarG   *float64 `gorm:"type:float" json:"sugar_g,omitempty"`

	NutritionCalories *float64 `gorm:"type:float" json:"nutrition_calories,omitempty"`
	NutritionProteinG *float64 `gorm:"type:float" json:"nutrition_protein_g,omitempty"`
	NutritionCarbsG   *float64 `gorm:"type:float" json:"nutrition_carbs_g,omitempty"`
	NutritionFatG     *float64 `gorm:"type:float" json:"nutrition_fat_g,omitempty"`
	NutritionSugarG   *float64 `gorm:"type:float" json:"nutrition_sugar_g,omitempty"`
}

// BeforeCreate assigns the ID client-side so the model works on databases
// without gen_random_uuid().
func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// ToScoring adapts the row onto the scoring engine's read shape.
func (r *Recipe) ToScoring() recommend.Recipe {
	return recommend.Recipe{
		ID:          r.ID,
		Title:       r.Title,
		TimeMinutes: r.TimeMinutes,
		Diet:        r.Diet,
		Cuisine:     r.Cuisine,
		AvgRating:   r.AvgRating,
		Ingredients: r.Ingredients,
		Macros: recommend.Macros{
			Calories:          r.Calories,
			ProteinG:          r.ProteinG,
			CarbsG:            r.CarbsG,
			FatG:              r.FatG,
			SugarG:            r.SugarG,
			NutritionCalories: r.NutritionCalories,
			NutritionProteinG: r.NutritionProteinG,
			NutritionCarbsG:   r.NutritionCarbsG,
			NutritionFatG:     r.NutritionFatG,
			NutritionSugarG:   r.NutritionSugarG,
		},
	}
}
