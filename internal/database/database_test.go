package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitchenpal/backend/internal/model"
	"github.com/kitchenpal/backend/internal/testhelpers"
)

func TestMigrateAndRoundTrip(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	require.NotNil(t, db)

	protein := 38.0
	recipe := model.Recipe{
		Title:       "Chicken Rice Bowl",
		Ingredients: model.JSONBStringArray{"chicken", "rice"},
		ProteinG:    &protein,
	}

	require.NoError(t, db.Create(&recipe).Error)
	assert.NotZero(t, recipe.ID)

	var loaded model.Recipe
	require.NoError(t, db.First(&loaded, "id = ?", recipe.ID).Error)
	assert.Equal(t, "Chicken Rice Bowl", loaded.Title)
	assert.Equal(t, model.JSONBStringArray{"chicken", "rice"}, loaded.Ingredients)
	require.NotNil(t, loaded.ProteinG)
	assert.Equal(t, 38.0, *loaded.ProteinG)
	assert.Nil(t, loaded.Calories)
}

func TestMigrateOnPostgres(t *testing.T) {
	db := testhelpers.SetupPostgresTestDB(t)

	item := model.PantryItem{Name: "chickpeas", Quantity: 2}
	require.NoError(t, db.Create(&item).Error)

	var count int64
	require.NoError(t, db.Model(&model.PantryItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
