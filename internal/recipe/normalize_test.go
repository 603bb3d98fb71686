package recipe

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(rand.New(rand.NewSource(1)))
}

func TestNormalize_NilRecord(t *testing.T) {
	n := newTestNormalizer()

	assert.Nil(t, n.Normalize(nil))
}

func TestNormalize_Metadata(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize(SourceRecord{
		"idMeal":       "52772",
		"strMeal":      "Teriyaki Chicken Casserole",
		"strMealThumb": "https://example.test/meals/52772.jpg",
		"strCategory":  "Chicken",
		"strArea":      "Japanese",
	})

	assert.Equal(t, "52772", got.ID)
	assert.Equal(t, "Teriyaki Chicken Casserole", got.Title)
	assert.Equal(t, "https://example.test/meals/52772.jpg", got.Image)
	assert.Equal(t, "Chicken", got.Category)
	assert.Equal(t, "Japanese", got.Area)
	assert.Equal(t, []string{"estimated", "api"}, got.Labels)
}

func TestNormalize_SparseIngredients(t *testing.T) {
	n := newTestNormalizer()

	// Valid pairs scattered at positions 2, 7 and 20, with blanks in between.
	got := n.Normalize(SourceRecord{
		"strIngredient1":  "   ",
		"strIngredient2":  " Soy Sauce ",
		"strMeasure2":     " 3/4 cup ",
		"strIngredient7":  "Brown Sugar",
		"strIngredient20": "Sesame Seeds",
		"strMeasure20":    "1 tbsp",
	})

	assert.Equal(t, []Ingredient{
		{Name: "Soy Sauce", Amount: "3/4 cup"},
		{Name: "Brown Sugar", Amount: ""},
		{Name: "Sesame Seeds", Amount: "1 tbsp"},
	}, got.Ingredients)
}

func TestNormalize_Steps(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize(SourceRecord{
		"strInstructions": "STEP 1\r\nPreheat oven to 350F.\r\n\r\n1. Mix the sauce.\nstep 3\n2) Pour over chicken.\n   \nServe hot.",
	})

	assert.Equal(t, []string{
		"Preheat oven to 350F.",
		"Mix the sauce.",
		"Pour over chicken.",
		"Serve hot.",
	}, got.Steps)
}

func TestNormalize_EmptyInstructions(t *testing.T) {
	n := newTestNormalizer()

	got := n.Normalize(SourceRecord{"idMeal": "1"})

	assert.Empty(t, got.Steps)
	assert.Empty(t, got.Ingredients)
}

func TestNormalize_EstimateBounds(t *testing.T) {
	n := newTestNormalizer()

	for i := 0; i < 500; i++ {
		got := n.Normalize(SourceRecord{"idMeal": "1"})
		assert.GreaterOrEqual(t, got.Calories, 400)
		assert.LessOrEqual(t, got.Calories, 799)
		assert.GreaterOrEqual(t, got.PrepMinutes, 15)
		assert.LessOrEqual(t, got.PrepMinutes, 34)
		assert.GreaterOrEqual(t, got.CookMinutes, 20)
		assert.LessOrEqual(t, got.CookMinutes, 59)
	}
}

func TestSourceRecord_UnmarshalNulls(t *testing.T) {
	var rec SourceRecord
	err := json.Unmarshal([]byte(`{"idMeal":"1","strIngredient1":"Salt","strIngredient2":null}`), &rec)

	assert.NoError(t, err)
	assert.Equal(t, "Salt", rec["strIngredient1"])
	_, present := rec["strIngredient2"]
	assert.False(t, present)
}
