package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"prepper/internal/recipe"
)

func contextWithRecipe() Context {
	return Context{
		Recipe: &recipe.Recipe{
			ID:          "52772",
			Title:       "Teriyaki Chicken Casserole",
			Calories:    650,
			PrepMinutes: 20,
			CookMinutes: 45,
			Ingredients: []recipe.Ingredient{
				{Name: "Soy Sauce"},
				{Name: "Water"},
				{Name: "Brown Sugar"},
				{Name: "Ground Ginger"},
				{Name: "Minced Garlic"},
				{Name: "Cornstarch"},
			},
		},
	}
}

func TestRespond_SubstitutionWinsOverWalkthrough(t *testing.T) {
	// "How do I substitute butter?" contains both "how" and "substitute";
	// the earlier substitution rule must win.
	got := Respond("How do I substitute butter?", contextWithRecipe())

	assert.Contains(t, got, "replace")
	assert.NotContains(t, got, "minutes of prep")
}

func TestRespond_CalorieBranchUsesRecipeEstimate(t *testing.T) {
	got := Respond("Can you make this healthier?", contextWithRecipe())

	assert.Contains(t, got, "650 calories")
}

func TestRespond_WalkthroughListsLeadIngredients(t *testing.T) {
	got := Respond("How do I cook this?", contextWithRecipe())

	assert.Contains(t, got, "20 minutes of prep")
	assert.Contains(t, got, "45 minutes of cooking")
	assert.Contains(t, got, "Soy Sauce, Water, Brown Sugar, Ground Ginger, Minced Garlic...")
	assert.NotContains(t, got, "Cornstarch")
}

func TestRespond_RecipeBranchesNeedRecipeContext(t *testing.T) {
	// Without a recipe in context, "how" falls through the first three rules
	// down to the default response.
	got := Respond("How do I substitute butter?", Context{})

	assert.Equal(t, defaultResponse, got)
}

func TestRespond_SavoryVegetarianVariant(t *testing.T) {
	plain := Respond("suggest a savory meal", Context{})
	veggie := Respond("suggest a savory meal", Context{Preferences: &DietPrefs{Vegetarian: true}})
	vegan := Respond("suggest a savory meal", Context{Preferences: &DietPrefs{Vegan: true}})

	assert.Contains(t, plain, "Beef Stroganoff")
	assert.Contains(t, veggie, "Vegetarian Chilli")
	assert.Equal(t, veggie, vegan)
}

func TestRespond_KeywordBranches(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"something sweet for dessert", "Apple Frangipan Tart"},
		{"a quick and easy lunch", "under 30 minutes"},
		{"tips for a low calorie diet", "lean protein"},
		{"tell me a joke", defaultResponse},
	}

	for _, tt := range tests {
		got := Respond(tt.message, Context{})
		assert.Contains(t, got, tt.want, "message %q", tt.message)
	}
}

func TestSystemPrompt_IncludesContext(t *testing.T) {
	c := contextWithRecipe()
	c.Preferences = &DietPrefs{Vegan: true}
	c.AvoidIngredients = []string{"peanuts", "shellfish"}

	prompt := SystemPrompt(c)

	assert.Contains(t, prompt, "Teriyaki Chicken Casserole")
	assert.Contains(t, prompt, "vegan")
	assert.Contains(t, prompt, "peanuts, shellfish")
}

type stubDelegate struct {
	reply       string
	err         error
	gotSystem   string
	gotMessage  string
	calledReply bool
}

func (s *stubDelegate) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	s.calledReply = true
	s.gotSystem = systemPrompt
	s.gotMessage = message
	return s.reply, s.err
}

func TestAssistant_DemoModeWithoutDelegate(t *testing.T) {
	a := New(nil)

	text, mode, err := a.Reply(context.Background(), "suggest a dessert", Context{})

	assert.NoError(t, err)
	assert.Equal(t, ModeDemo, mode)
	assert.Contains(t, text, "Apple Frangipan Tart")
}

func TestAssistant_DelegatedMode(t *testing.T) {
	stub := &stubDelegate{reply: "Try a light miso soup."}
	a := New(stub)

	text, mode, err := a.Reply(context.Background(), "what should I eat?", contextWithRecipe())

	assert.NoError(t, err)
	assert.Equal(t, ModeAI, mode)
	assert.Equal(t, "Try a light miso soup.", text)
	assert.Equal(t, "what should I eat?", stub.gotMessage)
	assert.True(t, strings.Contains(stub.gotSystem, "Teriyaki Chicken Casserole"))
}

func TestAssistant_DelegateFailureIsHardError(t *testing.T) {
	stub := &stubDelegate{err: errors.New("upstream down")}
	a := New(stub)

	_, _, err := a.Reply(context.Background(), "suggest a dessert", Context{})

	// No silent fallback to the demo responder.
	assert.Error(t, err)
	assert.True(t, stub.calledReply)
}
