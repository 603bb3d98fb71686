package assistant

import (
	"fmt"
	"strings"

	"prepper/internal/recipe"
)

// DietPrefs carries the dietary switches that shape suggestions.
type DietPrefs struct {
	Vegetarian bool `json:"vegetarian"`
	Vegan      bool `json:"vegan"`
}

// Context is the optional recipe/preference context sent with a chat message.
type Context struct {
	Recipe           *recipe.Recipe `json:"recipe,omitempty"`
	Preferences      *DietPrefs     `json:"preferences,omitempty"`
	AvoidIngredients []string       `json:"avoidIngredients,omitempty"`
}

func (c Context) plantBased() bool {
	return c.Preferences != nil && (c.Preferences.Vegetarian || c.Preferences.Vegan)
}

// rule pairs a keyword predicate with its response template. Rules are
// evaluated in order and the first match wins, so a message mentioning both
// "substitute" and "how" always gets substitution advice.
type rule struct {
	match   func(msg string, c Context) bool
	respond func(msg string, c Context) string
}

var rules = []rule{
	{
		match: func(msg string, c Context) bool {
			return c.Recipe != nil && containsAny(msg, "substitute", "replace", "instead")
		},
		respond: func(msg string, c Context) string {
			return fmt.Sprintf("Good question! For %s, most ingredients have easy swaps: butter works as olive or coconut oil, eggs as mashed banana or a flax mix, and cream as Greek yogurt or coconut milk. Tell me which ingredient you want to replace and I'll suggest the closest match.", c.Recipe.Title)
		},
	},
	{
		match: func(msg string, c Context) bool {
			return c.Recipe != nil && containsAny(msg, "calorie", "healthier")
		},
		respond: func(msg string, c Context) string {
			return fmt.Sprintf("%s comes in at an estimated %d calories per serving. To lighten it up, cut the added fats in half, swap cream for yogurt, and fill out the plate with extra vegetables - that alone usually trims 100-150 calories.", c.Recipe.Title, c.Recipe.Calories)
		},
	},
	{
		match: func(msg string, c Context) bool {
			return c.Recipe != nil && containsAny(msg, "how", "cook", "make")
		},
		respond: func(msg string, c Context) string {
			r := c.Recipe
			return fmt.Sprintf("%s takes about %d minutes of prep and %d minutes of cooking. You'll need %s. Get all the prep out of the way first, then work through the steps one at a time - nothing here needs restaurant technique.", r.Title, r.PrepMinutes, r.CookMinutes, leadIngredients(r))
		},
	},
	{
		match: func(msg string, c Context) bool {
			return containsAny(msg, "sweet", "dessert")
		},
		respond: func(msg string, c Context) string {
			return "In the mood for something sweet? Try searching for: Apple Frangipan Tart, Chocolate Gateau, Banana Pancakes, or Sticky Toffee Pudding. All of them are solid weeknight bakes."
		},
	},
	{
		match: func(msg string, c Context) bool {
			return containsAny(msg, "savory", "dinner", "meal")
		},
		respond: func(msg string, c Context) string {
			if c.plantBased() {
				return "For a plant-based dinner, try searching for: Vegetarian Chilli, Spicy Arrabiata Penne, Ratatouille, or Dal Fry. Hearty, savory, and no meat in sight."
			}
			return "For a satisfying dinner, try searching for: Beef Stroganoff, Teriyaki Chicken Casserole, Spaghetti Bolognese, or Thai Green Curry."
		},
	},
	{
		match: func(msg string, c Context) bool {
			return containsAny(msg, "quick", "easy", "fast")
		},
		respond: func(msg string, c Context) string {
			return "Short on time? Search for: Omelette, Tuna Nicoise, Stir-fry, or Quesadillas - all of them land on the table in under 30 minutes."
		},
	},
	{
		match: func(msg string, c Context) bool {
			return containsAny(msg, "healthy", "low calorie", "diet")
		},
		respond: func(msg string, c Context) string {
			return "A few habits go a long way: build plates around vegetables and lean protein, grill or roast instead of frying, and watch portion sizes on rice and pasta. Want me to find a recipe that fits?"
		},
	},
}

const defaultResponse = "I can help you find recipes, suggest ingredient substitutions, estimate calories, and walk you through cooking steps. Ask me about a recipe, or tell me what you're craving."

// Respond answers a chat message locally using the keyword cascade. It is a
// pure function of the message and context and always produces an answer.
func Respond(message string, c Context) string {
	msg := strings.ToLower(message)
	for _, r := range rules {
		if r.match(msg, c) {
			return r.respond(msg, c)
		}
	}
	return defaultResponse
}

func containsAny(msg string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// leadIngredients lists the first five ingredient names, with a trailing
// ellipsis when the recipe has more.
func leadIngredients(r *recipe.Recipe) string {
	names := make([]string, 0, 5)
	for _, ing := range r.Ingredients {
		names = append(names, ing.Name)
		if len(names) == 5 {
			break
		}
	}
	joined := strings.Join(names, ", ")
	if len(r.Ingredients) > 5 {
		joined += "..."
	}
	return joined
}
