package assistant

import (
	"context"
	"fmt"
	"strings"
)

// Reply modes reported to the client.
const (
	ModeDemo = "demo"
	ModeAI   = "ai"
)

// Delegate is an external completion service that can answer a chat message.
type Delegate interface {
	Reply(ctx context.Context, systemPrompt, message string) (string, error)
}

// Assistant answers chat messages. When a delegate is configured every
// message is forwarded to it and any failure is surfaced as a hard error;
// without one the local responder answers and cannot fail. The path is chosen
// up front by capability, never by catching a delegation failure.
type Assistant struct {
	delegate Delegate
}

// New creates an Assistant. A nil delegate selects the local demo responder.
func New(delegate Delegate) *Assistant {
	return &Assistant{delegate: delegate}
}

// Reply answers message and reports which mode produced the answer.
func (a *Assistant) Reply(ctx context.Context, message string, c Context) (string, string, error) {
	if a.delegate == nil {
		return Respond(message, c), ModeDemo, nil
	}

	text, err := a.delegate.Reply(ctx, SystemPrompt(c), message)
	if err != nil {
		return "", "", fmt.Errorf("assistant delegate failed: %w", err)
	}
	return text, ModeAI, nil
}

// SystemPrompt builds the contextual instruction string sent to the delegate.
// The local responder never consumes it; its keyword matching only sees the
// user message.
func SystemPrompt(c Context) string {
	var b strings.Builder
	b.WriteString("You are a friendly meal-planning assistant for the Prepper app. ")
	b.WriteString("Answer cooking and nutrition questions concisely and practically.")

	if c.Recipe != nil {
		r := c.Recipe
		fmt.Fprintf(&b, "\n\nThe user is currently looking at the recipe %q (%s, %s), estimated at %d calories with %d minutes prep and %d minutes cooking.",
			r.Title, r.Category, r.Area, r.Calories, r.PrepMinutes, r.CookMinutes)
		if len(r.Ingredients) > 0 {
			names := make([]string, len(r.Ingredients))
			for i, ing := range r.Ingredients {
				names[i] = ing.Name
			}
			fmt.Fprintf(&b, " Its ingredients: %s.", strings.Join(names, ", "))
		}
	}

	if c.Preferences != nil {
		var diets []string
		if c.Preferences.Vegetarian {
			diets = append(diets, "vegetarian")
		}
		if c.Preferences.Vegan {
			diets = append(diets, "vegan")
		}
		if len(diets) > 0 {
			fmt.Fprintf(&b, "\n\nThe user follows a %s diet; keep every suggestion compatible with it.", strings.Join(diets, " and "))
		}
	}

	if len(c.AvoidIngredients) > 0 {
		fmt.Fprintf(&b, "\n\nNever suggest these ingredients: %s.", strings.Join(c.AvoidIngredients, ", "))
	}

	return b.String()
}
