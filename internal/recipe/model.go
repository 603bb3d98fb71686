package recipe

import (
	"encoding/json"
)

// Recipe is the application's canonical recipe shape, independent of any
// upstream provider's field naming.
type Recipe struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Image       string       `json:"image"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
	Calories    int          `json:"calories"`
	PrepMinutes int          `json:"prepMinutes"`
	CookMinutes int          `json:"cookMinutes"`
	Labels      []string     `json:"labels"`
	Category    string       `json:"category"`
	Area        string       `json:"area"`
}

// Ingredient pairs an ingredient name with its (possibly empty) amount.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// MarkedRef is the projection of a recipe kept when a user marks it.
type MarkedRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// Mark projects a recipe down to the fields kept for a marked recipe.
func (r *Recipe) Mark() MarkedRef {
	return MarkedRef{ID: r.ID, Title: r.Title, Image: r.Image}
}

// SourceRecord is a raw upstream recipe record: a flat mapping of string keys
// to string values with no guarantees about which fields are present.
type SourceRecord map[string]string

// UnmarshalJSON implements the json.Unmarshaler interface for SourceRecord.
// Upstream records carry JSON nulls for absent fields; those are dropped so
// lookups simply return the empty string.
func (r *SourceRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	m := make(SourceRecord, len(raw))
	for k, v := range raw {
		if v != nil {
			m[k] = *v
		}
	}
	*r = m

	return nil
}
