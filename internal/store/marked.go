package store

import (
	"prepper/internal/recipe"
	"prepper/internal/storage"
)

// MarkedKey is the storage slot holding the marked-recipe list.
const MarkedKey = "marked_recipes"

// MarkedRecipes is the persisted, insertion-ordered list of recipes the user
// has marked for planning.
type MarkedRecipes struct {
	*Persistent[[]recipe.MarkedRef]
}

// NewMarkedRecipes creates the marked-recipes store over backend.
func NewMarkedRecipes(backend storage.Storage) *MarkedRecipes {
	return &MarkedRecipes{Persistent: NewPersistent[[]recipe.MarkedRef](backend, MarkedKey, nil)}
}

// Toggle unmarks r when it is already in the list (keyed on id), otherwise
// appends its projection. Either way the result is persisted and broadcast.
func (m *MarkedRecipes) Toggle(r *recipe.Recipe) {
	m.Update(func(refs []recipe.MarkedRef) []recipe.MarkedRef {
		for i := range refs {
			if refs[i].ID == r.ID {
				out := make([]recipe.MarkedRef, 0, len(refs)-1)
				out = append(out, refs[:i]...)
				return append(out, refs[i+1:]...)
			}
		}
		return append(refs, r.Mark())
	})
}

// IsMarked reports whether a recipe id is currently marked.
func (m *MarkedRecipes) IsMarked(id string) bool {
	for _, ref := range m.Value() {
		if ref.ID == id {
			return true
		}
	}
	return false
}
