package store

import (
	"encoding/json"

	"prepper/internal/storage"
)

// PlanKey is the storage slot holding the saved meal plan.
const PlanKey = "prepper_plan"

// Plan is the persisted meal plan. The plan's shape is owned by the planning
// flow; the store treats it as an opaque JSON document. A nil value means no
// plan has been saved yet.
type Plan struct {
	*Persistent[json.RawMessage]
}

// NewPlan creates the plan store over backend.
func NewPlan(backend storage.Storage) *Plan {
	return &Plan{Persistent: NewPersistent[json.RawMessage](backend, PlanKey, nil)}
}

// Exists reports whether a plan is currently saved.
func (p *Plan) Exists() bool {
	return p.Value() != nil
}
