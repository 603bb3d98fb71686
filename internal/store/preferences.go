package store

import (
	"time"

	"prepper/internal/dates"
)

// PeriodType selects whether a plan covers a whole week or chosen days.
type PeriodType string

const (
	PeriodWeek PeriodType = "week"
	PeriodDays PeriodType = "days"
)

// Wizard step bounds for the plan-creation flow.
const (
	firstStep = 1
	lastStep  = 3
)

// Preferences is the transient state of the plan-creation wizard. It is never
// persisted; closing the app resets the flow.
type Preferences struct {
	PeriodType     PeriodType `json:"periodType"`
	SelectedDays   []string   `json:"selectedDays"`
	WeekStart      *time.Time `json:"weekStart"`
	FridgeContents string     `json:"fridgeContents"`
	CurrentStep    int        `json:"currentStep"`
}

func defaultPreferences() Preferences {
	return Preferences{PeriodType: PeriodWeek, CurrentStep: firstStep}
}

// PlanningPrefs is the observable wizard state.
type PlanningPrefs struct {
	*Observable[Preferences]
}

// NewPlanningPrefs creates the wizard store at step 1 of a week-based plan.
func NewPlanningPrefs() *PlanningPrefs {
	return &PlanningPrefs{Observable: NewObservable(defaultPreferences())}
}

// NextStep advances the wizard, clamped to the last step.
func (p *PlanningPrefs) NextStep() {
	p.Update(func(prefs Preferences) Preferences {
		if prefs.CurrentStep < lastStep {
			prefs.CurrentStep++
		}
		return prefs
	})
}

// PrevStep steps the wizard back, clamped to the first step.
func (p *PlanningPrefs) PrevStep() {
	p.Update(func(prefs Preferences) Preferences {
		if prefs.CurrentStep > firstStep {
			prefs.CurrentStep--
		}
		return prefs
	})
}

// SetWeekStart records the week being planned, snapped to its Monday.
func (p *PlanningPrefs) SetWeekStart(t time.Time) {
	monday := dates.Monday(t)
	p.Update(func(prefs Preferences) Preferences {
		prefs.WeekStart = &monday
		return prefs
	})
}

// Reset returns the wizard to its initial state.
func (p *PlanningPrefs) Reset() {
	p.Set(defaultPreferences())
}
