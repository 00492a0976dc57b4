package entities

import "fitclub/internal/schedule"

// SlotsResponse is the answer to a slot query: the whole working window for
// the day, taken slots included, so the UI can grey them out.
type SlotsResponse struct {
	TrainerID       int             `json:"trainer_id"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"duration_minutes"`
	StepMinutes     int             `json:"step_minutes"`
	Working         bool            `json:"working"`
	Slots           []schedule.Slot `json:"slots"`
	Warnings        []string        `json:"warnings,omitempty"`
}
