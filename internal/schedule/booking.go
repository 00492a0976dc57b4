package schedule

import "errors"

// ErrInvalidTransition is returned when a status change would leave a
// terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// Booking statuses. A booking is created as scheduled and moves to exactly
// one of the terminal states.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Session types offered by the club.
const (
	TypePersonal     = "personal"
	TypeGroup        = "group"
	TypeConsultation = "consultation"
)

// Trainer lifecycle statuses. Only active trainers are bookable.
const (
	TrainerActive    = "active"
	TrainerInactive  = "inactive"
	TrainerSuspended = "suspended"
	TrainerDeleted   = "deleted"
)

// Booking duration policy, shared by the interactive validator and the bulk
// import path.
const (
	MinBookingMinutes  = 30
	MaxBookingMinutes  = 240
	DefaultStepMinutes = 30
)

// Booking is the engine's view of a training session: id references only,
// local wall-clock times, no timezone anywhere.
type Booking struct {
	ID        int     `json:"id"`
	Code      string  `json:"code"`
	TrainerID int     `json:"trainer_id"`
	ClientID  int     `json:"client_id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Status    string  `json:"status"`
	Type      string  `json:"type"`
	Price     float64 `json:"price"`
	Notes     string  `json:"notes,omitempty"`
}

// Trainer is the engine's view of a trainer: just what availability math needs.
type Trainer struct {
	ID         int
	Status     string
	HourlyRate float64
	Hours      WorkingHours
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// ValidType reports whether t is a known session type.
func ValidType(t string) bool {
	switch t {
	case TypePersonal, TypeGroup, TypeConsultation:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Only scheduled bookings move; terminal states are final.
func CanTransition(from, to string) bool {
	if from != StatusScheduled {
		return false
	}
	switch to {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
