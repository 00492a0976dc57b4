package schedule

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ValidationError is one problem with a booking request. The validator
// collects every applicable error instead of stopping at the first, so a
// form can show all of them at once.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// BookingRequest is a structurally decoded creation/edit request. The
// validator only does semantic checks; the API boundary is responsible for
// getting the shape right.
type BookingRequest struct {
	TrainerID int    `json:"trainer_id"`
	ClientID  int    `json:"client_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Type      string `json:"type,omitempty"`
	Status    string `json:"status,omitempty"`
	Notes     string `json:"notes,omitempty"`
	// Reassign lets a request book a trainer other than the client's
	// currently assigned one. Without it that mismatch is an error.
	Reassign bool `json:"reassign,omitempty"`
	// ExcludeBookingID skips one existing booking in the conflict check,
	// used when re-validating an edit of that booking.
	ExcludeBookingID int `json:"-"`
}

// Lookups carries the reference data the validator needs, resolved by the
// caller so the validator stays pure.
type Lookups struct {
	Trainer         *Trainer // nil when the trainer id is unknown
	ClientExists    bool
	ClientTrainerID int       // 0 when the client has no assigned trainer
	Existing        []Booking // the trainer's bookings on the requested date
	Today           time.Time
}

// ValidateBooking runs the full creation pipeline: required fields,
// referenced entities, calendar sanity, time format and order, duration
// bounds, enums, conflicts, and client/trainer consistency. All failures are
// collected. On a clean request it returns the normalized booking ready for
// insertion; inserting is the store's job, not the validator's.
func ValidateBooking(req BookingRequest, look Lookups) (Booking, []ValidationError) {
	var errs []ValidationError
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if req.TrainerID == 0 {
		add("trainer_id", "required")
	}
	if req.ClientID == 0 {
		add("client_id", "required")
	}
	if req.Date == "" {
		add("date", "required")
	}
	if req.StartTime == "" {
		add("start_time", "required")
	}
	if req.EndTime == "" {
		add("end_time", "required")
	}

	if req.TrainerID != 0 {
		if look.Trainer == nil {
			add("trainer_id", "trainer not found")
		} else if look.Trainer.Status != TrainerActive {
			add("trainer_id", fmt.Sprintf("trainer is %s, only active trainers can be booked", look.Trainer.Status))
		}
	}
	if req.ClientID != 0 && !look.ClientExists {
		add("client_id", "client not found")
	}

	dateOK := false
	if req.Date != "" {
		day, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err != nil {
			add("date", "must be YYYY-MM-DD")
		} else {
			dateOK = true
			// Only the calendar day is checked; a same-day booking in the
			// past hour is allowed.
			today := look.Today.Format(dateLayout)
			if day.Format(dateLayout) < today {
				add("date", "cannot be in the past")
			}
		}
	}

	start, end := -1, -1
	if req.StartTime != "" {
		if v, err := ParseClock(req.StartTime); err != nil {
			add("start_time", "must be HH:MM")
		} else {
			start = v
		}
	}
	if req.EndTime != "" {
		if v, err := ParseClock(req.EndTime); err != nil {
			add("end_time", "must be HH:MM")
		} else {
			end = v
		}
	}
	if start >= 0 && end >= 0 {
		if start >= end {
			add("end_time", "must be after start_time")
		} else {
			duration := end - start
			if duration < MinBookingMinutes {
				add("end_time", fmt.Sprintf("session must be at least %d minutes", MinBookingMinutes))
			}
			if duration > MaxBookingMinutes {
				add("end_time", fmt.Sprintf("session cannot exceed %d minutes", MaxBookingMinutes))
			}
		}
	}

	if req.Type != "" && !ValidType(req.Type) {
		add("type", "must be one of personal, group, consultation")
	}
	if req.Status != "" && !ValidStatus(req.Status) {
		add("status", "must be one of scheduled, completed, cancelled, no-show")
	}

	if look.Trainer != nil && dateOK && start >= 0 && end >= 0 && start < end {
		day, err := time.ParseInLocation(dateLayout, req.Date, time.Local)
		if err == nil {
			ds := look.Trainer.Hours.For(day)
			if !WithinDay(ds, start, end) {
				add("start_time", "outside the trainer's working hours")
			}
		}
		for _, c := range Conflicts(look.Existing, start, end, req.ExcludeBookingID) {
			add("start_time", fmt.Sprintf("conflicts with booking %s (%s-%s)", c.Code, c.StartTime, c.EndTime))
		}
	}

	// Reported separately so the calling layer can decide whether a client
	// switching trainers is an error or an explicit reassignment.
	if look.ClientTrainerID != 0 && req.TrainerID != 0 && look.ClientTrainerID != req.TrainerID && !req.Reassign {
		add("trainer_id", "client is assigned to a different trainer; set reassign to override")
	}

	if len(errs) > 0 {
		return Booking{}, errs
	}

	b := Booking{
		TrainerID: req.TrainerID,
		ClientID:  req.ClientID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
		Type:      req.Type,
		Notes:     strings.TrimSpace(req.Notes),
	}
	if b.Status == "" {
		b.Status = StatusScheduled
	}
	if b.Type == "" {
		b.Type = TypePersonal
	}
	if look.Trainer != nil {
		b.Price = look.Trainer.HourlyRate * float64(end-start) / 60
	}
	return b, nil
}
