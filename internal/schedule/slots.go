package schedule

import "errors"

// ErrInvalidDuration is returned for a non-positive slot duration.
var ErrInvalidDuration = errors.New("invalid duration")

// Slot is a derived candidate interval; never persisted, regenerated on every
// query from the current trainer and booking state.
type Slot struct {
	Time      string  `json:"time"`
	EndTime   string  `json:"end_time"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

// GenerateSlots walks candidate start times across the trainer's working
// window for the day at a fixed step, from the window start to the last start
// that still fits the duration, inclusive. Every grid slot is returned in
// ascending order, available or not, so a UI can render taken slots greyed
// out; all slots carry the same price, hourly rate pro-rated to the duration.
//
// The scan is a fixed grid, not gap-packing: a long existing booking can
// strand free minutes between grid points. Slot granularity is product
// policy, so that is intended.
func GenerateSlots(t Trainer, day DaySchedule, existing []Booking, durationMin, stepMin int) ([]Slot, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if stepMin <= 0 {
		stepMin = DefaultStepMinutes
	}
	if !day.IsWorking {
		return []Slot{}, nil
	}
	dayStart, err := ParseClock(day.Start)
	if err != nil {
		return nil, err
	}
	dayEnd, err := ParseClock(day.End)
	if err != nil {
		return nil, err
	}

	price := t.HourlyRate * float64(durationMin) / 60
	slots := []Slot{}
	for start := dayStart; start+durationMin <= dayEnd; start += stepMin {
		end := start + durationMin
		slots = append(slots, Slot{
			Time:      FormatClock(start),
			EndTime:   FormatClock(end),
			Available: IsAvailable(t, day, existing, start, end, 0),
			Price:     price,
		})
	}
	return slots, nil
}
