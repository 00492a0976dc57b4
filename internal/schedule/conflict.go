package schedule

// Conflicts returns the bookings in existing whose interval overlaps
// [start,end), skipping cancelled ones and the booking with excludeID
// (pass 0 to exclude nothing; the non-zero form is used when re-validating
// an edit against itself). Times are minutes since midnight; the caller is
// expected to have scoped existing to one trainer and one date.
func Conflicts(existing []Booking, start, end, excludeID int) []Booking {
	var out []Booking
	for _, b := range existing {
		if excludeID != 0 && b.ID == excludeID {
			continue
		}
		if b.Status == StatusCancelled {
			continue
		}
		bStart, err := ParseClock(b.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := ParseClock(b.EndTime)
		if err != nil {
			continue
		}
		if Overlaps(start, end, bStart, bEnd) {
			out = append(out, b)
		}
	}
	return out
}

// WithinDay reports whether [start,end) sits inside the day's working
// interval. Always false on an off day.
func WithinDay(day DaySchedule, start, end int) bool {
	if !day.IsWorking {
		return false
	}
	dayStart, err := ParseClock(day.Start)
	if err != nil {
		return false
	}
	dayEnd, err := ParseClock(day.End)
	if err != nil {
		return false
	}
	return start >= dayStart && end <= dayEnd
}

// IsAvailable reports whether the trainer can take a booking over [start,end):
// the trainer is active, the day is a working day, the interval fits the
// working window and nothing non-cancelled overlaps it. A single bool with no
// reason; callers that need the reason use WithinDay and Conflicts directly.
func IsAvailable(t Trainer, day DaySchedule, existing []Booking, start, end, excludeID int) bool {
	if t.Status != TrainerActive {
		return false
	}
	if !WithinDay(day, start, end) {
		return false
	}
	return len(Conflicts(existing, start, end, excludeID)) == 0
}
