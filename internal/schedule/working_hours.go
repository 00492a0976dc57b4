package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday keys, Monday first. WorkingHours always carries all seven.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

type DaySchedule struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	IsWorking bool   `json:"is_working"`
}

// WorkingHours maps a weekday key to its open interval.
type WorkingHours map[string]DaySchedule

// DayOf maps a calendar date to its weekday key, local wall clock.
func DayOf(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

// For returns the schedule for the given date. A missing entry reads as an
// off day.
func (wh WorkingHours) For(date time.Time) DaySchedule {
	return wh[DayOf(date)]
}

// DefaultWorkingHours is the fallback schedule used when a trainer's stored
// hours fail validation: Mon-Fri 09:00-18:00, Saturday 10:00-16:00, Sunday off.
func DefaultWorkingHours() WorkingHours {
	wh := WorkingHours{}
	for _, day := range Weekdays[:5] {
		wh[day] = DaySchedule{Start: "09:00", End: "18:00", IsWorking: true}
	}
	wh["saturday"] = DaySchedule{Start: "10:00", End: "16:00", IsWorking: true}
	wh["sunday"] = DaySchedule{Start: "10:00", End: "16:00", IsWorking: false}
	return wh
}

// NormalizeWorkingHours validates a loosely-shaped weekly schedule. Every
// weekday must be present, and working days must carry well-formed HH:MM
// bounds with start < end. On any failure the whole schedule falls back to
// DefaultWorkingHours and the problems come back as warnings, so a broken
// trainer record degrades to bookable defaults instead of disappearing.
// Callers must surface the warnings; an empty warning list means the input
// was clean.
func NormalizeWorkingHours(raw WorkingHours) (WorkingHours, []string) {
	// No schedule at all is not a degradation, just an unset profile.
	if len(raw) == 0 {
		return DefaultWorkingHours(), nil
	}

	var warnings []string
	for _, day := range Weekdays {
		ds, ok := raw[day]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: missing entry", day))
			continue
		}
		if !ds.IsWorking {
			continue
		}
		start, err := ParseClock(ds.Start)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: bad start %q", day, ds.Start))
			continue
		}
		end, err := ParseClock(ds.End)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: bad end %q", day, ds.End))
			continue
		}
		if start >= end {
			warnings = append(warnings, fmt.Sprintf("%s: start %s not before end %s", day, ds.Start, ds.End))
		}
	}
	if len(warnings) > 0 {
		return DefaultWorkingHours(), warnings
	}
	out := WorkingHours{}
	for _, day := range Weekdays {
		out[day] = raw[day]
	}
	return out, nil
}
