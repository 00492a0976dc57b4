package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// ImportRow is one row of a bulk onboarding batch. Trusted sources may seed
// terminal statuses directly, which the interactive path never allows.
type ImportRow struct {
	TrainerID int     `json:"trainer_id"`
	ClientID  int     `json:"client_id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Type      string  `json:"type,omitempty"`
	Status    string  `json:"status,omitempty"`
	Price     float64 `json:"price,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// ImportIssue is one per-row finding of the advisory import validation.
type ImportIssue struct {
	Row   int    `json:"row"`
	Field string `json:"field"`
	Value string `json:"value"`
	Error string `json:"error"`
}

// ValidateImportRow applies the reduced bulk-import rule set: field formats,
// referenced-id existence, the duration bound and trainer/client consistency.
// No past-date or conflict checking, and nothing is written anywhere; the
// report is advisory. The duration bound is the same 30..240 policy as
// interactive creation, so the import never flags a row the booking flow
// itself would accept.
func ValidateImportRow(rowNum int, row ImportRow, look Lookups) []ImportIssue {
	var issues []ImportIssue
	add := func(field, value, msg string) {
		issues = append(issues, ImportIssue{Row: rowNum, Field: field, Value: value, Error: msg})
	}

	if row.TrainerID == 0 {
		add("trainer_id", "", "required")
	} else if look.Trainer == nil {
		add("trainer_id", strconv.Itoa(row.TrainerID), "trainer not found")
	}
	if row.ClientID == 0 {
		add("client_id", "", "required")
	} else if !look.ClientExists {
		add("client_id", strconv.Itoa(row.ClientID), "client not found")
	}

	if row.Date == "" {
		add("date", "", "required")
	} else if _, err := time.ParseInLocation(dateLayout, row.Date, time.Local); err != nil {
		add("date", row.Date, "must be YYYY-MM-DD")
	}

	start, end := -1, -1
	if row.StartTime == "" {
		add("start_time", "", "required")
	} else if v, err := ParseClock(row.StartTime); err != nil {
		add("start_time", row.StartTime, "must be HH:MM")
	} else {
		start = v
	}
	if row.EndTime == "" {
		add("end_time", "", "required")
	} else if v, err := ParseClock(row.EndTime); err != nil {
		add("end_time", row.EndTime, "must be HH:MM")
	} else {
		end = v
	}
	if start >= 0 && end >= 0 {
		if start >= end {
			add("end_time", row.EndTime, "must be after start_time")
		} else if d := end - start; d < MinBookingMinutes || d > MaxBookingMinutes {
			add("end_time", row.EndTime,
				fmt.Sprintf("duration must be %d-%d minutes", MinBookingMinutes, MaxBookingMinutes))
		}
	}

	if row.Type != "" && !ValidType(row.Type) {
		add("type", row.Type, "must be one of personal, group, consultation")
	}
	if row.Status != "" && !ValidStatus(row.Status) {
		add("status", row.Status, "must be one of scheduled, completed, cancelled, no-show")
	}
	if row.Price < 0 {
		add("price", strconv.FormatFloat(row.Price, 'f', -1, 64), "cannot be negative")
	}

	if look.ClientTrainerID != 0 && row.TrainerID != 0 && look.ClientTrainerID != row.TrainerID {
		add("trainer_id", strconv.Itoa(row.TrainerID), "client is assigned to a different trainer")
	}

	return issues
}
