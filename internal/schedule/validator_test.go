package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLookups() Lookups {
	tr := mondayTrainer()
	return Lookups{
		Trainer:      &tr,
		ClientExists: true,
		Today:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local),
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		TrainerID: 1,
		ClientID:  10,
		Date:      "2026-03-02", // a Monday
		StartTime: "10:00",
		EndTime:   "11:00",
		Type:      TypePersonal,
	}
}

func fieldsOf(errs []ValidationError) []string {
	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestValidateBooking_Valid(t *testing.T) {
	b, errs := ValidateBooking(validRequest(), validLookups())
	require.Empty(t, errs)
	assert.Equal(t, StatusScheduled, b.Status)
	assert.Equal(t, TypePersonal, b.Type)
	assert.Equal(t, 60.0, b.Price)
	assert.Equal(t, "2026-03-02", b.Date)
}

func TestValidateBooking_CollectsAllErrors(t *testing.T) {
	_, errs := ValidateBooking(BookingRequest{}, Lookups{Today: time.Now()})
	assert.ElementsMatch(t,
		[]string{"trainer_id", "client_id", "date", "start_time", "end_time"},
		fieldsOf(errs))
}

// Scenario C: end before start fails on time order alone.
func TestValidateBooking_TimeOrder(t *testing.T) {
	req := validRequest()
	req.StartTime = "14:00"
	req.EndTime = "13:30"
	_, errs := ValidateBooking(req, validLookups())
	require.Len(t, errs, 1)
	assert.Equal(t, "end_time", errs[0].Field)
	assert.Contains(t, errs[0].Message, "after start_time")
}

func TestValidateBooking_DurationBounds(t *testing.T) {
	cases := []struct {
		end string
		ok  bool
	}{
		{"10:29", false}, // 29 min
		{"10:30", true},  // 30 min
		{"14:00", true},  // 240 min
		{"14:01", false}, // 241 min
	}
	for _, tc := range cases {
		req := validRequest()
		req.EndTime = tc.end
		_, errs := ValidateBooking(req, validLookups())
		if tc.ok {
			assert.Empty(t, errs, tc.end)
		} else {
			assert.NotEmpty(t, errs, tc.end)
		}
	}
}

func TestValidateBooking_PastDate(t *testing.T) {
	req := validRequest()
	req.Date = "2026-02-28"
	_, errs := ValidateBooking(req, validLookups())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "past")

	// same day is fine even if the clock time already passed
	req.Date = "2026-03-01"
	look := validLookups()
	look.Today = time.Date(2026, 3, 1, 23, 0, 0, 0, time.Local)
	// 2026-03-01 is a Sunday; keep the trainer working that day for this case
	tr := mondayTrainer()
	tr.Hours["sunday"] = DaySchedule{Start: "09:00", End: "18:00", IsWorking: true}
	look.Trainer = &tr
	_, errs = ValidateBooking(req, look)
	assert.Empty(t, errs)
}

func TestValidateBooking_UnknownReferences(t *testing.T) {
	req := validRequest()
	look := validLookups()
	look.Trainer = nil
	look.ClientExists = false
	_, errs := ValidateBooking(req, look)
	assert.ElementsMatch(t, []string{"trainer_id", "client_id"}, fieldsOf(errs))
}

func TestValidateBooking_InactiveTrainer(t *testing.T) {
	look := validLookups()
	look.Trainer.Status = TrainerInactive
	_, errs := ValidateBooking(validRequest(), look)
	require.Len(t, errs, 1)
	assert.Equal(t, "trainer_id", errs[0].Field)
	assert.Contains(t, errs[0].Message, "inactive")
}

func TestValidateBooking_BadEnums(t *testing.T) {
	req := validRequest()
	req.Type = "yoga-retreat"
	req.Status = "maybe"
	_, errs := ValidateBooking(req, validLookups())
	assert.ElementsMatch(t, []string{"type", "status"}, fieldsOf(errs))
}

func TestValidateBooking_ConflictNamesTheBooking(t *testing.T) {
	look := validLookups()
	look.Existing = []Booking{booking(7, "10:30", "11:30", StatusScheduled)}
	_, errs := ValidateBooking(validRequest(), look)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "bk-10:30")
	assert.Contains(t, errs[0].Message, "10:30-11:30")
}

func TestValidateBooking_ExcludeSelfOnEdit(t *testing.T) {
	look := validLookups()
	look.Existing = []Booking{booking(7, "10:00", "11:00", StatusScheduled)}
	req := validRequest()
	req.ExcludeBookingID = 7
	_, errs := ValidateBooking(req, look)
	assert.Empty(t, errs)
}

func TestValidateBooking_OutsideWorkingHours(t *testing.T) {
	req := validRequest()
	req.StartTime = "07:00"
	req.EndTime = "08:00"
	_, errs := ValidateBooking(req, validLookups())
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "working hours")
}

func TestValidateBooking_TrainerMismatchIsSeparateAndOverridable(t *testing.T) {
	look := validLookups()
	look.ClientTrainerID = 2

	_, errs := ValidateBooking(validRequest(), look)
	require.Len(t, errs, 1)
	assert.Equal(t, "trainer_id", errs[0].Field)
	assert.Contains(t, errs[0].Message, "reassign")

	req := validRequest()
	req.Reassign = true
	_, errs = ValidateBooking(req, look)
	assert.Empty(t, errs)
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusScheduled, StatusCompleted))
	assert.True(t, CanTransition(StatusScheduled, StatusCancelled))
	assert.True(t, CanTransition(StatusScheduled, StatusNoShow))

	assert.False(t, CanTransition(StatusScheduled, StatusScheduled))
	for _, terminal := range []string{StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.False(t, CanTransition(terminal, StatusScheduled), terminal)
		assert.False(t, CanTransition(terminal, StatusCompleted), terminal)
	}
}
