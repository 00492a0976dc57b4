package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario A: Mon 09:00-18:00, no bookings, 60-minute sessions at a
// 30-minute step. Starts run 09:00..17:00 inclusive, all available.
func TestGenerateSlots_EmptyDay(t *testing.T) {
	tr := mondayTrainer()
	slots, err := GenerateSlots(tr, tr.Hours["monday"], nil, 60, 30)
	require.NoError(t, err)
	require.Len(t, slots, 17)

	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "10:00", slots[0].EndTime)
	assert.Equal(t, "17:00", slots[16].Time)
	for i, s := range slots {
		assert.True(t, s.Available, s.Time)
		assert.Equal(t, 60.0, s.Price, s.Time)
		if i > 0 {
			assert.Less(t, slots[i-1].Time, s.Time)
		}
	}
}

func TestGenerateSlots_MarksTakenSlotsUnavailableButPriced(t *testing.T) {
	tr := mondayTrainer()
	existing := []Booking{booking(1, "10:00", "11:00", StatusScheduled)}

	slots, err := GenerateSlots(tr, tr.Hours["monday"], existing, 60, 30)
	require.NoError(t, err)
	require.Len(t, slots, 17)

	byStart := map[string]Slot{}
	for _, s := range slots {
		byStart[s.Time] = s
	}
	// 09:30-10:30, 10:00-11:00 and 10:30-11:30 all touch the booking.
	assert.True(t, byStart["09:00"].Available)
	assert.False(t, byStart["09:30"].Available)
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.True(t, byStart["11:00"].Available)

	// unavailable slots still carry the price
	assert.Equal(t, 60.0, byStart["10:00"].Price)
}

// Scenario D: an off day yields no slots regardless of its configured bounds.
func TestGenerateSlots_OffDay(t *testing.T) {
	tr := mondayTrainer()
	sunday := DaySchedule{Start: "08:00", End: "20:00", IsWorking: false}
	slots, err := GenerateSlots(tr, sunday, nil, 60, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_InvalidDuration(t *testing.T) {
	tr := mondayTrainer()
	for _, d := range []int{0, -30} {
		_, err := GenerateSlots(tr, tr.Hours["monday"], nil, d, 30)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	}
}

func TestGenerateSlots_DurationLongerThanWindow(t *testing.T) {
	tr := mondayTrainer()
	day := DaySchedule{Start: "09:00", End: "10:00", IsWorking: true}
	slots, err := GenerateSlots(tr, day, nil, 90, 30)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_AvailableSlotsStayInsideWorkingHours(t *testing.T) {
	tr := mondayTrainer()
	day := tr.Hours["saturday"] // 10:00-16:00
	slots, err := GenerateSlots(tr, day, nil, 45, 30)
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		if !s.Available {
			continue
		}
		start, err := ParseClock(s.Time)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, start, 600)
		assert.LessOrEqual(t, start+45, 960)
	}
	// last start is the latest grid point that still fits: 15:00
	assert.Equal(t, "15:00", slots[len(slots)-1].Time)
}

// Reads are pure: identical inputs, identical output.
func TestGenerateSlots_Idempotent(t *testing.T) {
	tr := mondayTrainer()
	existing := []Booking{booking(1, "13:00", "14:30", StatusScheduled)}
	first, err := GenerateSlots(tr, tr.Hours["monday"], existing, 60, 30)
	require.NoError(t, err)
	second, err := GenerateSlots(tr, tr.Hours["monday"], existing, 60, 30)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_DefaultStep(t *testing.T) {
	tr := mondayTrainer()
	slots, err := GenerateSlots(tr, tr.Hours["monday"], nil, 60, 0)
	require.NoError(t, err)
	require.Len(t, slots, 17)
	assert.Equal(t, "09:30", slots[1].Time)
}
