package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitclub/internal/db"
	"fitclub/internal/repository"
	"fitclub/internal/schedule"
)

func newTestBookingService(store *repository.MemoryStore) *BookingService {
	svc := NewBookingService(store, store, store, nil, nil, nil, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	}
	return svc
}

func seedStore(t *testing.T) *repository.MemoryStore {
	t.Helper()
	store := repository.NewMemoryStore()
	store.PutTrainer(db.Trainer{
		ID:         1,
		Name:       "Dana",
		Status:     schedule.TrainerActive,
		HourlyRate: 40,
		Hours:      schedule.DefaultWorkingHours(),
	})
	store.PutClient(db.Client{ID: 2, Name: "Riley", Email: "riley@example.com", TrainerID: 1})
	return store
}

// 2026-03-02 is a Monday, a default working day 09:00-18:00.
func validRequest() schedule.BookingRequest {
	return schedule.BookingRequest{
		TrainerID: 1,
		ClientID:  2,
		Date:      "2026-03-02",
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func TestCreateBooking(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	res, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	assert.NotEmpty(t, res.Code)
	assert.Equal(t, schedule.StatusScheduled, res.Status)
	assert.Equal(t, schedule.TypePersonal, res.Type)
	assert.Equal(t, 40.0, res.Price)
	assert.Equal(t, "Dana", res.TrainerName)
	assert.Equal(t, "Riley", res.ClientName)
}

func TestCreateBookingRejectsConflict(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	first, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	req := validRequest()
	req.StartTime = "10:30"
	req.EndTime = "11:30"
	_, verrs, err = svc.CreateBooking(req, false)
	require.NoError(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "start_time", verrs[0].Field)
	assert.Contains(t, verrs[0].Message, first.Code)
}

func TestCreateBookingIgnoresSubmittedStatus(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	req := validRequest()
	req.Status = schedule.StatusCompleted
	res, verrs, err := svc.CreateBooking(req, false)
	require.NoError(t, err)
	require.Empty(t, verrs)
	assert.Equal(t, schedule.StatusScheduled, res.Status)
}

func TestCreateBookingConcurrentSameSlot(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	const n = 8
	var wg sync.WaitGroup
	results := make(chan int, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, verrs, err := svc.CreateBooking(validRequest(), false)
			if err == nil && len(verrs) == 0 {
				results <- 1
			}
		}()
	}
	wg.Wait()
	close(results)

	created := 0
	for range results {
		created++
	}
	assert.Equal(t, 1, created, "exactly one concurrent request should win the slot")

	rows, err := svc.ListBookings("2026-03-02", schedule.StatusScheduled, 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	first, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	_, err = svc.CancelBooking(first.Code)
	require.NoError(t, err)

	res, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)
	assert.NotEqual(t, first.Code, res.Code)
}

func TestUpdateBookingStatusTransitions(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	res, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	updated, err := svc.UpdateBookingStatus(res.Code, schedule.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, schedule.StatusCompleted, updated.Status)

	// Terminal states are final.
	_, err = svc.UpdateBookingStatus(res.Code, schedule.StatusCancelled)
	assert.ErrorIs(t, err, schedule.ErrInvalidTransition)

	_, err = svc.UpdateBookingStatus(res.Code, "archived")
	assert.ErrorIs(t, err, schedule.ErrInvalidTransition)
}

func TestUpdateBookingStatusNotFound(t *testing.T) {
	svc := newTestBookingService(seedStore(t))
	_, err := svc.UpdateBookingStatus("missing", schedule.StatusCancelled)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateBookingReassignsClient(t *testing.T) {
	store := seedStore(t)
	store.PutTrainer(db.Trainer{
		ID:         3,
		Name:       "Morgan",
		Status:     schedule.TrainerActive,
		HourlyRate: 50,
		Hours:      schedule.DefaultWorkingHours(),
	})
	svc := newTestBookingService(store)

	req := validRequest()
	req.TrainerID = 3

	_, verrs, err := svc.CreateBooking(req, false)
	require.NoError(t, err)
	require.Len(t, verrs, 1, "booking another trainer without reassign should fail")
	assert.Equal(t, "trainer_id", verrs[0].Field)

	req.Reassign = true
	_, verrs, err = svc.CreateBooking(req, false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	client, err := store.GetClientByID(2)
	require.NoError(t, err)
	assert.Equal(t, 3, client.TrainerID)
}

func TestGetAvailableSlotsReflectsBookings(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	before, err := svc.GetAvailableSlots(1, "2026-03-02", 60, 30)
	require.NoError(t, err)
	require.True(t, before.Working)

	available := func(res []schedule.Slot, at string) bool {
		for _, s := range res {
			if s.Time == at {
				return s.Available
			}
		}
		return false
	}
	assert.True(t, available(before.Slots, "10:00"))

	_, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	after, err := svc.GetAvailableSlots(1, "2026-03-02", 60, 30)
	require.NoError(t, err)
	assert.False(t, available(after.Slots, "10:00"))
	assert.False(t, available(after.Slots, "10:30"), "overlapping start should be taken too")
	assert.True(t, available(after.Slots, "11:00"))
	assert.Len(t, after.Slots, len(before.Slots), "taken slots stay in the grid")
}

func TestGetAvailableSlotsBadInput(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	_, err := svc.GetAvailableSlots(1, "03/02/2026", 60, 30)
	assert.ErrorIs(t, err, schedule.ErrFormat)

	_, err = svc.GetAvailableSlots(99, "2026-03-02", 60, 30)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetAvailableSlots(1, "2026-03-02", 0, 30)
	assert.ErrorIs(t, err, schedule.ErrInvalidDuration)
}

func TestListTrainerBookings(t *testing.T) {
	svc := newTestBookingService(seedStore(t))

	_, verrs, err := svc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	rows, err := svc.ListTrainerBookings(1, "2026-03-01", "2026-03-07")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.ListTrainerBookings(1, "2026-03-01", "next week")
	assert.ErrorIs(t, err, schedule.ErrFormat)
}
