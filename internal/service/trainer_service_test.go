package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fitclub/internal/db"
	"fitclub/internal/repository"
	"fitclub/internal/schedule"
)

func TestCreateTrainerDefaults(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewTrainerService(store, nil, zap.NewNop())

	trainer := &db.Trainer{Name: "Dana", HourlyRate: 40}
	warnings, err := svc.CreateTrainer(trainer)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, schedule.TrainerActive, trainer.Status)

	// A nil schedule normalizes to the default week.
	assert.Equal(t, schedule.DefaultWorkingHours(), trainer.Hours)
}

func TestCreateTrainerDegradedHours(t *testing.T) {
	store := repository.NewMemoryStore()
	svc := NewTrainerService(store, nil, zap.NewNop())

	trainer := &db.Trainer{
		Name: "Dana",
		Hours: schedule.WorkingHours{
			"monday": {Start: "18:00", End: "09:00", IsWorking: true},
		},
	}
	warnings, err := svc.CreateTrainer(trainer)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Equal(t, schedule.DefaultWorkingHours(), trainer.Hours)
}

func TestDeleteTrainerIsSoft(t *testing.T) {
	store := seedStore(t)
	svc := NewTrainerService(store, nil, zap.NewNop())

	bookingSvc := newTestBookingService(store)
	_, verrs, err := bookingSvc.CreateBooking(validRequest(), false)
	require.NoError(t, err)
	require.Empty(t, verrs)

	require.NoError(t, svc.DeleteTrainer(1))

	trainer, err := store.GetTrainerByID(1)
	require.NoError(t, err)
	assert.Equal(t, schedule.TrainerDeleted, trainer.Status)

	// The existing booking still resolves.
	rows, err := store.ListForTrainerDate(1, "2026-03-02")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// But the trainer is no longer bookable.
	_, verrs, err = bookingSvc.CreateBooking(schedule.BookingRequest{
		TrainerID: 1, ClientID: 2, Date: "2026-03-03",
		StartTime: "10:00", EndTime: "11:00",
	}, false)
	require.NoError(t, err)
	require.NotEmpty(t, verrs)
	assert.Equal(t, "trainer_id", verrs[0].Field)
}

func TestSetTrainerStatusRejectsUnknown(t *testing.T) {
	store := seedStore(t)
	svc := NewTrainerService(store, nil, zap.NewNop())

	assert.Error(t, svc.SetTrainerStatus(1, "on-vacation"))
	assert.NoError(t, svc.SetTrainerStatus(1, schedule.TrainerSuspended))
}

func TestGetWorkingHoursNormalizes(t *testing.T) {
	store := repository.NewMemoryStore()
	store.PutTrainer(db.Trainer{
		ID:     1,
		Status: schedule.TrainerActive,
		Hours: schedule.WorkingHours{
			"tuesday": {Start: "9:00", End: "17:00", IsWorking: true},
		},
	})
	svc := NewTrainerService(store, nil, zap.NewNop())

	hours, warnings, err := svc.GetWorkingHours(1)
	require.NoError(t, err)
	assert.NotEmpty(t, warnings, "single-digit hour is not a valid HH:MM")
	assert.Equal(t, schedule.DefaultWorkingHours(), hours)
}
