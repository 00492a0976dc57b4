package service

import (
	"fmt"

	"go.uber.org/zap"

	"fitclub/internal/cache"
	"fitclub/internal/db"
	"fitclub/internal/schedule"
)

type TrainerService struct {
	trainers TrainerStore
	cache    *cache.ScheduleCache
	log      *zap.Logger
}

func NewTrainerService(trainers TrainerStore, scheduleCache *cache.ScheduleCache, log *zap.Logger) *TrainerService {
	return &TrainerService{trainers: trainers, cache: scheduleCache, log: log}
}

func (s *TrainerService) GetTrainer(id int) (*db.Trainer, error) {
	return s.trainers.GetTrainerByID(id)
}

func (s *TrainerService) ListTrainers(onlyActive bool) ([]db.Trainer, error) {
	return s.trainers.ListTrainers(onlyActive)
}

// CreateTrainer normalizes the submitted weekly schedule before storing it.
// Broken schedules degrade to the default with warnings; they never block
// trainer creation.
func (s *TrainerService) CreateTrainer(t *db.Trainer) ([]string, error) {
	if t.Status == "" {
		t.Status = schedule.TrainerActive
	}
	hours, warnings := schedule.NormalizeWorkingHours(t.Hours)
	for _, w := range warnings {
		s.log.Warn("trainer created with degraded working hours",
			zap.String("name", t.Name), zap.String("problem", w))
	}
	t.Hours = hours
	if err := s.trainers.CreateTrainer(t); err != nil {
		return nil, err
	}
	return warnings, nil
}

// UpdateWorkingHours replaces a trainer's weekly schedule and invalidates the
// cached copy.
func (s *TrainerService) UpdateWorkingHours(id int, raw schedule.WorkingHours) ([]string, error) {
	hours, warnings := schedule.NormalizeWorkingHours(raw)
	for _, w := range warnings {
		s.log.Warn("working hours update degraded to default",
			zap.Int("trainer_id", id), zap.String("problem", w))
	}
	if err := s.trainers.UpdateWorkingHours(id, hours); err != nil {
		return nil, err
	}
	s.cache.Invalidate(id)
	return warnings, nil
}

// GetWorkingHours returns the trainer's normalized schedule plus any
// degradation warnings.
func (s *TrainerService) GetWorkingHours(id int) (schedule.WorkingHours, []string, error) {
	t, err := s.trainers.GetTrainerByID(id)
	if err != nil {
		return nil, nil, err
	}
	hours, warnings := schedule.NormalizeWorkingHours(t.Hours)
	return hours, warnings, nil
}

// DeleteTrainer soft-deletes. A trainer with bookings keeps its row so the
// bookings keep a valid reference; the status change alone takes it out of
// every bookable path.
func (s *TrainerService) DeleteTrainer(id int) error {
	n, err := s.trainers.CountTrainerBookings(id)
	if err != nil {
		return err
	}
	if n > 0 {
		s.log.Info("soft-deleting trainer with bookings",
			zap.Int("trainer_id", id), zap.Int("bookings", n))
	}
	if err := s.trainers.UpdateTrainerStatus(id, schedule.TrainerDeleted); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	return nil
}

// SetTrainerStatus flips the lifecycle status (active, inactive, suspended).
func (s *TrainerService) SetTrainerStatus(id int, status string) error {
	switch status {
	case schedule.TrainerActive, schedule.TrainerInactive, schedule.TrainerSuspended, schedule.TrainerDeleted:
	default:
		return fmt.Errorf("unknown trainer status %q", status)
	}
	if err := s.trainers.UpdateTrainerStatus(id, status); err != nil {
		return err
	}
	s.cache.Invalidate(id)
	return nil
}
