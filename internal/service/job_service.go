package service

import (
	"fmt"
	"log"

	"fitclub/internal/repository"
	"fitclub/internal/schedule"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompletePastBookings moves scheduled sessions whose end time has passed to
// "completed". No-shows stay a manual admin call; the cron only closes out
// sessions nobody touched.
func (s *JobService) CompletePastBookings() error {
	log.Println("Cron Job: Checking for bookings to mark as 'completed'...")

	bookingIDs, err := s.Repo.GetScheduledBookingIDsPastEndTime()
	if err != nil {
		return fmt.Errorf("cron job: failed to get scheduled bookings past end time: %w", err)
	}

	if len(bookingIDs) == 0 {
		log.Println("Cron Job: No scheduled bookings found past their end time.")
		return nil
	}

	log.Printf("Cron Job: Found %d bookings to mark as 'completed'. IDs: %v", len(bookingIDs), bookingIDs)

	err = s.Repo.UpdateBookingStatuses(bookingIDs, schedule.StatusCompleted)
	if err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}

	log.Printf("Cron Job: Successfully updated %d bookings to 'completed'.", len(bookingIDs))
	return nil
}

// DeleteStalePendingPayments drops bookings whose checkout session never
// completed.
func (s *JobService) DeleteStalePendingPayments(olderThanHours int) (int64, error) {
	return s.Repo.DeleteStalePendingPayments(olderThanHours)
}
