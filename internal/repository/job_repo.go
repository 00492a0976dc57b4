package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{DB: db}
}

// GetScheduledBookingIDsPastEndTime finds scheduled sessions whose day and
// end time are already behind us. End times are zero-padded HH:MM, so the
// text comparison against to_char(..) orders correctly.
func (r *JobRepository) GetScheduledBookingIDsPastEndTime() ([]int, error) {
	query := `
		SELECT id FROM bookings
		WHERE status = 'scheduled'
		  AND (date < CURRENT_DATE
		       OR (date = CURRENT_DATE AND end_time < to_char(NOW(), 'HH24:MI')))`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying scheduled bookings past end time: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateBookingStatuses moves a batch of bookings to newStatus and bumps
// updated_at.
func (r *JobRepository) UpdateBookingStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating booking statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d bookings to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// DeleteStalePendingPayments clears checkout sessions that never completed.
func (r *JobRepository) DeleteStalePendingPayments(olderThanHours int) (int64, error) {
	query := `
		DELETE FROM bookings
		WHERE payment_status = 'pending'
		  AND stripe_session_id IS NOT NULL
		  AND created_at < NOW() - ($1 || ' hours')::interval`
	result, err := r.DB.Exec(query, olderThanHours)
	if err != nil {
		return 0, fmt.Errorf("error deleting stale pending payments: %w", err)
	}
	return result.RowsAffected()
}
