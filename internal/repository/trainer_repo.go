package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"fitclub/internal/db"
	"fitclub/internal/schedule"
)

type TrainerRepository struct {
	DB *sql.DB
}

func NewTrainerRepository(database *sql.DB) *TrainerRepository {
	return &TrainerRepository{DB: database}
}

const trainerColumns = `id, name, email, phone, COALESCE(specialty, ''), hourly_rate, status, working_hours, created_at, updated_at`

func scanTrainer(row interface{ Scan(...any) error }) (*db.Trainer, error) {
	var t db.Trainer
	var hours []byte
	err := row.Scan(
		&t.ID, &t.Name, &t.Email, &t.Phone, &t.Specialty,
		&t.HourlyRate, &t.Status, &hours, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &t.Hours); err != nil {
			// malformed stored hours degrade downstream, they never fail the row
			t.Hours = nil
		}
	}
	return &t, nil
}

func (r *TrainerRepository) GetTrainerByID(id int) (*db.Trainer, error) {
	t, err := scanTrainer(r.DB.QueryRow(`SELECT `+trainerColumns+` FROM trainers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("trainer %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying trainer %d: %w", id, err)
	}
	return t, nil
}

// List returns trainers, all of them or only the bookable ones.
func (r *TrainerRepository) ListTrainers(onlyActive bool) ([]db.Trainer, error) {
	query := `SELECT ` + trainerColumns + ` FROM trainers`
	if onlyActive {
		query += ` WHERE status = 'active'`
	}
	query += ` ORDER BY name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying trainers: %w", err)
	}
	defer rows.Close()

	var trainers []db.Trainer
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning trainer: %w", err)
		}
		trainers = append(trainers, *t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating trainer rows: %w", err)
	}
	return trainers, nil
}

func (r *TrainerRepository) CreateTrainer(t *db.Trainer) error {
	hours, err := json.Marshal(t.Hours)
	if err != nil {
		return fmt.Errorf("error encoding working hours: %w", err)
	}
	query := `
		INSERT INTO trainers (name, email, phone, specialty, hourly_rate, status, working_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		t.Name, t.Email, t.Phone, t.Specialty, t.HourlyRate, t.Status, hours,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TrainerRepository) UpdateWorkingHours(id int, hours schedule.WorkingHours) error {
	raw, err := json.Marshal(hours)
	if err != nil {
		return fmt.Errorf("error encoding working hours: %w", err)
	}
	result, err := r.DB.Exec(
		`UPDATE trainers SET working_hours = $1, updated_at = NOW() WHERE id = $2`, raw, id)
	if err != nil {
		return fmt.Errorf("error updating working hours for trainer %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("trainer %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *TrainerRepository) UpdateTrainerStatus(id int, status string) error {
	result, err := r.DB.Exec(
		`UPDATE trainers SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating trainer %d status: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("trainer %d: %w", id, ErrNotFound)
	}
	return nil
}

// CountBookings reports how many bookings still reference the trainer.
// A trainer with bookings is never hard-deleted, only soft-statused.
func (r *TrainerRepository) CountTrainerBookings(id int) (int, error) {
	var n int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE trainer_id = $1`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for trainer %d: %w", id, err)
	}
	return n, nil
}
