package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fitclub/internal/db"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(database *sql.DB) *ClientRepository {
	return &ClientRepository{DB: database}
}

func (r *ClientRepository) GetClientByID(id int) (*db.Client, error) {
	var c db.Client
	var trainerID sql.NullInt64
	query := `SELECT id, name, email, phone, trainer_id, status, created_at, updated_at
		FROM clients WHERE id = $1 AND status != 'deleted'`
	err := r.DB.QueryRow(query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &trainerID, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("client %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying client %d: %w", id, err)
	}
	if trainerID.Valid {
		c.TrainerID = int(trainerID.Int64)
	}
	return &c, nil
}

// AssignTrainer records the client's trainer, used when a booking explicitly
// reassigns them.
func (r *ClientRepository) AssignTrainer(clientID, trainerID int) error {
	result, err := r.DB.Exec(
		`UPDATE clients SET trainer_id = $1, updated_at = NOW() WHERE id = $2`, trainerID, clientID)
	if err != nil {
		return fmt.Errorf("error assigning trainer %d to client %d: %w", trainerID, clientID, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("client %d: %w", clientID, ErrNotFound)
	}
	return nil
}
