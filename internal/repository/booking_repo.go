package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"fitclub/internal/db"
	"fitclub/internal/entities"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

const bookingColumns = `id, code, trainer_id, client_id, date::text, start_time, end_time, status, type, price, notes, COALESCE(payment_status, ''), COALESCE(stripe_session_id, ''), created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*db.Booking, error) {
	var b db.Booking
	err := row.Scan(
		&b.ID, &b.Code, &b.TrainerID, &b.ClientID, &b.Date, &b.StartTime, &b.EndTime,
		&b.Status, &b.Type, &b.Price, &b.Notes, &b.PaymentStatus, &b.StripeSession,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) CreateBooking(b *db.Booking) error {
	query := `
		INSERT INTO bookings
		(code, trainer_id, client_id, date, start_time, end_time, status, type, price, notes, payment_status, stripe_session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''), NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		b.Code, b.TrainerID, b.ClientID, b.Date, b.StartTime, b.EndTime,
		b.Status, b.Type, b.Price, b.Notes, b.PaymentStatus, b.StripeSession,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) GetBookingByCode(code string) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE code = $1`
	b, err := scanBooking(r.DB.QueryRow(query, code))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying booking %q: %w", code, err)
	}
	return b, nil
}

// ListForTrainerDate returns every booking of the trainer on the calendar
// day, cancelled ones included; the conflict engine does its own status
// filtering so the snapshot stays reusable.
func (r *BookingRepository) ListForTrainerDate(trainerID int, date string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings WHERE trainer_id = $1 AND date = $2
		ORDER BY start_time`
	return r.queryBookings(query, trainerID, date)
}

// ListForTrainerRange returns the trainer's bookings with date in [from, to].
func (r *BookingRepository) ListForTrainerRange(trainerID int, from, to string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings WHERE trainer_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date, start_time`
	return r.queryBookings(query, trainerID, from, to)
}

// List is the admin view with optional filters.
func (r *BookingRepository) ListBookings(date, status string, trainerID int) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []any{}
	idx := 1

	if date != "" {
		query += " AND date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if status != "" {
		query += " AND status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	if trainerID != 0 {
		query += " AND trainer_id = $" + strconv.Itoa(idx)
		args = append(args, trainerID)
		idx++
	}
	query += " ORDER BY date DESC, start_time DESC"

	return r.queryBookings(query, args...)
}

func (r *BookingRepository) queryBookings(query string, args ...any) ([]db.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateBookingStatus(id int, status string) error {
	result, err := r.DB.Exec(`UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating booking %d status: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("booking %d: %w", id, ErrNotFound)
	}
	return nil
}

// UpdatePaymentBySession records the outcome of a checkout session.
func (r *BookingRepository) UpdatePaymentBySession(sessionID, paymentStatus string) error {
	_, err := r.DB.Exec(
		`UPDATE bookings SET payment_status = $1, updated_at = NOW() WHERE stripe_session_id = $2`,
		paymentStatus, sessionID)
	if err != nil {
		return fmt.Errorf("error updating payment status for session %s: %w", sessionID, err)
	}
	return nil
}

// GetResponseByCode returns the booking joined with trainer and client
// details for API responses and notifications. The trainer join is
// nullable-safe: a soft-deleted trainer orphans its bookings without hiding
// them.
func (r *BookingRepository) GetBookingResponseByCode(code string) (*entities.BookingResponse, error) {
	query := `
		SELECT
			b.id, b.code, b.trainer_id, COALESCE(t.name, ''),
			b.client_id, COALESCE(c.name, ''), COALESCE(c.email, ''), COALESCE(c.phone, ''),
			b.date::text, b.start_time, b.end_time, b.status, b.type, b.price, b.notes,
			b.created_at, b.updated_at
		FROM bookings b
		LEFT JOIN trainers t ON t.id = b.trainer_id
		LEFT JOIN clients c ON c.id = b.client_id
		WHERE b.code = $1`

	var res entities.BookingResponse
	err := r.DB.QueryRow(query, code).Scan(
		&res.ID, &res.Code, &res.TrainerID, &res.TrainerName,
		&res.ClientID, &res.ClientName, &res.ClientEmail, &res.ClientPhone,
		&res.Date, &res.StartTime, &res.EndTime, &res.Status, &res.Type, &res.Price, &res.Notes,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking %q: %w", code, ErrNotFound)
		}
		return nil, fmt.Errorf("error querying or scanning booking: %w", err)
	}
	return &res, nil
}
