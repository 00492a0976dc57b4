package service

import (
	"fitclub/internal/db"
	"fitclub/internal/entities"
	"fitclub/internal/schedule"
)

// Store interfaces consumed by the services. The Postgres repositories and
// the in-memory store both satisfy them, so the engine never touches global
// state and the service tests run without a database.

type TrainerStore interface {
	GetTrainerByID(id int) (*db.Trainer, error)
	ListTrainers(onlyActive bool) ([]db.Trainer, error)
	CreateTrainer(t *db.Trainer) error
	UpdateWorkingHours(id int, hours schedule.WorkingHours) error
	UpdateTrainerStatus(id int, status string) error
	CountTrainerBookings(id int) (int, error)
}

type ClientStore interface {
	GetClientByID(id int) (*db.Client, error)
	AssignTrainer(clientID, trainerID int) error
}

type BookingStore interface {
	CreateBooking(b *db.Booking) error
	GetBookingByCode(code string) (*db.Booking, error)
	ListForTrainerDate(trainerID int, date string) ([]db.Booking, error)
	ListForTrainerRange(trainerID int, from, to string) ([]db.Booking, error)
	ListBookings(date, status string, trainerID int) ([]db.Booking, error)
	UpdateBookingStatus(id int, status string) error
	UpdatePaymentBySession(sessionID, paymentStatus string) error
	GetBookingResponseByCode(code string) (*entities.BookingResponse, error)
}
