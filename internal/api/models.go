package api

import (
	"fitclub/internal/schedule"
)

// Booking
type CreateBookingRequest struct {
	schedule.BookingRequest
	PayOnline bool `json:"pay_online,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status"`
}

// Trainer
type CreateTrainerRequest struct {
	Name       string                `json:"name"`
	Email      string                `json:"email"`
	Phone      string                `json:"phone"`
	Specialty  string                `json:"specialty"`
	HourlyRate float64               `json:"hourly_rate"`
	Hours      schedule.WorkingHours `json:"working_hours"`
}

type UpdateTrainerStatusRequest struct {
	Status string `json:"status"`
}

type WorkingHoursResponse struct {
	TrainerID int                   `json:"trainer_id"`
	Hours     schedule.WorkingHours `json:"working_hours"`
	Warnings  []string              `json:"warnings,omitempty"`
}

// Bulk import
type ImportValidationRequest struct {
	Rows []schedule.ImportRow `json:"rows"`
}
