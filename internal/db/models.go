package db

import (
	"time"

	"fitclub/internal/schedule"
)

type Trainer struct {
	ID         int
	Name       string
	Email      string
	Phone      string
	Specialty  string
	HourlyRate float64
	Status     string
	Hours      schedule.WorkingHours
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Client struct {
	ID        int
	Name      string
	Email     string
	Phone     string
	TrainerID int // 0 when no trainer is assigned
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Booking is a session row. Date is a calendar day, start/end are local
// wall-clock "HH:MM" strings; zero-padded, so they order lexically.
type Booking struct {
	ID            int
	Code          string
	TrainerID     int
	ClientID      int
	Date          string
	StartTime     string
	EndTime       string
	Status        string
	Type          string
	Price         float64
	Notes         string
	PaymentStatus string
	StripeSession string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
