package entities

import "time"

type BookingResponse struct {
	ID          int       `json:"id"`
	Code        string    `json:"code"`
	TrainerID   int       `json:"trainer_id"`
	TrainerName string    `json:"trainer_name,omitempty"`
	ClientID    int       `json:"client_id"`
	ClientName  string    `json:"client_name,omitempty"`
	ClientEmail string    `json:"client_email,omitempty"`
	ClientPhone string    `json:"client_phone,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Notes       string    `json:"notes,omitempty"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
