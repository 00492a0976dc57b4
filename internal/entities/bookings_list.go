package entities

import "fitclub/internal/schedule"

// BookingsList is the admin listing envelope.
type BookingsList struct {
	Total    int                `json:"total"`
	Bookings []schedule.Booking `json:"bookings"`
}
