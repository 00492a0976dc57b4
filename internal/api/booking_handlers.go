package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	apperrors "fitclub/internal/errors"
	"fitclub/internal/repository"
	"fitclub/internal/schedule"
	"fitclub/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// GetSlots answers GET /api/trainers/{id}/slots?date=...&duration=...&step=...
// with the full slot grid for the day, taken slots included.
func (h *BookingHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}
	duration, err := strconv.Atoi(r.URL.Query().Get("duration"))
	if err != nil {
		duration = 60
	}
	step, _ := strconv.Atoi(r.URL.Query().Get("step"))

	res, err := h.Service.GetAvailableSlots(trainerID, date, duration, step)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			http.Error(w, "Trainer not found", http.StatusNotFound)
		case errors.Is(err, schedule.ErrFormat), errors.Is(err, schedule.ErrInvalidDuration):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Error generating slots", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	res, verrs, err := h.Service.CreateBooking(req.BookingRequest, req.PayOnline)
	if err != nil {
		http.Error(w, "Error creating booking", http.StatusInternalServerError)
		return
	}
	if len(verrs) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{"errors": verrs})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	res, err := h.Service.GetBooking(code)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	res, err := h.Service.CancelBooking(code)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			respondError(w, apperrors.ErrNotFound("Booking not found"))
		case errors.Is(err, schedule.ErrInvalidTransition):
			respondError(w, apperrors.ErrConflict(err.Error()))
		default:
			http.Error(w, "Could not cancel booking", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// ListTrainerBookings answers GET /api/trainers/{id}/bookings?from=...&to=...
// used for calendar views.
func (h *BookingHandler) ListTrainerBookings(w http.ResponseWriter, r *http.Request) {
	trainerID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "from and to are required", http.StatusBadRequest)
		return
	}

	bookings, err := h.Service.ListTrainerBookings(trainerID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			http.Error(w, "Trainer not found", http.StatusNotFound)
		case errors.Is(err, schedule.ErrFormat):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Database error", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(bookings)
}
