package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fitclub/internal/db"
	"fitclub/internal/entities"
	apperrors "fitclub/internal/errors"
	"fitclub/internal/repository"
	"fitclub/internal/schedule"
	"fitclub/internal/service"
)

type AdminHandler struct {
	Bookings *service.BookingService
	Trainers *service.TrainerService
	Imports  *service.ImportService
}

func NewAdminHandler(bookings *service.BookingService, trainers *service.TrainerService, imports *service.ImportService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Trainers: trainers, Imports: imports}
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	trainerID, _ := strconv.Atoi(r.URL.Query().Get("trainer_id"))

	bookings, err := h.Bookings.ListBookings(date, status, trainerID)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entities.BookingsList{Total: len(bookings), Bookings: bookings})
}

// UpdateBookingStatus applies one state-machine step to a booking. Invalid
// transitions come back as 409.
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	var req UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	res, err := h.Bookings.UpdateBookingStatus(code, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			respondError(w, apperrors.ErrNotFound("Booking not found"))
		case errors.Is(err, schedule.ErrInvalidTransition):
			respondError(w, apperrors.ErrConflict(err.Error()))
		default:
			http.Error(w, "Could not update booking", http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *AdminHandler) CreateTrainer(w http.ResponseWriter, r *http.Request) {
	var req CreateTrainerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	trainer := &db.Trainer{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
		Hours:      req.Hours,
	}
	warnings, err := h.Trainers.CreateTrainer(trainer)
	if err != nil {
		http.Error(w, "Could not create trainer", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"trainer":  trainer,
		"warnings": warnings,
	})
}

func (h *AdminHandler) UpdateWorkingHours(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	var hours schedule.WorkingHours
	if err := json.NewDecoder(r.Body).Decode(&hours); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	warnings, err := h.Trainers.UpdateWorkingHours(id, hours)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Trainer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not update working hours", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":  "Working hours updated",
		"warnings": warnings,
	})
}

func (h *AdminHandler) UpdateTrainerStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	var req UpdateTrainerStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.Trainers.SetTrainerStatus(id, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Trainer not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Trainer status updated"})
}

// DeleteTrainer soft-deletes; bookings keep their trainer reference.
func (h *AdminHandler) DeleteTrainer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	if err := h.Trainers.DeleteTrainer(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Trainer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Could not delete trainer", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Trainer deleted"})
}

// ValidateImport runs the advisory bulk validation and returns the report.
// Nothing is committed.
func (h *AdminHandler) ValidateImport(w http.ResponseWriter, r *http.Request) {
	var req ImportValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	report, err := h.Imports.ValidateRows(req.Rows)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
