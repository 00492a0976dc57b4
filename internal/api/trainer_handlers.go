package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fitclub/internal/repository"
	"fitclub/internal/service"
)

type TrainerHandler struct {
	Service *service.TrainerService
}

func NewTrainerHandler(svc *service.TrainerService) *TrainerHandler {
	return &TrainerHandler{Service: svc}
}

func (h *TrainerHandler) ListTrainers(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("all") != "true"
	trainers, err := h.Service.ListTrainers(onlyActive)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trainers)
}

func (h *TrainerHandler) GetTrainer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	trainer, err := h.Service.GetTrainer(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Trainer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(trainer)
}

// GetWorkingHours returns the trainer's normalized weekly schedule. A broken
// stored schedule comes back as the default plus warnings rather than an
// error.
func (h *TrainerHandler) GetWorkingHours(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid trainer ID", http.StatusBadRequest)
		return
	}
	hours, warnings, err := h.Service.GetWorkingHours(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "Trainer not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(WorkingHoursResponse{TrainerID: id, Hours: hours, Warnings: warnings})
}
