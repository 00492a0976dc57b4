package api

import (
	"encoding/json"
	"net/http"

	apperrors "fitclub/internal/errors"
)

func respondError(w http.ResponseWriter, err *apperrors.HTTPError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Message})
}
