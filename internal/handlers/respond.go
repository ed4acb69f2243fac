package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/brainjot/server/pkg/apperrors"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

// respondError maps any error onto the API's status/message surface.
// Errors outside the taxonomy become a plain 500 "Server Error".
func respondError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown || code == apperrors.CodeInternal {
		log.Printf("internal error: %v", err)
	}
	respondJSON(w, code.HTTPStatus(), map[string]string{"message": apperrors.MessageOf(err)})
}
