package handlers

import (
	"net/http"

	"github.com/brainjot/server/internal/middleware"
	"github.com/brainjot/server/internal/models"
	"github.com/brainjot/server/internal/store"
	"github.com/brainjot/server/pkg/apperrors"
	"github.com/gorilla/mux"
)

type UsersHandler struct {
	Store store.Store
}

// Profile returns the caller's own record, password excluded.
func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respondError(w, apperrors.ErrNoToken)
		return
	}

	user, err := h.Store.GetUserByID(claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// Search matches usernames by case-insensitive substring, excluding the
// caller, capped at 10 results. An empty query yields an empty list.
func (h *UsersHandler) Search(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respondError(w, apperrors.ErrNoToken)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		respondJSON(w, http.StatusOK, []models.User{})
		return
	}

	users, err := h.Store.SearchUsers(query, claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

// PublicProfile returns a user's public identity and their notes,
// newest-first. Email stays private.
func (h *UsersHandler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := h.Store.GetUserByUsername(username)
	if err != nil {
		respondError(w, err)
		return
	}

	notes, err := h.Store.GetUserNotes(user.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"user":  models.User{ID: user.ID, Username: user.Username},
		"notes": notes,
	})
}
