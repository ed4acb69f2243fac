package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/brainjot/server/internal/models"
	"github.com/brainjot/server/internal/store"
	"github.com/brainjot/server/internal/token"
	"github.com/brainjot/server/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Store    store.Store
	Secret   []byte
	TokenTTL time.Duration
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrMissingFields)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondError(w, apperrors.ErrMissingFields)
		return
	}

	if _, err := h.Store.GetUserByEmail(req.Email); err == nil {
		respondError(w, apperrors.ErrEmailTaken)
		return
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		respondError(w, err)
		return
	}
	if _, err := h.Store.GetUserByUsername(req.Username); err == nil {
		respondError(w, apperrors.ErrUsernameTaken)
		return
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		respondError(w, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, err)
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := h.Store.CreateUser(user); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully!"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, apperrors.ErrMissingFields)
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(w, apperrors.ErrMissingFields)
		return
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	user, err := h.Store.GetUserByEmail(req.Email)
	if err != nil {
		respondError(w, apperrors.ErrInvalidCredentials)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		respondError(w, apperrors.ErrInvalidCredentials)
		return
	}

	signed, err := token.Issue(h.Secret, user.ID, user.Username, h.TokenTTL)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token": signed,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
