package handlers

import (
	"net/http"

	"github.com/brainjot/server/internal/store"
)

type ChatHandler struct {
	Store store.Store
}

// Messages returns the whole chat history, oldest-first.
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Store.GetChatMessages()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// Users returns the distinct user labels seen in chat history.
func (h *ChatHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.Store.GetChatUsers()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}
