package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/brainjot/server/internal/middleware"
	"github.com/brainjot/server/internal/models"
	"github.com/brainjot/server/internal/store"
	"github.com/brainjot/server/pkg/apperrors"
	"github.com/gorilla/mux"
)

const maxUploadMemory = 32 << 20

type NotesHandler struct {
	Store          store.Store
	UploadDir      string
	PlaceholderURL string
}

// Create persists a new note owned by the caller. Without an upload the
// note points at the placeholder video.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respondError(w, apperrors.ErrNoToken)
		return
	}
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, apperrors.InvalidArg("Invalid form data."))
		return
	}

	videoPath, err := h.saveUpload(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if videoPath == "" {
		videoPath = h.PlaceholderURL
	}

	note := &models.Note{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		UserID:      claims.UserID,
		VideoPath:   videoPath,
	}
	if err := h.Store.CreateNote(note); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, note)
}

// List returns the caller's notes, newest-first.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respondError(w, apperrors.ErrNoToken)
		return
	}

	notes, err := h.Store.GetUserNotes(claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// Update applies a partial update: empty fields keep their prior value.
// A new upload replaces the old video, deleting the old local file
// best-effort.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	note, err := h.ownedNote(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		respondError(w, apperrors.InvalidArg("Invalid form data."))
		return
	}

	if title := r.FormValue("title"); title != "" {
		note.Title = title
	}
	if description := r.FormValue("description"); description != "" {
		note.Description = description
	}

	newPath, err := h.saveUpload(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if newPath != "" {
		h.removeLocalVideo(note.VideoPath)
		note.VideoPath = newPath
	}

	if err := h.Store.UpdateNote(note); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// Delete removes a note, its media file (best-effort) and all of its
// comments.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	note, err := h.ownedNote(r)
	if err != nil {
		respondError(w, err)
		return
	}

	h.removeLocalVideo(note.VideoPath)

	if err := h.Store.DeleteNote(note.ID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

// ToggleLike flips the caller's like on a note. Any authenticated user may
// like any note; ownership is not checked here on purpose.
func (h *NotesHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respondError(w, apperrors.ErrNoToken)
		return
	}

	noteID, err := noteIDFrom(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if _, err := h.Store.GetNote(noteID); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Store.ToggleLike(noteID, claims.UserID); err != nil {
		respondError(w, err)
		return
	}

	note, err := h.Store.GetNote(noteID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// AddComment attaches a comment to a note. Like likes, commenting is open
// to any authenticated user.
func (h *NotesHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		respondError(w, apperrors.ErrNoToken)
		return
	}

	noteID, err := noteIDFrom(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		respondError(w, apperrors.ErrCommentRequired)
		return
	}

	if _, err := h.Store.GetNote(noteID); err != nil {
		respondError(w, err)
		return
	}

	comment := &models.Comment{
		Text:     req.Text,
		NoteID:   noteID,
		AuthorID: claims.UserID,
		Author:   claims.Username,
	}
	if err := h.Store.CreateComment(comment); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, comment)
}

// ListComments returns a note's comments, newest-first, joined with author
// usernames.
func (h *NotesHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	noteID, err := noteIDFrom(r)
	if err != nil {
		respondError(w, err)
		return
	}

	comments, err := h.Store.GetNoteComments(noteID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, comments)
}

// ownedNote loads the addressed note and enforces that the caller owns it.
func (h *NotesHandler) ownedNote(r *http.Request) (*models.Note, error) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		return nil, apperrors.ErrNoToken
	}

	noteID, err := noteIDFrom(r)
	if err != nil {
		return nil, err
	}
	note, err := h.Store.GetNote(noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != claims.UserID {
		return nil, apperrors.ErrNotOwner
	}
	return note, nil
}

func noteIDFrom(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, apperrors.ErrNoteNotFound
	}
	return id, nil
}

// saveUpload stores the request's videoFile part under UploadDir, named
// with an upload timestamp prefix. Returns "" when no file was sent.
func (h *NotesHandler) saveUpload(r *http.Request) (string, error) {
	file, header, err := r.FormFile("videoFile")
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", apperrors.InvalidArg("Invalid form data.")
	}
	defer file.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	dst := filepath.Join(h.UploadDir, name)
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return filepath.ToSlash(dst), nil
}

// removeLocalVideo deletes a stored media file. External URLs are left
// alone, and deletion failure is logged rather than propagated.
func (h *NotesHandler) removeLocalVideo(videoPath string) {
	if videoPath == "" || strings.HasPrefix(videoPath, "http") {
		return
	}
	if err := os.Remove(filepath.FromSlash(videoPath)); err != nil {
		log.Printf("error deleting video file %s: %v", videoPath, err)
	}
}
