package sqlstore

import (
	"database/sql"
	"errors"
	"time"

	"github.com/brainjot/server/internal/models"
	"github.com/brainjot/server/pkg/apperrors"
)

func (s *SQLStore) CreateNote(note *models.Note) error {
	now := time.Now().UTC()
	var id int
	query := s.rebind("INSERT INTO notes (title, description, user_id, video_path, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, note.Title, note.Description, note.UserID, note.VideoPath, now, now).Scan(&id)
	if err != nil {
		return err
	}
	note.ID = id
	note.CreatedAt = now
	note.UpdatedAt = now
	note.Likes = []int{}
	return nil
}

func (s *SQLStore) GetNote(id int) (*models.Note, error) {
	var note models.Note
	query := s.rebind("SELECT id, title, description, user_id, video_path, created_at, updated_at FROM notes WHERE id = ?")
	err := s.db.QueryRow(query, id).Scan(&note.ID, &note.Title, &note.Description, &note.UserID, &note.VideoPath, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadLikes(&note); err != nil {
		return nil, err
	}
	return &note, nil
}

func (s *SQLStore) GetUserNotes(userID int) ([]models.Note, error) {
	query := s.rebind("SELECT id, title, description, user_id, video_path, created_at, updated_at FROM notes WHERE user_id = ? ORDER BY created_at DESC, id DESC")
	rows, err := s.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Description, &note.UserID, &note.VideoPath, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range notes {
		if err := s.loadLikes(&notes[i]); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// UpdateNote rewrites the mutable columns; user_id is never touched.
func (s *SQLStore) UpdateNote(note *models.Note) error {
	note.UpdatedAt = time.Now().UTC()
	query := s.rebind("UPDATE notes SET title = ?, description = ?, video_path = ?, updated_at = ? WHERE id = ?")
	result, err := s.db.Exec(query, note.Title, note.Description, note.VideoPath, note.UpdatedAt, note.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// DeleteNote removes the note's comments and likes before the note itself
// so a failure partway through cannot leave orphans pointing at a live note.
func (s *SQLStore) DeleteNote(id int) error {
	query := s.rebind("DELETE FROM comments WHERE note_id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		return err
	}

	query = s.rebind("DELETE FROM note_likes WHERE note_id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		return err
	}

	query = s.rebind("DELETE FROM notes WHERE id = ?")
	result, err := s.db.Exec(query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// ToggleLike adds userID to the note's likes, or removes it if present.
// The (note_id, user_id) primary key keeps the set duplicate-free.
func (s *SQLStore) ToggleLike(noteID, userID int) error {
	var exists bool
	query := s.rebind("SELECT EXISTS(SELECT 1 FROM note_likes WHERE note_id = ? AND user_id = ?)")
	if err := s.db.QueryRow(query, noteID, userID).Scan(&exists); err != nil {
		return err
	}

	if exists {
		query = s.rebind("DELETE FROM note_likes WHERE note_id = ? AND user_id = ?")
	} else {
		query = s.rebind("INSERT INTO note_likes (note_id, user_id) VALUES (?, ?)")
	}
	_, err := s.db.Exec(query, noteID, userID)
	return err
}

func (s *SQLStore) loadLikes(note *models.Note) error {
	query := s.rebind("SELECT user_id FROM note_likes WHERE note_id = ? ORDER BY user_id")
	rows, err := s.db.Query(query, note.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	note.Likes = []int{}
	for rows.Next() {
		var userID int
		if err := rows.Scan(&userID); err != nil {
			return err
		}
		note.Likes = append(note.Likes, userID)
	}
	return rows.Err()
}
