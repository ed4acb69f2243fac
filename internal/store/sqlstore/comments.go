package sqlstore

import (
	"time"

	"github.com/brainjot/server/internal/models"
)

func (s *SQLStore) CreateComment(comment *models.Comment) error {
	now := time.Now().UTC()
	var id int
	query := s.rebind("INSERT INTO comments (note_id, author_id, body, created_at) VALUES (?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, comment.NoteID, comment.AuthorID, comment.Text, now).Scan(&id)
	if err != nil {
		return err
	}
	comment.ID = id
	comment.CreatedAt = now
	return nil
}

// GetNoteComments returns the note's comments newest-first, each joined
// with its author's username.
func (s *SQLStore) GetNoteComments(noteID int) ([]models.Comment, error) {
	query := s.rebind(`
		SELECT c.id, c.body, c.note_id, c.author_id, u.username, c.created_at
		FROM comments c
		JOIN users u ON c.author_id = u.id
		WHERE c.note_id = ?
		ORDER BY c.created_at DESC, c.id DESC
	`)
	rows, err := s.db.Query(query, noteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Text, &c.NoteID, &c.AuthorID, &c.Author, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
