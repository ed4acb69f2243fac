package sqlstore

import (
	"time"

	"github.com/brainjot/server/internal/models"
)

func (s *SQLStore) SaveChatMessage(user, message string) (*models.ChatMessage, error) {
	now := time.Now().UTC()
	var id int
	query := s.rebind("INSERT INTO chat_messages (username, body, created_at) VALUES (?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, user, message, now).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &models.ChatMessage{ID: id, User: user, Message: message, Timestamp: now}, nil
}

func (s *SQLStore) GetChatMessages() ([]models.ChatMessage, error) {
	query := s.rebind("SELECT id, username, body, created_at FROM chat_messages ORDER BY created_at ASC, id ASC")
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.User, &m.Message, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (s *SQLStore) CountUserMessages(user string) (int, error) {
	var count int
	query := s.rebind("SELECT COUNT(*) FROM chat_messages WHERE username = ?")
	err := s.db.QueryRow(query, user).Scan(&count)
	return count, err
}

// GetChatUsers returns the distinct user labels seen in chat history.
func (s *SQLStore) GetChatUsers() ([]string, error) {
	query := s.rebind("SELECT DISTINCT username FROM chat_messages ORDER BY username")
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []string{}
	for rows.Next() {
		var user string
		if err := rows.Scan(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
