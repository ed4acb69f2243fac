package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/brainjot/server/internal/models"
	"github.com/brainjot/server/pkg/apperrors"
)

func (s *SQLStore) CreateUser(user *models.User) error {
	var id int
	query := s.rebind("INSERT INTO users (username, email, password) VALUES (?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, user.Username, user.Email, user.Password).Scan(&id)
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (s *SQLStore) GetUserByEmail(email string) (*models.User, error) {
	query := s.rebind("SELECT id, username, email, password FROM users WHERE email = ?")
	return s.scanUser(s.db.QueryRow(query, email))
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	query := s.rebind("SELECT id, username, email, password FROM users WHERE username = ?")
	return s.scanUser(s.db.QueryRow(query, username))
}

func (s *SQLStore) GetUserByID(id int) (*models.User, error) {
	query := s.rebind("SELECT id, username, email, password FROM users WHERE id = ?")
	return s.scanUser(s.db.QueryRow(query, id))
}

func (s *SQLStore) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchUsers matches usernames by case-insensitive substring, skipping
// excludeID, capped at 10 rows.
func (s *SQLStore) SearchUsers(queryStr string, excludeID int) ([]models.User, error) {
	query := s.rebind("SELECT id, username FROM users WHERE LOWER(username) LIKE LOWER(?) AND id != ? LIMIT 10")
	rows, err := s.db.Query(query, "%"+queryStr+"%", excludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
