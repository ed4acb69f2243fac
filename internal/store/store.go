package store

import "github.com/brainjot/server/internal/models"

type Store interface {
	// User operations
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	SearchUsers(query string, excludeID int) ([]models.User, error)

	// Note operations
	CreateNote(note *models.Note) error
	GetNote(id int) (*models.Note, error)
	GetUserNotes(userID int) ([]models.Note, error)
	UpdateNote(note *models.Note) error
	DeleteNote(id int) error
	ToggleLike(noteID, userID int) error

	// Comment operations
	CreateComment(comment *models.Comment) error
	GetNoteComments(noteID int) ([]models.Comment, error)

	// Chat operations
	SaveChatMessage(user, message string) (*models.ChatMessage, error)
	GetChatMessages() ([]models.ChatMessage, error)
	CountUserMessages(user string) (int, error)
	GetChatUsers() ([]string, error)
}
