package models

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"-"`
}

type Note struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      int       `json:"userId"`
	VideoPath   string    `json:"videoPath"`
	Likes       []int     `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Comment struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	NoteID    int       `json:"noteId"`
	AuthorID  int       `json:"authorId"`
	Author    string    `json:"author"` // joined username, not a stored column
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessage carries a free-text user label rather than a user reference;
// the chat channel accepts unauthenticated sessions.
type ChatMessage struct {
	ID        int       `json:"id"`
	User      string    `json:"user"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
