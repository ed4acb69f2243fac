package sqlstore

import (
	"testing"

	"github.com/brainjot/server/internal/models"
)

func TestGetNoteCommentsNewestFirstWithAuthor(t *testing.T) {
	SetupTestDB(t)
	defer TeardownTestDB()

	owner := createTestUser(t, "owner")
	commenter := createTestUser(t, "commenter")
	note := &models.Note{Title: "note", UserID: owner.ID}
	testStore.CreateNote(note)

	first := &models.Comment{Text: "first", NoteID: note.ID, AuthorID: commenter.ID}
	second := &models.Comment{Text: "second", NoteID: note.ID, AuthorID: owner.ID}
	if err := testStore.CreateComment(first); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}
	if err := testStore.CreateComment(second); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	comments, err := testStore.GetNoteComments(note.ID)
	if err != nil {
		t.Fatalf("GetNoteComments failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Errorf("Expected newest-first ordering, got %s then %s", comments[0].Text, comments[1].Text)
	}
	if comments[0].Author != "owner" || comments[1].Author != "commenter" {
		t.Errorf("Expected joined author usernames, got %s and %s", comments[0].Author, comments[1].Author)
	}
}
