package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brainjot/server/internal/models"
	"github.com/brainjot/server/internal/store/sqlstore"
	"github.com/gorilla/mux"
)

func newUsersHandler(t *testing.T) (*UsersHandler, *sqlstore.SQLStore) {
	t.Helper()
	store, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return &UsersHandler{Store: store}, store
}

func TestProfile(t *testing.T) {
	handler, store := newUsersHandler(t)
	alice := createUser(t, store, "alice")

	req := authedRequest(alice, "GET", "/profile", nil)
	rr := httptest.NewRecorder()
	handler.Profile(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("profile failed: %d", rr.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp["username"] != "alice" {
		t.Errorf("Expected username 'alice', got %v", resp["username"])
	}
	if _, ok := resp["password"]; ok {
		t.Error("Password must never appear in responses")
	}
}

func TestProfileUserGone(t *testing.T) {
	handler, _ := newUsersHandler(t)
	ghost := &models.User{ID: 9999, Username: "ghost"}

	req := authedRequest(ghost, "GET", "/profile", nil)
	rr := httptest.NewRecorder()
	handler.Profile(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for deleted user, got %d", rr.Code)
	}
}

func TestSearchExcludesSelf(t *testing.T) {
	handler, store := newUsersHandler(t)
	alice := createUser(t, store, "alice")
	createUser(t, store, "alina")
	createUser(t, store, "bob")

	req := authedRequest(alice, "GET", "/users/search?q=ali", nil)
	rr := httptest.NewRecorder()
	handler.Search(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("search failed: %d", rr.Code)
	}

	var users []models.User
	json.Unmarshal(rr.Body.Bytes(), &users)
	if len(users) != 1 || users[0].Username != "alina" {
		t.Errorf("Expected only 'alina', got %v", users)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	handler, store := newUsersHandler(t)
	alice := createUser(t, store, "alice")

	req := authedRequest(alice, "GET", "/users/search", nil)
	rr := httptest.NewRecorder()
	handler.Search(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("search failed: %d", rr.Code)
	}
	if body := rr.Body.String(); body != "[]\n" {
		t.Errorf("Expected empty array, got %s", body)
	}
}

func TestPublicProfile(t *testing.T) {
	handler, store := newUsersHandler(t)
	alice := createUser(t, store, "alice")
	bob := createUser(t, store, "bob")

	note := &models.Note{Title: "public note", UserID: alice.ID}
	store.CreateNote(note)

	req := authedRequest(bob, "GET", "/users/profile/alice", nil)
	req = mux.SetURLVars(req, map[string]string{"username": "alice"})
	rr := httptest.NewRecorder()
	handler.PublicProfile(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("public profile failed: %d", rr.Code)
	}

	var resp struct {
		User  map[string]interface{} `json:"user"`
		Notes []models.Note          `json:"notes"`
	}
	json.Unmarshal(rr.Body.Bytes(), &resp)
	if resp.User["username"] != "alice" {
		t.Errorf("Expected user 'alice', got %v", resp.User)
	}
	if _, ok := resp.User["email"]; ok {
		t.Error("Email must not appear in public profiles")
	}
	if len(resp.Notes) != 1 || resp.Notes[0].Title != "public note" {
		t.Errorf("Expected alice's notes, got %v", resp.Notes)
	}

	req = authedRequest(bob, "GET", "/users/profile/nobody", nil)
	req = mux.SetURLVars(req, map[string]string{"username": "nobody"})
	rr = httptest.NewRecorder()
	handler.PublicProfile(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown username, got %d", rr.Code)
	}
}
