package main

import (
	"log"
	"net/http"

	"github.com/brainjot/server/internal/config"
	"github.com/brainjot/server/internal/handlers"
	"github.com/brainjot/server/internal/middleware"
	"github.com/brainjot/server/internal/store/sqlstore"
	"github.com/brainjot/server/internal/ws"
	"github.com/gorilla/mux"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	secret := []byte(cfg.JWTSecret)

	// Initialize Database
	store, err := sqlstore.New(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize WebSocket Hub
	hub := ws.NewHub(store)
	go hub.Run()

	// Initialize Handlers
	authHandler := &handlers.AuthHandler{Store: store, Secret: secret, TokenTTL: cfg.TokenTTL}
	usersHandler := &handlers.UsersHandler{Store: store}
	notesHandler := &handlers.NotesHandler{
		Store:          store,
		UploadDir:      cfg.UploadDir,
		PlaceholderURL: cfg.PlaceholderURL,
	}
	chatHandler := &handlers.ChatHandler{Store: store}

	r := mux.NewRouter()
	r.Use(middleware.Logging)

	// Public endpoints
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Authenticated endpoints
	api := r.NewRoute().Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return middleware.Auth(secret, next)
	})
	api.HandleFunc("/profile", usersHandler.Profile).Methods("GET")
	api.HandleFunc("/users/search", usersHandler.Search).Methods("GET")
	api.HandleFunc("/users/profile/{username}", usersHandler.PublicProfile).Methods("GET")
	api.HandleFunc("/notes", notesHandler.Create).Methods("POST")
	api.HandleFunc("/notes", notesHandler.List).Methods("GET")
	api.HandleFunc("/notes/{id}", notesHandler.Update).Methods("PUT")
	api.HandleFunc("/notes/{id}", notesHandler.Delete).Methods("DELETE")
	api.HandleFunc("/notes/{id}/like", notesHandler.ToggleLike).Methods("PUT")
	api.HandleFunc("/notes/{id}/comments", notesHandler.AddComment).Methods("POST")
	api.HandleFunc("/notes/{id}/comments", notesHandler.ListComments).Methods("GET")
	api.HandleFunc("/messages", chatHandler.Messages).Methods("GET")
	api.HandleFunc("/users", chatHandler.Users).Methods("GET")

	// WebSocket Endpoint
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWs(hub, w, r)
	})

	log.Println("Starting server on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
