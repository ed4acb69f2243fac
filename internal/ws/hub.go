package ws

import (
	"encoding/json"
	"log"

	"github.com/brainjot/server/internal/store"
)

// Event is the wire envelope for everything crossing the realtime channel.
type Event struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// inbound pairs a decoded event with the session that sent it, so the hub
// can exclude the sender from typing fan-out.
type inbound struct {
	client *Client
	event  Event
}

type Hub struct {
	// Registered clients.
	clients map[*Client]bool

	// Inbound events from the clients.
	inbound chan inbound

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	store store.Store
}

func NewHub(store store.Store) *Hub {
	return &Hub{
		inbound:    make(chan inbound),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		store:      store,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				// The session may have vanished mid-typing; clear the
				// indicator for everyone else before dropping it.
				h.broadcastOthers(client, Event{Event: "stoppedTyping"})
				delete(h.clients, client)
				close(client.send)
			}
		case in := <-h.inbound:
			h.handleEvent(in.client, in.event)
		}
	}
}

func (h *Hub) handleEvent(sender *Client, event Event) {
	switch event.Event {
	case "sendMessage":
		h.handleSendMessage(event.Data)
	case "userStartedTyping":
		var username string
		if err := json.Unmarshal(event.Data, &username); err != nil {
			log.Printf("invalid userStartedTyping payload: %s", event.Data)
			return
		}
		h.broadcastOthers(sender, makeEvent("isTyping", username))
	case "userStoppedTyping":
		h.broadcastOthers(sender, Event{Event: "stoppedTyping"})
	default:
		log.Printf("unknown event from session %s: %q", sender.id, event.Event)
	}
}

// handleSendMessage validates, persists and fans out a chat message. The
// channel has no per-event error path back to the sender: anything invalid
// is logged and dropped.
func (h *Hub) handleSendMessage(data json.RawMessage) {
	var msg struct {
		User    string  `json:"user"`
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(data, &msg); err != nil || msg.User == "" || msg.Message == nil {
		log.Printf("invalid message received: %s", data)
		return
	}

	saved, err := h.store.SaveChatMessage(msg.User, *msg.Message)
	if err != nil {
		log.Printf("error saving message: %v", err)
		return
	}
	h.broadcastAll(makeEvent("newMessage", saved))

	count, err := h.store.CountUserMessages(msg.User)
	if err != nil {
		log.Printf("error counting user messages: %v", err)
		return
	}
	// First message ever from this label means the user list grew.
	if count == 1 {
		h.broadcastAll(Event{Event: "userListUpdated"})
	}
}

func (h *Hub) broadcastAll(event Event) {
	h.broadcastOthers(nil, event)
}

// broadcastOthers sends event to every client except skip. Clients with a
// full send buffer are evicted rather than awaited.
func (h *Hub) broadcastOthers(skip *Client, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("error encoding event %q: %v", event.Event, err)
		return
	}
	for client := range h.clients {
		if client == skip {
			continue
		}
		select {
		case client.send <- payload:
		default:
			close(client.send)
			delete(h.clients, client)
		}
	}
}

func makeEvent(name string, data interface{}) Event {
	payload, err := json.Marshal(data)
	if err != nil {
		log.Printf("error encoding %q data: %v", name, err)
		return Event{Event: name}
	}
	return Event{Event: name, Data: payload}
}
