package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// Event types published when tier list data changes.
const (
	EventUpvotes = "upvotes"
	EventGames   = "games"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// UpvotesPayload carries the recomputed upvote count of a game.
type UpvotesPayload struct {
	GameID  uint  `json:"game_id"`
	Upvotes int64 `json:"upvotes"`
}

// GamesPayload tells clients a game was created, edited, moved or deleted.
type GamesPayload struct {
	GameID uint   `json:"game_id"`
	Action string `json:"action"`
}

// Client is a buffered channel an SSE handler listens to.
type Client chan []byte

// Hub fans events out to every open page.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
	}
}

// Subscribe registers a new client with room for buffer pending events.
func (h *Hub) Subscribe(buffer int) Client {
	client := make(Client, buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return client
}

// Unsubscribe removes a client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client) // Close the channel to signal the SSE handler to stop.
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends an event to all clients. It never blocks: clients whose
// buffer is full miss the event.
func (h *Hub) Broadcast(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error encoding %s event: %v", event.Type, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client <- messageBytes:
		default:
		}
	}
}
