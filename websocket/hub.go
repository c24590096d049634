package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeCommentCreated   MessageType = "COMMENT_CREATED"
	MessageTypeCommentModerated MessageType = "COMMENT_MODERATED"
	MessageTypeError            MessageType = "ERROR"
)

type WebSocketMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
	// Target identifies the content the comment belongs to, e.g.
	// "gallery:<uuid>". Empty means a dashboard-wide event.
	Target string `json:"target,omitempty"`
}

type Client struct {
	ID      uuid.UUID
	Email   string
	Conn    *websocket.Conn
	Hub     *Hub
	Send    chan WebSocketMessage
	Targets map[string]bool
	mu      sync.RWMutex
}

type Hub struct {
	clients    map[*Client]bool
	broadcast  chan WebSocketMessage
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan WebSocketMessage),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.broadcastToAll(message)
		}
	}
}

// Broadcast sends a message to all connected clients
func (h *Hub) Broadcast(message WebSocketMessage) {
	h.broadcast <- message
}

// BroadcastToTarget sends a message to clients watching a specific content
// item; clients with no target filter receive everything.
func (h *Hub) BroadcastToTarget(target string, message WebSocketMessage) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		client.mu.RLock()
		watchesAll := len(client.Targets) == 0
		_, watchesTarget := client.Targets[target]
		client.mu.RUnlock()

		if watchesAll || watchesTarget {
			select {
			case client.Send <- message:
			default:
				slow = append(slow, client)
			}
		}
	}
	h.mu.RUnlock()

	h.evictClients(slow)
}

// broadcastToAll sends a message to all connected clients
func (h *Hub) broadcastToAll(message WebSocketMessage) {
	var slow []*Client

	h.mu.RLock()
	for client := range h.clients {
		select {
		case client.Send <- message:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	h.evictClients(slow)
}

// evictClients drops clients whose Send buffer is full. Mutating the clients
// map needs the write lock, and the membership check keeps a client that two
// concurrent broadcasts both flagged from having Send closed twice.
func (h *Hub) evictClients(slow []*Client) {
	if len(slow) == 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range slow {
		if _, ok := h.clients[client]; ok {
			delete(h.clients, client)
			close(client.Send)
		}
	}
}

// GetClientCount returns the number of connected clients
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// WatchTarget adds a content item to the client's filter
func (c *Client) WatchTarget(target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Targets == nil {
		c.Targets = make(map[string]bool)
	}
	c.Targets[target] = true
}

// UnwatchTarget removes a content item from the client's filter
func (c *Client) UnwatchTarget(target string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Targets, target)
}
