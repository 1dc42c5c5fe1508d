package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"nhooyr.io/websocket" //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
)

// PreviewMessage is broadcast to all connected clients whenever a new
// narrative preview is available.
type PreviewMessage struct {
	Type     string `json:"type"`
	Sentence string `json:"sentence"`
}

// PreviewRequest is what a client sends as the form changes: the
// current submission plus the selected pair.
type PreviewRequest struct {
	Task         string `json:"task"`
	Organization string `json:"organization,omitempty"`
	Location     string `json:"location,omitempty"`
	Category     string `json:"category"`
	Subcategory  string `json:"subcategory"`
}

// PreviewFunc renders one live preview for a client request.
type PreviewFunc func(PreviewRequest) PreviewMessage

// PreviewHub manages WebSocket connections and broadcasts narrative
// previews to every client as form state changes anywhere.
type PreviewHub struct {
	clients    map[clientInterface]bool
	broadcast  chan interface{}
	register   chan clientInterface
	unregister chan clientInterface
	preview    PreviewFunc
	origins    []string
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
}

// clientInterface allows for both real clients and mock clients.
type clientInterface interface {
	getSendChannel() chan []byte
	close()
}

// Client represents a WebSocket connection.
type Client struct {
	hub  *PreviewHub
	conn *websocket.Conn //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
	send chan []byte
}

func (c *Client) getSendChannel() chan []byte {
	return c.send
}

func (c *Client) close() {
	if c.conn != nil {
		_ = c.conn.Close(websocket.StatusNormalClosure, "") //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
	}
}

// NewPreviewHub creates a hub. preview renders client form state into
// the broadcast message; origins is the allowed Origin host list.
func NewPreviewHub(preview PreviewFunc, origins []string) *PreviewHub {
	ctx, cancel := context.WithCancel(context.Background())
	return &PreviewHub{
		clients:    make(map[clientInterface]bool),
		broadcast:  make(chan interface{}, 256),
		register:   make(chan clientInterface),
		unregister: make(chan clientInterface),
		preview:    preview,
		origins:    origins,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Run starts the hub's message processing loop.
func (h *PreviewHub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("preview client connected (total: %d)", len(h.clients))

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.getSendChannel())
			}
			count := len(h.clients)
			h.mu.Unlock()
			log.Printf("preview client disconnected (total: %d)", count)

		case message := <-h.broadcast:
			// Full Lock because the default branch may delete from the map.
			h.mu.Lock()
			data, err := json.Marshal(message)
			if err != nil {
				log.Printf("ERROR: failed to marshal preview message: %v", err)
				h.mu.Unlock()
				continue
			}

			for client := range h.clients {
				sendChan := client.getSendChannel()
				select {
				case sendChan <- data:
				default:
					// Client's send channel is full, disconnect them
					close(sendChan)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()

		case <-h.ctx.Done():
			log.Println("preview hub stopping...")
			return
		}
	}
}

// Stop gracefully shuts down the hub.
func (h *PreviewHub) Stop() {
	h.cancel()

	h.mu.Lock()
	for client := range h.clients {
		close(client.getSendChannel())
		client.close()
	}
	h.clients = make(map[clientInterface]bool)
	h.mu.Unlock()
}

// Broadcast sends a message to all connected clients.
func (h *PreviewHub) Broadcast(message interface{}) {
	select {
	case h.broadcast <- message:
	default:
		log.Println("WARNING: preview broadcast channel full, dropping message")
	}
}

// Register adds a client to the hub.
func (h *PreviewHub) Register(client clientInterface) {
	h.register <- client
}

// Unregister removes a client from the hub.
func (h *PreviewHub) Unregister(client clientInterface) {
	h.unregister <- client
}

// ServeHTTP handles WebSocket upgrade requests at /ws/preview.
func (h *PreviewHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin != "" && !h.originAllowed(origin) {
		http.Error(w, "Forbidden: invalid origin", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{ //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
		OriginPatterns: h.origins,
	})
	if err != nil {
		log.Printf("ERROR: WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.Register(client)

	go client.writePump()
	go client.readPump()
}

func (h *PreviewHub) originAllowed(origin string) bool {
	for _, allowed := range h.origins {
		if strings.HasSuffix(origin, allowed) {
			return true
		}
	}
	return false
}

// writePump sends messages to the WebSocket connection.
func (c *Client) writePump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close(websocket.StatusNormalClosure, "") //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
	}()

	for message := range c.send {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := c.conn.Write(ctx, websocket.MessageText, message) //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
		cancel()

		if err != nil {
			log.Printf("ERROR: WebSocket write failed: %v", err)
			return
		}
	}
}

// readPump reads form-state messages from the client and broadcasts
// the rendered preview.
func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close(websocket.StatusNormalClosure, "") //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
	}()

	for {
		_, data, err := c.conn.Read(context.Background()) //nolint:staticcheck // TODO: migrate to github.com/coder/websocket
		if err != nil {
			// Connection closed
			return
		}

		var req PreviewRequest
		if err := json.Unmarshal(data, &req); err != nil {
			log.Printf("preview: ignoring malformed client message: %v", err)
			continue
		}

		if c.hub.preview != nil {
			c.hub.Broadcast(c.hub.preview(req))
		}
	}
}

// MockClient is a mock client for testing.
type MockClient struct {
	SendChan chan []byte
}

func (m *MockClient) getSendChannel() chan []byte {
	return m.SendChan
}

func (m *MockClient) close() {
	// No-op for mock client
}
