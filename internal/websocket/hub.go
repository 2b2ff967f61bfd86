package websocket

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"awqaf/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins for dev simplicity
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Message is the envelope pushed to clients.
type Message struct {
	Event     string      `json:"event"`
	WaqfGovID int64       `json:"waqf_gov_id"`
	Data      interface{} `json:"data"`
}

type envelope struct {
	govID   int64
	payload []byte
}

// Client represents a single connected WebSocket client watching one waqf
type Client struct {
	Hub   *Hub
	Conn  *websocket.Conn
	Send  chan []byte
	GovID int64
}

// Hub maintains the set of active clients and fans messages out to those watching the same waqf
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan envelope
	register   chan *Client
	unregister chan *Client
	mu         sync.Mutex
	logger     *logrus.Logger
}

// NewHub initializes a new WS Hub instance
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		broadcast:  make(chan envelope, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		logger:     logger,
	}
}

// Publish queues an event for every client of govID. It never blocks the caller:
// when the queue is full the event is dropped and logged.
func (h *Hub) Publish(govID int64, event string, data interface{}) {
	payload, err := json.Marshal(Message{Event: event, WaqfGovID: govID, Data: data})
	if err != nil {
		h.logger.WithError(err).WithField("event", event).Warn("failed to encode websocket event")
		return
	}
	select {
	case h.broadcast <- envelope{govID: govID, payload: payload}:
	default:
		h.logger.WithField("event", event).Warn("websocket queue full, event dropped")
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Run starts the core dispatch loop for WebSocket events
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			h.logger.WithField("waqf_gov_id", client.GovID).Info("websocket client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.WithField("waqf_gov_id", client.GovID).Info("websocket client disconnected")
			}
			h.mu.Unlock()
		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if client.GovID != msg.govID {
					continue
				}
				select {
				case client.Send <- msg.payload:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mu.Unlock()
		}
	}
}

// writePump handles writing messages from the Hub to the WebSocket connection
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		w, err := c.Conn.NextWriter(websocket.TextMessage)
		if err != nil {
			return
		}
		_, _ = w.Write(message)

		// Fast track writing queued messages
		n := len(c.Send)
		for i := 0; i < n; i++ {
			_, _ = w.Write([]byte{'\n'})
			_, _ = w.Write(<-c.Send)
		}

		if err := w.Close(); err != nil {
			return
		}
	}
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump pumps messages from the WebSocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		_ = c.Conn.Close()
	}()
	for {
		_, _, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.WithError(err).Warn("websocket read failed")
			}
			break
		}
	}
}

// ServeWs authenticates the token query param, checks the caller may watch
// the waqf_gov_id query param, then upgrades the connection.
func ServeWs(hub *Hub, c *gin.Context, secret []byte, checker middleware.AccessChecker) {
	tokenString := c.Query("token")
	if tokenString == "" {
		hub.logger.Warn("websocket connection rejected: missing token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	claims, err := middleware.ParseToken(tokenString, secret)
	if err != nil {
		hub.logger.WithError(err).Warn("websocket connection rejected: invalid token")
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	govID, err := strconv.ParseInt(c.Query("waqf_gov_id"), 10, 64)
	if err != nil || govID <= 0 {
		c.AbortWithStatus(http.StatusBadRequest)
		return
	}

	ok, err := checker.IsAuthorized(c.Request.Context(), govID, claims.NationalID)
	if err != nil {
		hub.logger.WithError(err).Error("websocket access check failed")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if !ok {
		hub.logger.WithField("waqf_gov_id", govID).Warn("websocket connection rejected: not an authorized user")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		hub.logger.WithError(err).Warn("websocket upgrade failed")
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, 256), GovID: govID}
	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}
