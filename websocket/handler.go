package websocket

import (
	"time"

	"photo-portfolio-backend/config"
	"photo-portfolio-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService defines a token validator interface
type AuthService interface {
	VerifyToken(token string) (*token.Payload, error)
}

// WsHandler manages the live comment feed for the admin dashboard
type WsHandler struct {
	hub  *Hub
	auth AuthService
}

func NewWsHandler(hub *Hub, auth AuthService) *WsHandler {
	return &WsHandler{
		hub:  hub,
		auth: auth,
	}
}

// HandleWebSocket handles incoming WebSocket upgrade requests. The token
// comes from the HTTPOnly cookie, never a query parameter.
func (h *WsHandler) HandleWebSocket(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	tokenStr := c.Cookies("access_token")
	if tokenStr == "" {
		config.Logger.Warn("WebSocket connection attempted without access token cookie")
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required - no access token cookie found",
		})
	}

	payload, err := h.auth.VerifyToken(tokenStr)
	if err != nil {
		config.Logger.Warn("Invalid access token for WebSocket", zap.Error(err))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired token",
		})
	}

	// Optional target filter, e.g. ?target=gallery:<uuid>. No filter means
	// the client receives every comment event.
	target := c.Query("target")

	config.Logger.Info("WebSocket connection authenticated",
		zap.String("email", payload.Email),
		zap.String("target", target),
	)

	return websocket.New(func(conn *websocket.Conn) {
		client := &Client{
			ID:      uuid.New(),
			Email:   payload.Email,
			Conn:    conn,
			Hub:     h.hub,
			Send:    make(chan WebSocketMessage, 256),
			Targets: make(map[string]bool),
		}

		if target != "" {
			client.Targets[target] = true
		}

		h.hub.register <- client

		config.Logger.Info("WebSocket client registered",
			zap.String("clientID", client.ID.String()),
			zap.String("email", client.Email),
		)

		go client.writePump()
		client.readPump()
	})(c)
}

// readPump listens for incoming messages from the WebSocket. The feed is
// one-directional; clients may only adjust their target filter.
func (c *Client) readPump() {
	defer func() {
		config.Logger.Info("WebSocket client disconnecting",
			zap.String("clientID", c.ID.String()),
			zap.String("email", c.Email),
		)
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(64 * 1024)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		var msg struct {
			Action string `json:"action"`
			Target string `json:"target"`
		}
		err := c.Conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				config.Logger.Warn("WebSocket unexpected close",
					zap.String("clientID", c.ID.String()),
					zap.Error(err),
				)
			}
			break
		}

		switch msg.Action {
		case "watch":
			if msg.Target != "" {
				c.WatchTarget(msg.Target)
			}
		case "unwatch":
			if msg.Target != "" {
				c.UnwatchTarget(msg.Target)
			}
		default:
			c.sendError("Unknown action: " + msg.Action)
		}
	}
}

// writePump sends queued messages and keeps the connection alive
func (c *Client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteJSON(message); err != nil {
				config.Logger.Debug("WebSocket write error",
					zap.String("clientID", c.ID.String()),
					zap.Error(err),
				)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				config.Logger.Debug("WebSocket ping error",
					zap.String("clientID", c.ID.String()),
					zap.Error(err),
				)
				return
			}
		}
	}
}

// sendError sends an error message back to the client
func (c *Client) sendError(message string) {
	errorMsg := WebSocketMessage{
		Type: MessageTypeError,
		Payload: map[string]interface{}{
			"message": message,
		},
		Timestamp: time.Now(),
	}

	select {
	case c.Send <- errorMsg:
	default:
	}
}
