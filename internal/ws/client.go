package ws

import (
	"time"

	"deutschprofi_backend/internal/logger"
	"deutschprofi_backend/internal/metrics"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 50 * time.Second

	// клиенты только слушают, входящие сообщения нам не нужны большими
	maxMessageSize = 512
)

// Client - одно websocket подключение, подписанное на сессию.
// Сервер только пушит снимки сессии, клиентские сообщения игнорируются
type Client struct {
	sessionID string
	conn      *websocket.Conn
	send      chan []byte
	hub       *Hub
}

func newClient(sessionID string, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		sessionID: sessionID,
		conn:      conn,
		send:      make(chan []byte, 16),
		hub:       hub,
	}
}

// Run запускает насосы чтения и записи и блокируется до разрыва соединения
func (c *Client) Run() {
	metrics.WSClients.Inc()
	defer metrics.WSClients.Dec()

	go c.writePump()
	c.readPump()
}

// readPump вычитывает и отбрасывает входящие сообщения, поддерживая
// pong-дедлайны. Выход из цикла означает разрыв соединения
func (c *Client) readPump() {
	defer func() {
		c.hub.unsubscribe(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("ws: неожиданный разрыв", "session", c.sessionID, "error", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
