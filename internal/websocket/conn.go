package websocket

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/ikkim/creme-backend/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10 // must stay below pongWait
	maxMessageSize = 4 * 1024
)

// Conn wraps a gorilla connection.
type Conn struct {
	*websocket.Conn
}

// write sends one frame with a fresh deadline.
func (c *Conn) write(messageType int, data []byte) error {
	if err := c.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.WriteMessage(messageType, data)
}

// Serve registers the client and runs both pumps. It returns when the
// connection closes.
func (c *Client) Serve() {
	c.Hub.Register(c)
	go c.WritePump()
	c.ReadPump()
}

// ReadPump reads until the peer goes away, then unregisters the client.
// Storefront clients only ever send pings.
func (c *Client) ReadPump() {
	defer func() {
		c.Hub.Unregister(c)
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	extend := func() error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	}
	_ = extend()
	c.Conn.SetPongHandler(func(string) error { return extend() })

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Live connection dropped", logger.Fields{
					"client_id": c.ID,
					"error":     err.Error(),
				})
			}
			return
		}
		c.Hub.HandleClientMessage(c, message)
	}
}

// WritePump drains Send to the peer, one frame per event, and pings on
// pingPeriod. A closed Send channel means the hub dropped the client.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				_ = c.Conn.write(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.write(websocket.TextMessage, message); err != nil {
				logger.Error("Failed to write live event", err, logger.Fields{
					"client_id": c.ID,
				})
				return
			}

		case <-ticker.C:
			if err := c.Conn.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
