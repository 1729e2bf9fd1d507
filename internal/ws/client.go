package ws

import (
	"context"
	"encoding/json"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const (
	// sendChannelSize ограничивает очередь сообщений на клиента
	sendChannelSize = 16
	pingPeriod      = 54 * time.Second
)

// Message - конверт события, уходящий сессии дашборда
type Message struct {
	Type string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

type Client struct {
	ID     string
	conn   *websocket.Conn
	hub    *Hub
	send   chan Message
	ctx    context.Context
	cancel context.CancelFunc
}

func newClient(id string, conn *websocket.Conn, hub *Hub) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	return &Client{
		ID:     id,
		conn:   conn,
		hub:    hub,
		send:   make(chan Message, sendChannelSize),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (c *Client) start() {
	go c.readPump()
	go c.writePump()
	c.hub.register <- c
}

func (c *Client) close() {
	if err := c.conn.Close(websocket.StatusNormalClosure, "closing"); err != nil {
		c.hub.logger.WithError(err).Debug("Failed to close websocket connection")
	}
	c.cancel()
}

// readPump вычитывает входящие кадры до разрыва соединения. Клиент ничего
// не присылает кроме connect/disconnect, поэтому данные просто отбрасываются.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.ctx.Done():
		}
		c.close()
	}()

	for {
		if _, _, err := c.conn.Read(c.ctx); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.Close(websocket.StatusNormalClosure, "closing")
				return
			}
			if err := wsjson.Write(c.ctx, c.conn, msg); err != nil {
				c.hub.logger.WithError(err).WithField("client_id", c.ID).Warn("Failed to write websocket message")
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(c.ctx); err != nil {
				c.hub.logger.WithError(err).WithField("client_id", c.ID).Debug("Failed to ping responder session")
				return
			}
		case <-c.ctx.Done():
			return
		}
	}
}
