package hub

import (
	"sync"

	"pairchat/internal/models/socket"
)

// Conn is the subset of *websocket.Conn the hub writes to. Tests substitute
// in-memory fakes.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Client binds an authenticated user to one live connection. Writes are
// serialized per client since gorilla allows only one concurrent writer.
type Client struct {
	UserID uint

	mu   sync.Mutex
	conn Conn
}

func NewClient(userID uint, conn Conn) *Client {
	return &Client{
		UserID: userID,
		conn:   conn,
	}
}

// Send writes one event envelope to the connection. Delivery is best effort;
// the caller decides whether a write error tears the connection down.
func (c *Client) Send(event string, payload any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(socket.ServerEvent{
		Event:   event,
		Payload: payload,
	})
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}
