package websocket

import (
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Timeouts for the channel. A connection that cannot take a write within
// writeWait, or that misses a pong for longer than pongWait, is treated as
// stalled and evicted from the registry.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one device connection of an authenticated user. A user may hold
// several concurrently.
type Client struct {
	ID     string
	UserID string
	Conn   *websocket.Conn

	writeMu  sync.Mutex // gorilla conns allow one concurrent writer
	scopeMu  sync.RWMutex
	scopes   map[string]struct{}
	stopPing chan struct{}
	stopOnce sync.Once
}

// NewClient wraps an upgraded connection.
func NewClient(id, userID string, conn *websocket.Conn) *Client {
	return &Client{
		ID:       id,
		UserID:   userID,
		Conn:     conn,
		scopes:   make(map[string]struct{}),
		stopPing: make(chan struct{}),
	}
}

// Subscribe adds fan-out scopes to the connection.
func (c *Client) Subscribe(scopes ...string) {
	c.scopeMu.Lock()
	defer c.scopeMu.Unlock()
	for _, s := range scopes {
		if s == "" {
			continue
		}
		c.scopes[s] = struct{}{}
	}
}

// Unsubscribe removes fan-out scopes from the connection.
func (c *Client) Unsubscribe(scopes ...string) {
	c.scopeMu.Lock()
	defer c.scopeMu.Unlock()
	for _, s := range scopes {
		delete(c.scopes, s)
	}
}

// Subscribed reports whether the connection holds any fan-out scope.
func (c *Client) Subscribed() bool {
	c.scopeMu.RLock()
	defer c.scopeMu.RUnlock()
	return len(c.scopes) > 0
}

// Scopes returns a snapshot of the connection's fan-out scopes.
func (c *Client) Scopes() []string {
	c.scopeMu.RLock()
	defer c.scopeMu.RUnlock()
	scopes := make([]string, 0, len(c.scopes))
	for s := range c.scopes {
		scopes = append(scopes, s)
	}
	return scopes
}

// HasScope reports whether the connection holds the exact scope.
func (c *Client) HasScope(scope string) bool {
	c.scopeMu.RLock()
	defer c.scopeMu.RUnlock()
	_, ok := c.scopes[scope]
	return ok
}

// HasScopePrefix reports whether the connection holds any scope with the
// given prefix ("event:" matches event:abc).
func (c *Client) HasScopePrefix(prefix string) bool {
	c.scopeMu.RLock()
	defer c.scopeMu.RUnlock()
	for s := range c.scopes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// writeJSON sends one frame under the connection's write lock with the write
// deadline applied. Any error marks the connection as stalled for the caller.
func (c *Client) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.Conn.WriteJSON(v)
}

// ping sends a control ping under the write lock.
func (c *Client) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

// stopKeepalive terminates the ping loop. Safe to call more than once.
func (c *Client) stopKeepalive() {
	c.stopOnce.Do(func() { close(c.stopPing) })
}
