package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
)

// Manager is the process-wide connection registry: a concurrency-safe
// multimap of user id to open connections. Mutation is rare next to fan-out
// reads, so a single coarse RWMutex is enough at this scale.
type Manager struct {
	mu       sync.RWMutex
	clients  map[string]map[*Client]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]map[*Client]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and upgrades a new WebSocket connection,
// then hands it to the per-connection handler. The handler owns the read
// loop; the connection is closed when it returns.
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*Client) error) error {
	userID, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := NewClient(uuid.New().String(), userID, ws)

	// Stalled-connection detection: the peer must answer pings within
	// pongWait or reads start failing and the handler exits.
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	go m.keepalive(client)
	defer client.stopKeepalive()

	return handleClient(client)
}

// keepalive pings the connection until it is stopped; a failed ping evicts.
func (m *Manager) keepalive(client *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-client.stopPing:
			return
		case <-ticker.C:
			if err := client.ping(); err != nil {
				logger.Warn("Ping failed, evicting connection",
					logger.String("user_id", client.UserID),
					logger.String("conn_id", client.ID),
					logger.Err(err))
				m.evict(client)
				return
			}
		}
	}
}

// authenticate validates the bearer token before the upgrade.
func (m *Manager) authenticate(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	token := ""
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	} else {
		// Browser WebSocket clients cannot set headers.
		token = c.QueryParam("token")
	}

	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := m.validateToken(token)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return claims.UserID, nil
}

func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.UserID == "" {
		return nil, fmt.Errorf("missing user_id claim")
	}

	return claims, nil
}

// AddClient registers a connection; reports whether it is the user's first.
func (m *Manager) AddClient(client *Client) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	conns, ok := m.clients[client.UserID]
	if !ok {
		conns = make(map[*Client]struct{})
		m.clients[client.UserID] = conns
	}
	conns[client] = struct{}{}
	return len(conns) == 1
}

// RemoveClient deregisters a connection; reports whether it was the user's
// last. Sharing state is untouched: connectivity and sharing are independent.
func (m *Manager) RemoveClient(client *Client) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	conns, ok := m.clients[client.UserID]
	if !ok {
		return false
	}
	delete(conns, client)
	if len(conns) == 0 {
		delete(m.clients, client.UserID)
		return true
	}
	return false
}

// evict removes and closes a stalled connection.
func (m *Manager) evict(client *Client) {
	m.RemoveClient(client)
	client.stopKeepalive()
	_ = client.Conn.Close()
}

// Connections returns a snapshot of a user's open connections.
func (m *Manager) Connections(userID string) []*Client {
	m.mu.RLock()
	defer m.mu.RUnlock()

	conns := make([]*Client, 0, len(m.clients[userID]))
	for c := range m.clients[userID] {
		conns = append(conns, c)
	}
	return conns
}

// ConnectedUsers returns a snapshot of user ids with at least one connection.
func (m *Manager) ConnectedUsers() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]string, 0, len(m.clients))
	for u := range m.clients {
		users = append(users, u)
	}
	return users
}

// SendMessage sends a message to one connection. A write failure evicts the
// connection and is returned to the caller; it never affects other peers.
func (m *Manager) SendMessage(client *Client, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	msg := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	if err := client.writeJSON(msg); err != nil {
		m.evict(client)
		return fmt.Errorf("write to stalled connection: %w", err)
	}
	return nil
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *Client, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}

// SendCategorizedError sends an error message based on severity level
func (m *Manager) SendCategorizedError(client *Client, err error, code string, severity constants.ErrorSeverity) error {
	// Always log detailed error server-side
	logger.Error("WebSocket operation failed",
		logger.String("user_id", client.UserID),
		logger.String("error_code", code),
		logger.Err(err))

	switch severity {
	case constants.ErrorSeverityClient:
		// Detailed error for validation/input issues
		return m.SendErrorMessage(client, code, err.Error())
	case constants.ErrorSeveritySecurity:
		// Minimal info for security issues
		return m.SendErrorMessage(client, code, "Access denied")
	default:
		return m.SendErrorMessage(client, code, "Operation failed")
	}
}

// NotifyUser sends an event to every connection of one user, best effort.
func (m *Manager) NotifyUser(userID string, event string, data interface{}) {
	for _, client := range m.Connections(userID) {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("user_id", userID),
				logger.String("conn_id", client.ID),
				logger.Err(err))
		}
	}
}

// FanOut pushes an event to every connection accepted by the filter. Delivery
// is independent per connection; one stalled peer never blocks the rest.
func (m *Manager) FanOut(event string, data interface{}, filter func(*Client) bool) {
	m.mu.RLock()
	targets := make([]*Client, 0)
	for _, conns := range m.clients {
		for c := range conns {
			if filter == nil || filter(c) {
				targets = append(targets, c)
			}
		}
	}
	m.mu.RUnlock()

	for _, client := range targets {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Fan-out delivery failed",
				logger.String("user_id", client.UserID),
				logger.String("conn_id", client.ID),
				logger.String("event", event),
				logger.Err(err))
		}
	}
}
