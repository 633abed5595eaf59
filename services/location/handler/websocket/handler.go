package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	pkgws "github.com/prasetya/kumpul/internal/pkg/websocket"
	"github.com/prasetya/kumpul/services/location"
)

// WebSocketHandler owns the realtime location channel: it runs the per
// connection read loop and dispatches inbound events to the location usecase.
type WebSocketHandler struct {
	locationUC location.LocationUC
	manager    *pkgws.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(locationUC location.LocationUC, manager *pkgws.Manager) *WebSocketHandler {
	return &WebSocketHandler{
		locationUC: locationUC,
		manager:    manager,
	}
}

// Manager exposes the connection registry for fan-out by other handlers.
func (h *WebSocketHandler) Manager() *pkgws.Manager {
	return h.manager
}

// HandleWebSocket authenticates, upgrades and serves one channel connection
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	return h.manager.HandleConnection(c, h.handleClient)
}

// handleClient runs the read loop for one connection until the peer leaves.
func (h *WebSocketHandler) handleClient(client *pkgws.Client) error {
	wasFirst := h.manager.AddClient(client)
	logger.Info("Channel client connected",
		logger.String("user_id", client.UserID),
		logger.String("conn_id", client.ID))

	if wasFirst {
		h.broadcastUserStatus(client.UserID, "online")
	}

	defer func() {
		wasLast := h.manager.RemoveClient(client)
		logger.Info("Channel client disconnected",
			logger.String("user_id", client.UserID),
			logger.String("conn_id", client.ID))
		if wasLast {
			h.broadcastUserStatus(client.UserID, "offline")
		}
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Unexpected channel close",
					logger.String("user_id", client.UserID),
					logger.Err(err))
			}
			return nil
		}

		var msg models.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			if sendErr := h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Invalid message format"); sendErr != nil {
				return nil
			}
			continue
		}

		if err := h.handleMessage(client, &msg); err != nil {
			// A non-nil error means the connection is no longer usable.
			return nil
		}
	}
}

// handleMessage dispatches one inbound event. Errors from the usecase are
// reported to the peer; only write failures propagate and end the loop.
func (h *WebSocketHandler) handleMessage(client *pkgws.Client, msg *models.WSMessage) error {
	switch msg.Event {
	case constants.EventPing:
		return h.manager.SendMessage(client, constants.EventPong, map[string]interface{}{
			"timestamp": time.Now().UTC(),
		})
	case constants.EventLocationUpdate:
		return h.handleLocationUpdate(client, msg.Data)
	case constants.EventStartSharing:
		return h.handleStartSharing(client, msg.Data)
	case constants.EventStopSharing:
		return h.handleStopSharing(client)
	case constants.EventRequestNearbyUsers:
		return h.handleNearbyUsers(client, msg.Data)
	case constants.EventRequestEventLocations:
		return h.handleEventLocations(client, msg.Data)
	case constants.EventSubscribe:
		return h.handleSubscribe(client, msg.Data, true)
	case constants.EventUnsubscribe:
		return h.handleSubscribe(client, msg.Data, false)
	default:
		// Unknown events are reported, not fatal.
		return h.manager.SendErrorMessage(client, constants.ErrorInvalidFormat, "Unknown event type: "+msg.Event)
	}
}

// broadcastUserStatus tells nearby subscribers that a user came or went.
func (h *WebSocketHandler) broadcastUserStatus(userID, status string) {
	event := models.UserStatusEvent{
		UserID:    userID,
		Status:    status,
		Timestamp: time.Now().UTC(),
	}
	h.manager.FanOut(constants.EventUserStatusChanged, event, func(c *pkgws.Client) bool {
		return c.UserID != userID && c.HasScope(constants.ScopeNearby)
	})
}
