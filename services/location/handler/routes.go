package handler

import (
	"fmt"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/prasetya/kumpul/internal/pkg/jwt"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location/handler/http"
	"github.com/prasetya/kumpul/services/location/handler/nsq"
	"github.com/prasetya/kumpul/services/location/handler/websocket"
)

// Handler coordinates all protocol handlers for the location service
type Handler struct {
	locationHandler *http.LocationHandler
	wsHandler       *websocket.WebSocketHandler
	nsqHandler      *nsq.NSQHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	locationHandler *http.LocationHandler,
	wsHandler *websocket.WebSocketHandler,
	nsqHandler *nsq.NSQHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		locationHandler: locationHandler,
		wsHandler:       wsHandler,
		nsqHandler:      nsqHandler,
		cfg:             cfg,
	}
}

// InitConsumers starts the NSQ consumers that feed the realtime channel
func (h *Handler) InitConsumers() error {
	return h.nsqHandler.InitConsumers()
}

// StopConsumers stops the NSQ consumers
func (h *Handler) StopConsumers() {
	h.nsqHandler.Stop()
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				claims, err := jwtpkg.ValidateToken(authHeader[7:], h.cfg.JWT.Secret)
				if err != nil {
					return
				}
				if userID, exists := (*claims)["user_id"]; exists {
					c.Set("user_id", fmt.Sprintf("%v", userID))
				}
			}
		},
	})
}

// RegisterRoutes registers all protocol handlers and their routes
func (h *Handler) RegisterRoutes(e *echo.Echo, limiter echo.MiddlewareFunc) {
	protected := e.Group("", h.GetJWTMiddleware())

	// Location routes. The update path carries the write rate limit since it
	// is the one clients hit on a cadence.
	locationGroup := protected.Group("/locations")
	if limiter != nil {
		locationGroup.PUT("/me", h.locationHandler.UpdateMyLocation, limiter)
	} else {
		locationGroup.PUT("/me", h.locationHandler.UpdateMyLocation)
	}
	locationGroup.GET("/me/history", h.locationHandler.GetMyHistory)
	locationGroup.PUT("/me/sharing", h.locationHandler.UpdateSharing)
	locationGroup.DELETE("/me/sharing", h.locationHandler.StopSharing)
	locationGroup.GET("/nearby", h.locationHandler.GetNearbyUsers)
	locationGroup.GET("/:user_id", h.locationHandler.GetUserLocation)

	// Event routes
	eventGroup := protected.Group("/events")
	eventGroup.GET("/:event_id/locations", h.locationHandler.GetEventLocations)

	// Geofence routes
	geofenceGroup := protected.Group("/geofences")
	geofenceGroup.POST("", h.locationHandler.SetupGeofence)
	geofenceGroup.GET("", h.locationHandler.ListGeofences)
	geofenceGroup.DELETE("/:id", h.locationHandler.DisableGeofence)

	// The realtime channel authenticates inside the upgrade handshake, so no
	// HTTP middleware is attached here.
	e.GET("/ws/location", h.wsHandler.HandleWebSocket)
}

// DefaultUpdateLimit is the per-user ceiling on location writes. It sits just
// above the fastest tracking cadence so well-behaved clients never hit it.
const (
	DefaultUpdateLimit  = 60
	DefaultUpdatePeriod = time.Minute
)
