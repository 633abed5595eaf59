package nsq

import (
	"context"
	"errors"

	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/pkg/nsq"
	pkgws "github.com/prasetya/kumpul/internal/pkg/websocket"
	"github.com/prasetya/kumpul/services/location"
)

// handleLocationUpdated fans a location change out to subscribed viewers.
// Consent is checked per viewer at delivery time, not at publish time, so a
// viewer who lost visibility between the two never receives the position.
func (h *NSQHandler) handleLocationUpdated(msg []byte) error {
	var event models.LocationUpdatedEvent
	if err := nsq.UnmarshalMessage(msg, &event); err != nil {
		return err
	}

	ctx := context.Background()

	// The live record may be gone by the time the message is consumed.
	live, err := h.locationUC.GetLocation(ctx, event.UserID, event.UserID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return nil
		}
		return err
	}

	visibility := make(map[string]bool)
	for _, viewerID := range h.manager.ConnectedUsers() {
		if viewerID == event.UserID {
			continue
		}
		for _, client := range h.manager.Connections(viewerID) {
			if !wantsLocation(client, event.EventID) {
				continue
			}
			visible, checked := visibility[viewerID]
			if !checked {
				visible, err = h.locationUC.CanView(ctx, viewerID, live)
				if err != nil {
					logger.Warn("Visibility check failed, excluding viewer",
						logger.String("viewer_id", viewerID),
						logger.String("target_id", event.UserID),
						logger.Err(err))
					visible = false
				}
				visibility[viewerID] = visible
			}
			if !visible {
				break
			}
			if err := h.manager.SendMessage(client, constants.EventLocationUpdated, event); err != nil {
				logger.Warn("Location fan-out delivery failed",
					logger.String("viewer_id", viewerID),
					logger.Err(err))
			}
		}
	}

	return nil
}

// handleSharingLifecycle announces sharing starts and stops to subscribers
func (h *NSQHandler) handleSharingLifecycle(msg []byte) error {
	var event models.SharingLifecycleEvent
	if err := nsq.UnmarshalMessage(msg, &event); err != nil {
		return err
	}

	name := constants.EventLocationSharingStarted
	if event.Level == models.SharingLevelPrivate || event.Level == "" {
		name = constants.EventLocationSharingStopped
	}

	h.manager.FanOut(name, event, func(c *pkgws.Client) bool {
		return c.UserID != event.UserID && wantsLocation(c, event.EventID)
	})
	return nil
}

// handleGeofenceAlert delivers a fired geofence alert to its owner and to
// the event host.
func (h *NSQHandler) handleGeofenceAlert(msg []byte) error {
	var event models.GeofenceAlertEvent
	if err := nsq.UnmarshalMessage(msg, &event); err != nil {
		return err
	}

	h.manager.NotifyUser(event.UserID, constants.EventGeofenceAlert, event)

	if event.HostID != "" && event.HostID != event.UserID {
		h.manager.NotifyUser(event.HostID, constants.EventGeofenceAlert, event)
	}
	return nil
}

// wantsLocation reports whether a connection subscribed to a scope that
// covers this update.
func wantsLocation(c *pkgws.Client, eventID string) bool {
	if c.HasScope(constants.ScopeNearby) {
		return true
	}
	return eventID != "" && c.HasScope(constants.ScopeEventPrefix+eventID)
}
