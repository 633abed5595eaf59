package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/prasetya/kumpul/internal/pkg/constants"
	"github.com/prasetya/kumpul/internal/pkg/models"
	pkgws "github.com/prasetya/kumpul/internal/pkg/websocket"
	"github.com/prasetya/kumpul/services/location"
)

// handleLocationUpdate ingests a device sample and acks with the next cadence
func (h *WebSocketHandler) handleLocationUpdate(client *pkgws.Client, data json.RawMessage) error {
	var sample models.LocationSample
	if err := json.Unmarshal(data, &sample); err != nil {
		return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}

	ack, err := h.locationUC.UpdateLocation(context.Background(), client.UserID, &sample)
	if err != nil {
		if location.IsValidationError(err) {
			return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidLocation, constants.ErrorSeverityClient)
		}
		return h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
	}

	return h.manager.SendMessage(client, constants.EventLocationUpdated, ack)
}

// handleStartSharing changes the caller's sharing consent over the channel
func (h *WebSocketHandler) handleStartSharing(client *pkgws.Client, data json.RawMessage) error {
	var req models.SharingUpdateRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}

	settings, err := h.locationUC.UpdateSharingSettings(context.Background(), client.UserID, &req)
	if err != nil {
		if location.IsValidationError(err) {
			return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidSharing, constants.ErrorSeverityClient)
		}
		return h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
	}

	return h.manager.SendMessage(client, constants.EventLocationSharingStarted, settings)
}

// handleStopSharing reverts the caller to private
func (h *WebSocketHandler) handleStopSharing(client *pkgws.Client) error {
	if err := h.locationUC.StopSharing(context.Background(), client.UserID); err != nil {
		return h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
	}

	return h.manager.SendMessage(client, constants.EventLocationSharingStopped, models.SharingLifecycleEvent{
		UserID: client.UserID,
		Level:  models.SharingLevelPrivate,
	})
}

// handleNearbyUsers answers a proximity query on the requesting connection
func (h *WebSocketHandler) handleNearbyUsers(client *pkgws.Client, data json.RawMessage) error {
	var req models.NearbyUsersRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
		}
	}

	users, err := h.locationUC.NearbyUsers(context.Background(), client.UserID, req.RadiusMeters)
	if err != nil {
		// A caller with no live position gets an empty result, not an error.
		if errors.Is(err, location.ErrLocationUnknown) {
			return h.manager.SendMessage(client, constants.EventNearbyUsers, &models.NearbyUsersResult{
				Users:  []*models.NearbyUser{},
				Reason: models.ReasonLocationUnknown,
			})
		}
		if location.IsValidationError(err) {
			return h.manager.SendCategorizedError(client, err, constants.ErrorValidationFailed, constants.ErrorSeverityClient)
		}
		return h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
	}

	return h.manager.SendMessage(client, constants.EventNearbyUsers, &models.NearbyUsersResult{Users: users})
}

// handleEventLocations answers an event roster query on the requesting connection
func (h *WebSocketHandler) handleEventLocations(client *pkgws.Client, data json.RawMessage) error {
	var req models.EventLocationsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}

	users, err := h.locationUC.EventLocations(context.Background(), client.UserID, req.EventID)
	if err != nil {
		if errors.Is(err, location.ErrForbidden) {
			return h.manager.SendCategorizedError(client, err, constants.ErrorUnauthorized, constants.ErrorSeveritySecurity)
		}
		if errors.Is(err, location.ErrNotFound) || location.IsValidationError(err) {
			return h.manager.SendCategorizedError(client, err, constants.ErrorValidationFailed, constants.ErrorSeverityClient)
		}
		return h.manager.SendCategorizedError(client, err, constants.ErrorInternalError, constants.ErrorSeverityServer)
	}

	return h.manager.SendMessage(client, constants.EventEventLocations, users)
}

// handleSubscribe adds or removes fan-out scopes for this connection only
func (h *WebSocketHandler) handleSubscribe(client *pkgws.Client, data json.RawMessage, subscribe bool) error {
	var req models.SubscribeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return h.manager.SendCategorizedError(client, err, constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
	}

	for _, scope := range req.Scopes {
		if !validScope(scope) {
			err := location.NewValidationError("scope", "unknown scope "+scope)
			return h.manager.SendCategorizedError(client, err, constants.ErrorValidationFailed, constants.ErrorSeverityClient)
		}
	}

	for _, scope := range req.Scopes {
		if subscribe {
			client.Subscribe(scope)
		} else {
			client.Unsubscribe(scope)
		}
	}

	event := constants.EventSubscribe
	if !subscribe {
		event = constants.EventUnsubscribe
	}
	return h.manager.SendMessage(client, event, models.SubscribeRequest{Scopes: client.Scopes()})
}

func validScope(scope string) bool {
	if scope == constants.ScopeNearby {
		return true
	}
	return strings.HasPrefix(scope, constants.ScopeEventPrefix) && len(scope) > len(constants.ScopeEventPrefix)
}
