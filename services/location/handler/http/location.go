package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/middleware"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/utils"
	"github.com/prasetya/kumpul/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
	}
}

// UpdateMyLocation handles location update requests from the caller's device
func (h *LocationHandler) UpdateMyLocation(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var sample models.LocationSample
	if err := c.Bind(&sample); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ack, err := h.locationUC.UpdateLocation(c.Request().Context(), userID, &sample)
	if err != nil {
		if location.IsValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update location",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", ack)
}

// GetUserLocation returns another user's live location when consent allows.
// Invisible and nonexistent locations are indistinguishable to the caller.
func (h *LocationHandler) GetUserLocation(c echo.Context) error {
	viewerID := middleware.UserIDFromContext(c)
	targetID := c.Param("user_id")
	if targetID == "" {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	live, err := h.locationUC.GetLocation(c.Request().Context(), viewerID, targetID)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) || errors.Is(err, location.ErrForbidden) {
			return utils.NotFoundResponse(c, "Location not available")
		}
		logger.Error("Failed to retrieve location",
			logger.String("viewer_id", viewerID),
			logger.String("target_id", targetID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve location")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location retrieved", live)
}

// GetNearbyUsers handles proximity queries around the caller's live position
func (h *LocationHandler) GetNearbyUsers(c echo.Context) error {
	viewerID := middleware.UserIDFromContext(c)

	radius := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius")
		}
		radius = parsed
	}

	users, err := h.locationUC.NearbyUsers(c.Request().Context(), viewerID, radius)
	if err != nil {
		// A caller with no live position gets an empty result, not an error.
		if errors.Is(err, location.ErrLocationUnknown) {
			return utils.SuccessResponse(c, http.StatusOK, "Nearby users retrieved", &models.NearbyUsersResult{
				Users:  []*models.NearbyUser{},
				Reason: models.ReasonLocationUnknown,
			})
		}
		if location.IsValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to query nearby users",
			logger.String("viewer_id", viewerID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to query nearby users")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby users retrieved", &models.NearbyUsersResult{Users: users})
}

// GetEventLocations lists everyone sharing into an event
func (h *LocationHandler) GetEventLocations(c echo.Context) error {
	viewerID := middleware.UserIDFromContext(c)
	eventID := c.Param("event_id")

	users, err := h.locationUC.EventLocations(c.Request().Context(), viewerID, eventID)
	if err != nil {
		if errors.Is(err, location.ErrForbidden) {
			return utils.ErrorResponseHandler(c, http.StatusForbidden, "Not an attendee of this event")
		}
		if errors.Is(err, location.ErrNotFound) {
			return utils.NotFoundResponse(c, "Event not found")
		}
		if location.IsValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to list event locations",
			logger.String("viewer_id", viewerID),
			logger.String("event_id", eventID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list event locations")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Event locations retrieved", users)
}

// GetMyHistory returns the caller's own location trail
func (h *LocationHandler) GetMyHistory(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var q models.HistoryQuery
	if err := c.Bind(&q); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	entries, err := h.locationUC.LocationHistory(c.Request().Context(), userID, &q)
	if err != nil {
		logger.Error("Failed to list location history",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list location history")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location history retrieved", entries)
}
