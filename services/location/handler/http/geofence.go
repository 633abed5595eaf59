package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/middleware"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/utils"
	"github.com/prasetya/kumpul/services/location"
)

// SetupGeofence arms arrival alerts around an event venue for the caller
func (h *LocationHandler) SetupGeofence(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var req models.GeofenceSetupRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	alerts, err := h.locationUC.SetupGeofencing(c.Request().Context(), userID, &req)
	if err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return utils.NotFoundResponse(c, "Event not found")
		}
		if location.IsValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to setup geofencing",
			logger.String("user_id", userID),
			logger.String("event_id", req.EventID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to setup geofencing")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Geofence alerts created", alerts)
}

// ListGeofences returns the caller's active geofence alerts
func (h *LocationHandler) ListGeofences(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	alerts, err := h.locationUC.ActiveGeofences(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to list geofence alerts",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list geofence alerts")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence alerts retrieved", alerts)
}

// DisableGeofence deactivates one of the caller's geofence alerts
func (h *LocationHandler) DisableGeofence(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid alert ID")
	}

	if err := h.locationUC.DisableGeofence(c.Request().Context(), userID, alertID); err != nil {
		if errors.Is(err, location.ErrNotFound) {
			return utils.NotFoundResponse(c, "Geofence alert not found")
		}
		logger.Error("Failed to disable geofence alert",
			logger.String("user_id", userID),
			logger.String("alert_id", alertID.String()),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to disable geofence alert")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Geofence alert disabled", nil)
}
