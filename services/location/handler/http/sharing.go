package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prasetya/kumpul/internal/pkg/logger"
	"github.com/prasetya/kumpul/internal/pkg/middleware"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/internal/utils"
	"github.com/prasetya/kumpul/services/location"
)

// UpdateSharing handles consent level changes for the caller
func (h *LocationHandler) UpdateSharing(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	var req models.SharingUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	settings, err := h.locationUC.UpdateSharingSettings(c.Request().Context(), userID, &req)
	if err != nil {
		if location.IsValidationError(err) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to update sharing settings",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to update sharing settings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sharing settings updated", settings)
}

// StopSharing reverts the caller to private and removes their live location
func (h *LocationHandler) StopSharing(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	if err := h.locationUC.StopSharing(c.Request().Context(), userID); err != nil {
		logger.Error("Failed to stop sharing",
			logger.String("user_id", userID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to stop sharing")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Sharing stopped", nil)
}
