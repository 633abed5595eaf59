package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/prasetya/kumpul/services/location"
	"github.com/prasetya/kumpul/services/location/mocks"
	"github.com/stretchr/testify/assert"
)

func TestUpdateSharing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	requestBody := `{
		"sharing_level": "friends_only",
		"sharing_expires_at": "2099-01-01T00:00:00Z"
	}`
	c, rec := setupContext(http.MethodPut, "/locations/me/sharing", requestBody)

	mockUC.EXPECT().
		UpdateSharingSettings(gomock.Any(), "user-1", gomock.Any()).
		DoAndReturn(func(_ interface{}, userID string, req *models.SharingUpdateRequest) (*models.LocationShareSettings, error) {
			assert.Equal(t, models.SharingLevelFriendsOnly, req.Level)
			assert.NotNil(t, req.ExpiresAt)
			return &models.LocationShareSettings{
				UserID:    userID,
				Level:     req.Level,
				ExpiresAt: req.ExpiresAt,
				UpdatedAt: time.Now(),
			}, nil
		})

	err := handler.UpdateSharing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "friends_only", data["sharing_level"])
}

func TestUpdateSharing_InvalidLevel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	c, rec := setupContext(http.MethodPut, "/locations/me/sharing", `{"sharing_level": "everyone"}`)

	mockUC.EXPECT().
		UpdateSharingSettings(gomock.Any(), "user-1", gomock.Any()).
		Return(nil, location.NewValidationError("level", "unknown sharing level"))

	err := handler.UpdateSharing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStopSharing_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	c, rec := setupContext(http.MethodDelete, "/locations/me/sharing", "")

	mockUC.EXPECT().
		StopSharing(gomock.Any(), "user-1").
		Return(nil)

	err := handler.StopSharing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStopSharing_UseCaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockLocationUC(ctrl)
	handler := NewLocationHandler(mockUC)

	c, rec := setupContext(http.MethodDelete, "/locations/me/sharing", "")

	mockUC.EXPECT().
		StopSharing(gomock.Any(), "user-1").
		Return(errors.New("redis unavailable"))

	err := handler.StopSharing(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
