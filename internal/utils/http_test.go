package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "location updated", map[string]string{"user_id": "u1"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "location updated", resp.Message)
	assert.Empty(t, resp.Error)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(echo.Context, string) error
		message  string
		wantCode int
		wantMsg  string
	}{
		{"bad request", BadRequestResponse, "invalid latitude", http.StatusBadRequest, "invalid latitude"},
		{"unauthorized default", UnauthorizedResponse, "", http.StatusUnauthorized, "Unauthorized"},
		{"not found default", NotFoundResponse, "", http.StatusNotFound, "Resource not found"},
		{"internal default", InternalServerErrorResponse, "", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			err := tt.fn(c, tt.message)
			require.NoError(t, err)

			assert.Equal(t, tt.wantCode, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantMsg, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}
