package jwt

import (
	"testing"
	"time"

	"github.com/prasetya/kumpul/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "kumpul-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()

	token, expiresAt, err := GenerateToken("user-123", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", (*claims)["user_id"])
	assert.Equal(t, "kumpul-test", (*claims)["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken("user-123", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
