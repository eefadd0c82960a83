package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-secret-at-least-32-bytes-long", time.Hour)

	token, expiresIn, err := svc.GenerateAccessToken("device-1", "pixel-8-pro")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "device-1", claims.DeviceID)
	assert.Equal(t, "pixel-8-pro", claims.DeviceName)
	assert.Equal(t, "tripsync", claims.Issuer)
}

func TestValidate_WrongSecret(t *testing.T) {
	svc := NewService("test-secret-at-least-32-bytes-long", time.Hour)
	other := NewService("another-secret-also-32-bytes-long!", time.Hour)

	token, _, err := svc.GenerateAccessToken("device-1", "pixel-8-pro")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Expired(t *testing.T) {
	svc := NewService("test-secret-at-least-32-bytes-long", -time.Minute)

	token, _, err := svc.GenerateAccessToken("device-1", "pixel-8-pro")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	svc := NewService("test-secret-at-least-32-bytes-long", time.Hour)

	_, err := svc.ValidateAccessToken("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
