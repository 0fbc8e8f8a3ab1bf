package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundtrip(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	token, exp, err := m.GenerateAccessToken(2019001234, "sid-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(2019001234), claims.StudentID)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "2019001234", claims.Subject)
}

func TestJWTSecretsAreSeparate(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)

	access, _, err := m.GenerateAccessToken(1, "sid")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken(1, "sid")
	require.NoError(t, err)

	// an access token never parses as a refresh token and vice versa
	_, err = m.ParseRefreshToken(access)
	assert.Error(t, err)
	_, err = m.ParseAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTWrongSecret(t *testing.T) {
	a := NewJWTManager("secret-a", "secret-a-r", time.Hour, time.Hour)
	b := NewJWTManager("secret-b", "secret-b-r", time.Hour, time.Hour)

	token, _, err := a.GenerateAccessToken(1, "sid")
	require.NoError(t, err)

	_, err = b.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestJWTExpired(t *testing.T) {
	m := NewJWTManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	token, _, err := m.GenerateAccessToken(1, "sid")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.Error(t, err)
}
