package utils

import (
	"testing"
	"time"

	"growthlog/backend/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{SessionSecret: "testsecret", SessionTTL: time.Hour}
}

func signed(t *testing.T, cfg *config.Config, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SessionSecret))
	require.NoError(t, err)
	return token
}

func TestSessionTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	id := NewSessionID()

	token, err := GenerateSessionToken(id, cfg)
	require.NoError(t, err)

	got, err := ParseSessionToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), got.ExpiresAt, 2*time.Second)
	assert.False(t, got.NeedsRefresh(time.Now(), cfg))
}

func TestSessionTokenNeedsRefresh(t *testing.T) {
	cfg := testConfig()
	now := time.Now()

	assert.False(t, SessionToken{ExpiresAt: now.Add(90 * time.Minute)}.NeedsRefresh(now, cfg))
	assert.True(t, SessionToken{ExpiresAt: now.Add(59 * time.Minute)}.NeedsRefresh(now, cfg))
}

func TestSessionTokenWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken(NewSessionID(), testConfig())
	require.NoError(t, err)

	_, err = ParseSessionToken(token, &config.Config{SessionSecret: "other", SessionTTL: time.Hour})
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	cfg := testConfig()
	token := signed(t, cfg, jwt.RegisteredClaims{
		ID:        NewSessionID(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	_, err := ParseSessionToken(token, cfg)
	assert.Error(t, err)
}

func TestSessionTokenWithoutExpiry(t *testing.T) {
	cfg := testConfig()
	token := signed(t, cfg, jwt.RegisteredClaims{ID: NewSessionID()})

	_, err := ParseSessionToken(token, cfg)
	assert.Error(t, err)
}

func TestSessionTokenRejectsNonUUID(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateSessionToken("not-a-uuid", cfg)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, cfg)
	assert.Error(t, err)
}
