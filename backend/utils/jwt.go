package utils

import (
	"errors"
	"strings"
	"time"

	"growthlog/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionCookie carries the session token for browser clients.
const SessionCookie = "growth_session"

var errNoToken = errors.New("missing session token")

// SessionToken is the verified payload of a session token.
type SessionToken struct {
	ID        string
	ExpiresAt time.Time
}

// NeedsRefresh reports whether the token would expire before an idle
// session does. Refreshing at that point keeps a token alive for as long as
// the session it names.
func (t SessionToken) NeedsRefresh(now time.Time, cfg *config.Config) bool {
	return t.ExpiresAt.Sub(now) < cfg.SessionTTL
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// TokenLifetime is twice the idle TTL, see NeedsRefresh.
func TokenLifetime(cfg *config.Config) time.Duration {
	return 2 * cfg.SessionTTL
}

// GenerateSessionToken signs a token naming sessionID.
func GenerateSessionToken(sessionID string, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime(cfg))),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// ParseSessionToken validates tokenString and returns its payload.
func ParseSessionToken(tokenString string, cfg *config.Config) (SessionToken, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil {
		return SessionToken{}, err
	}
	if !token.Valid {
		return SessionToken{}, errors.New("invalid session token")
	}

	if _, err := uuid.Parse(claims.ID); err != nil {
		return SessionToken{}, errors.New("invalid session id in token")
	}
	if claims.ExpiresAt == nil {
		return SessionToken{}, errors.New("session token has no expiry")
	}
	return SessionToken{ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ExtractSessionToken reads the session token from the Authorization header
// or, failing that, the session cookie.
func ExtractSessionToken(c *fiber.Ctx, cfg *config.Config) (SessionToken, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer "))
	if tokenString == "" {
		tokenString = c.Cookies(SessionCookie)
	}
	if tokenString == "" {
		return SessionToken{}, errNoToken
	}
	return ParseSessionToken(tokenString, cfg)
}
