package middleware

import (
	"time"

	"growthlog/backend/config"
	"growthlog/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SessionIDKey is the c.Locals key holding the current session id.
const SessionIDKey = "session_id"

// SessionHeader returns a freshly issued session token to API clients.
const SessionHeader = "X-Session-Token"

// SessionMiddleware attaches a session id to every request. A request without
// a valid token starts a new, empty session; a valid token close to expiry is
// re-signed for the same session. This identifies a session, it does not
// authenticate anyone.
func SessionMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := utils.ExtractSessionToken(c, cfg)

		var sessionID string
		switch {
		case err != nil:
			sessionID = utils.NewSessionID()
			if err := issueToken(c, sessionID, cfg); err != nil {
				return err
			}
		case token.NeedsRefresh(time.Now(), cfg):
			sessionID = token.ID
			if err := issueToken(c, sessionID, cfg); err != nil {
				return err
			}
		default:
			sessionID = token.ID
		}

		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

func issueToken(c *fiber.Ctx, sessionID string, cfg *config.Config) error {
	token, err := utils.GenerateSessionToken(sessionID, cfg)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not start session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     utils.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.TokenLifetime(cfg).Seconds()),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Set(SessionHeader, token)
	return nil
}

// SessionID returns the id stored by SessionMiddleware.
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}
