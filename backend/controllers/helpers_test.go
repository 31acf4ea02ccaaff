package controllers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"growthlog/backend/config"
	"growthlog/backend/middleware"
	"growthlog/backend/routes"
	"growthlog/backend/session"
	"growthlog/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *session.Registry) {
	t.Helper()
	return newTestAppWithTTL(t, time.Hour)
}

func newTestAppWithTTL(t *testing.T, ttl time.Duration) (*fiber.App, *session.Registry) {
	t.Helper()
	cfg := &config.Config{
		ServerPort:    "8080",
		SessionSecret: "testsecret",
		SessionTTL:    ttl,
		CORSOrigins:   "*",
	}
	sessions := session.NewRegistry(cfg.SessionTTL)
	logger := utils.InitLogger(utils.LoggerConfig{Output: io.Discard})
	return routes.NewApp(cfg, sessions, logger), sessions
}

// client replays the session token as a bearer header, or as the session
// cookie when browser is set.
type client struct {
	t       *testing.T
	app     *fiber.App
	token   string
	browser bool
}

func (c *client) do(method, path, contentType, body string) *http.Response {
	c.t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		if c.browser {
			req.AddCookie(&http.Cookie{Name: utils.SessionCookie, Value: c.token})
		} else {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
	}

	resp, err := c.app.Test(req)
	require.NoError(c.t, err)
	if c.browser {
		for _, ck := range resp.Cookies() {
			if ck.Name == utils.SessionCookie {
				c.token = ck.Value
			}
		}
	} else if token := resp.Header.Get(middleware.SessionHeader); token != "" {
		c.token = token
	}
	return resp
}

func (c *client) json(method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	c.t.Helper()
	body := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = string(raw)
	}
	resp := c.do(method, path, fiber.MIMEApplicationJSON, body)

	var result map[string]interface{}
	require.NoError(c.t, json.NewDecoder(resp.Body).Decode(&result))
	return resp, result
}

func (c *client) form(path, body string) (*http.Response, string) {
	c.t.Helper()
	resp := c.do(http.MethodPost, path, fiber.MIMEApplicationForm, body)
	return resp, readBody(c.t, resp)
}

func (c *client) get(path string) (*http.Response, string) {
	c.t.Helper()
	resp := c.do(http.MethodGet, path, "", "")
	return resp, readBody(c.t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
