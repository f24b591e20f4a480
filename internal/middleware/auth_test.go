package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brickvale-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("gate-secret")

func gateApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin-only",
		RequireAuth(testSecret),
		RequireRole(models.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendString("in") },
	)
	return app
}

func bearerFor(t *testing.T, role string) string {
	t.Helper()
	token, err := GenerateToken(testSecret, uuid.New(), role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRequireRole_AdminPasses(t *testing.T) {
	app := gateApp()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", bearerFor(t, models.RoleAdmin))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_ClientRejected(t *testing.T) {
	app := gateApp()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", bearerFor(t, models.RoleClient))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireAuth_RejectsBadTokens(t *testing.T) {
	app := gateApp()

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	expired, err := GenerateToken(testSecret, uuid.New(), models.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
