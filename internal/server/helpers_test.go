package server

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"launchbase/internal/config"
	"launchbase/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

// newTestApp builds a Fiber app wired to the given store, the way the real
// entry point does, minus middleware.
func newTestApp(st store.Store) *fiber.App {
	cfg := &config.Config{
		Port:      "8000",
		JWTSecret: testSecret,
	}
	srv := NewServer(cfg, st)

	app := fiber.New()
	srv.SetupRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}
