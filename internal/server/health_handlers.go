package server

import (
	"os"

	"github.com/gofiber/fiber/v2"
)

// Root handles GET /
func (s *Server) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "SaaS Starter Backend Running",
	})
}

// TestStore handles GET /test. It reports process liveness, store
// connectivity, and configuration presence as a diagnostic payload. It always
// answers 200; a broken store shows up in the payload, not the status code.
func (s *Server) TestStore(c *fiber.Ctx) error {
	response := fiber.Map{
		"backend":           "running",
		"database":          "not available",
		"database_url":      envPresence("DATABASE_URL"),
		"database_name":     envPresence("DATABASE_NAME"),
		"connection_status": "not connected",
		"collections":       []string{},
	}

	if s.store == nil {
		return c.JSON(response)
	}

	if err := s.store.Ping(c.Context()); err != nil {
		response["database"] = "error: " + truncate(err.Error(), 80)
		return c.JSON(response)
	}

	response["database"] = "connected"
	response["connection_status"] = "connected"

	if names, err := s.store.Collections(c.Context()); err != nil {
		response["database"] = "connected but error: " + truncate(err.Error(), 80)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		response["collections"] = names
	}

	return c.JSON(response)
}

func envPresence(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
