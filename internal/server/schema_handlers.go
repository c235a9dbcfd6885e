package server

import (
	"launchbase/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Schema handles GET /schema. It emits a machine-readable shape description
// for each stored entity, for external tooling.
func (s *Server) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user":           models.UserSchema(),
		"blogpost":       models.BlogPostSchema(),
		"contactmessage": models.ContactMessageSchema(),
	})
}
