package server

import (
	"time"

	"launchbase/internal/models"
	"launchbase/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Contact handles POST /api/contact
func (s *Server) Contact(c *fiber.Ctx) error {
	if s.store == nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewStoreUnavailableError())
	}

	var req struct {
		Name    string         `json:"name"`
		Email   string         `json:"email"`
		Subject *string        `json:"subject"`
		Message string         `json:"message"`
		Meta    map[string]any `json:"meta"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and message are required"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	now := time.Now().UTC()
	msg := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Meta:      req.Meta,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.store.InsertOne(c.Context(), models.ContactMessageCollection, msg)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"id":     id,
	})
}
