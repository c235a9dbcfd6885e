package server

import (
	"time"

	"launchbase/internal/auth"
	"launchbase/internal/models"
	"launchbase/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Register handles POST /api/auth/register
func (s *Server) Register(c *fiber.Ctx) error {
	if s.store == nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewStoreUnavailableError())
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Validate input
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, and password are required"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Check if the email is already registered. Uniqueness is an
	// application-level check only; the collection carries no constraint.
	var existing models.User
	found, err := s.store.FindOne(c.Context(), models.UserCollection, bson.M{"email": req.Email}, &existing)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	if found {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewEmailTakenError())
	}

	// Hash password
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	now := time.Now().UTC()
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashed,
		Plan:         "free",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.store.InsertOne(c.Context(), models.UserCollection, user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	user.ID = oid

	token, err := auth.IssueToken(s.config.JWTSecret,
		map[string]any{"sub": id, "email": req.Email}, auth.DefaultTokenTTL)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}

// Login handles POST /api/auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	if s.store == nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewStoreUnavailableError())
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	// Find user by email
	var user models.User
	found, err := s.store.FindOne(c.Context(), models.UserCollection, bson.M{"email": req.Email}, &user)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	// Same failure for an unknown email and a wrong password
	if !found || !auth.CheckPassword(req.Password, user.PasswordHash) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewInvalidCredentialsError())
	}

	token, err := auth.IssueToken(s.config.JWTSecret,
		map[string]any{"sub": user.ID.Hex(), "email": user.Email}, auth.DefaultTokenTTL)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user.Public(),
	})
}
