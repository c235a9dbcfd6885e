package server

import (
	"launchbase/internal/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
)

const defaultBlogLimit = 6

// ListBlogs handles GET /api/blogs?limit=N
//
// Demo content is seeded at startup (see the seed package), so this is a pure
// read over published posts.
func (s *Server) ListBlogs(c *fiber.Ctx) error {
	if s.store == nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewStoreUnavailableError())
	}

	limit := c.QueryInt("limit", defaultBlogLimit)

	var posts []models.BlogPost
	err := s.store.FindMany(c.Context(), models.BlogPostCollection, bson.M{"published": true}, int64(limit), &posts)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	items := make([]models.BlogPostResponse, 0, len(posts))
	for _, post := range posts {
		items = append(items, post.Public())
	}

	return c.JSON(fiber.Map{"items": items})
}
