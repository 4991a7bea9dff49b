package server

import (
	"microblog/internal/models"
	"microblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /create-post/
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
		User    *uint   `json:"user"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.User,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPost handles GET /get-post/:id/
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "post ID")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(post)
}

// GetPostsByUser handles GET /get-posts-by-user/:userId/
//
// A user with zero posts yields 200 with an empty array; user existence is
// deliberately not checked on this read path.
func (s *Server) GetPostsByUser(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId", "user ID")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListPostsByUser(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if posts == nil {
		posts = []models.Post{}
	}

	return c.JSON(posts)
}
