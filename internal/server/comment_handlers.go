package server

import (
	"microblog/internal/models"
	"microblog/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /create-comment/
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Content *string `json:"content"`
		User    *uint   `json:"user"`
		Post    *uint   `json:"post"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		Content: req.Content,
		UserID:  req.User,
		PostID:  req.Post,
	})
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComment handles GET /get-comment/:id/
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id", "comment ID")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(comment)
}

// GetCommentsByPost handles GET /get-comments-by-post/:postId/
func (s *Server) GetCommentsByPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId", "post ID")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListCommentsByPost(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	return c.JSON(comments)
}
