package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/repository"
	"microblog/internal/validation"
)

// CommentService handles comment creation and reads.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// CreateCommentInput carries the create-comment payload.
type CreateCommentInput struct {
	Content *string
	UserID  *uint
	PostID  *uint
}

// NewCommentService returns a CommentService backed by the given repositories.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment validates the payload and both references, then persists the
// comment. All violations are surfaced together under their field keys.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	errs := models.FieldErrors{}

	content, _ := validation.Required(errs, "content", in.Content)

	if in.UserID == nil || *in.UserID == 0 {
		errs.Add("user", validation.MsgInvalidUser)
	} else {
		exists, err := s.userRepo.Exists(ctx, *in.UserID)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs.Add("user", validation.MsgInvalidUser)
		}
	}

	if in.PostID == nil || *in.PostID == 0 {
		errs.Add("post", validation.MsgInvalidPost)
	} else {
		exists, err := s.postRepo.Exists(ctx, *in.PostID)
		if err != nil {
			return nil, err
		}
		if !exists {
			errs.Add("post", validation.MsgInvalidPost)
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	comment := &models.Comment{
		Content: content,
		UserID:  *in.UserID,
		PostID:  *in.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetComment looks a comment up by ID.
func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// ListCommentsByPost returns a post's comments in creation order.
func (s *CommentService) ListCommentsByPost(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}
