package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/repository"
	"microblog/internal/validation"
)

const maxTitleLen = 255

// PostService handles post creation and reads.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the create-post payload.
type CreatePostInput struct {
	Title   *string
	Content *string
	UserID  *uint
}

// NewPostService returns a PostService backed by the given repositories.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost validates the payload and the user reference, then persists the
// post. A missing or unresolvable user identifier is one combined violation
// under the "user" key. The creation timestamp is server-assigned at insert.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	errs := models.FieldErrors{}

	title, ok := validation.Required(errs, "title", in.Title)
	if ok {
		validation.MaxLength(errs, "title", title, maxTitleLen)
	}
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

	if len(errs) > 0 {
		return nil, errs
	}

	post := &models.Post{
		Title:   title,
		Content: content,
		UserID:  *in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost looks a post up by ID.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPostsByUser returns the user's posts in creation order. Zero posts is
// an empty slice, never an error; whether the user exists is not checked on
// this read path.
func (s *PostService) ListPostsByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.postRepo.GetByUserID(ctx, userID)
}
