// Package service implements the validation and integrity layer between the
// HTTP surface and the data access layer. Every create operation evaluates
// all of its precondition checks independently and reports the full set of
// violations in one field-keyed error.
package service

import (
	"context"

	"microblog/internal/models"
	"microblog/internal/repository"
	"microblog/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLen = 150
	maxNameLen     = 30
)

// UserService handles user registration and lookups.
type UserService struct {
	userRepo repository.UserRepository
}

// RegisterUserInput carries the create-user payload. Required fields are
// pointers so an omitted field is distinguishable from a blank one.
type RegisterUserInput struct {
	Username  *string
	Email     *string
	Password  *string
	FirstName string
	LastName  string
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register validates the payload, checks username and email uniqueness,
// hashes the password and persists the user. The uniqueness pre-checks exist
// for friendly messages only; the database unique indexes are the
// authoritative guard and a lost race is translated by the repository into
// the same field-keyed shape.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	errs := models.FieldErrors{}

	username, ok := validation.Required(errs, "username", in.Username)
	if ok && validation.MaxLength(errs, "username", username, maxUsernameLen) {
		existing, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			errs.Add("username", validation.MsgUsernameTaken)
		}
	}

	email, ok := validation.Required(errs, "email", in.Email)
	if ok && validation.Email(errs, "email", email) {
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			errs.Add("email", validation.MsgEmailTaken)
		}
	}

	password, _ := validation.Required(errs, "password", in.Password)
	validation.MaxLength(errs, "first_name", in.FirstName, maxNameLen)
	validation.MaxLength(errs, "last_name", in.LastName, maxNameLen)

	if len(errs) > 0 {
		return nil, errs
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser looks a user up by ID.
func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns all users in insertion order.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}
