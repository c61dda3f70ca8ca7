// Package identity implements the user use cases.
package identity

import (
	"context"
	"fmt"

	"github.com/dashboard/backend/internal/domain/identity"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const userEntity = "User"

// ErrEmailTaken is returned when another user already holds the email
var ErrEmailTaken = shared.NewDomainError(shared.CodeAlreadyExists, "Email already registered")

// UserService handles user-related business operations.
//
// Email uniqueness is checked before writing and is not backed by a unique
// index, so two concurrent registrations of one address can both succeed.
type UserService struct {
	userRepo identity.UserRepository
	hash     func(password string) (string, error)
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		hash:     identity.HashPassword,
	}
}

// List returns every user ordered by name
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return responses, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateNotFound(err, userEntity)
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Create registers a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := identity.NewUser(req.Name, req.Email, hash)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Update applies the supplied fields to a user
func (s *UserService) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	update := identity.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	}

	if req.Email != nil {
		// A missing user answers 404 even when the email is taken.
		if _, err := s.userRepo.FindByID(ctx, id); err != nil {
			return nil, shared.TranslateNotFound(err, userEntity)
		}
		taken, err := s.userRepo.ExistsByEmailExcludingID(ctx, *req.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	if req.Password != nil {
		hash, err := s.hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		update.PasswordHash = &hash
	}

	user, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		return nil, shared.TranslateNotFound(err, userEntity)
	}

	response := ToUserResponse(user)
	return &response, nil
}
