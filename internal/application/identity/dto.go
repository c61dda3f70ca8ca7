package identity

import (
	"github.com/dashboard/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// CreateUserRequest represents a request to register a user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,max=200"`
	Password string `json:"password" binding:"required,min=6,password"`
}

// UpdateUserRequest represents a partial update of a user.
// A supplied password is re-hashed.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,min=1,max=200"`
	Password *string `json:"password" binding:"omitempty,min=6,password"`
}

// UserResponse represents a user in API responses. The password hash is
// never part of it.
type UserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// ToUserResponse converts a domain User to UserResponse
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
