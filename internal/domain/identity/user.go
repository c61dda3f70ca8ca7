// Package identity holds application users.
package identity

import (
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Password cost for bcrypt
	bcryptCost = 12
	// bcrypt rejects longer input
	maxPasswordBytes = 72
)

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash.
var ErrPasswordTooLong = shared.NewDomainError(shared.CodeValidationFailed, "Password must be at most 72 bytes")

// User is an account holder. PasswordHash is a bcrypt hash and is never
// exposed outside the service layer.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

// NewUser creates a user with a freshly generated ID.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// UserUpdate carries the fields of a partial update.
// A nil field is left untouched.
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether no field was supplied.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}

// Apply copies the supplied fields onto user.
func (u UserUpdate) Apply(user *User) {
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.PasswordHash != nil {
		user.PasswordHash = *u.PasswordHash
	}
}

// Columns returns the supplied fields keyed by column name.
func (u UserUpdate) Columns() map[string]any {
	cols := make(map[string]any, 3)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.PasswordHash != nil {
		cols["password"] = *u.PasswordHash
	}
	return cols
}
