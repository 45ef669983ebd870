package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// User is a staff member allowed into the console
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	DisplayName  string    `json:"displayName"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserResponse is the safe response format
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUser creates an active user with the given password
func NewUser(username, displayName, password string) (*User, error) {
	username = NormalizeUsername(username)
	displayName = strings.TrimSpace(displayName)

	if username == "" {
		return nil, ErrEmptyUsername
	}
	if displayName == "" {
		displayName = username
	}

	u := &User{
		ID:          uuid.New().String(),
		Username:    username,
		DisplayName: displayName,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// NormalizeUsername lowercases and trims a username the way it is stored
func NormalizeUsername(username string) string {
	return strings.TrimSpace(strings.ToLower(username))
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

// SetPassword hashes and sets the user's password using bcrypt (cost 12)
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword checks if the provided password matches the hash
func (u *User) VerifyPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// User errors
var (
	ErrEmptyUsername      = UserError{"username cannot be empty"}
	ErrUserNotFound       = UserError{"user not found"}
	ErrUserInactive       = UserError{"user account is disabled"}
	ErrPasswordTooShort   = UserError{"password must be at least 8 characters"}
	ErrInvalidCredentials = UserError{"invalid username or password"}
)

type UserError struct {
	Message string
}

func (e UserError) Error() string {
	return e.Message
}
