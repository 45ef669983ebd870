package models

import (
	"time"

	"github.com/google/uuid"
)

// WebSession is an authenticated console session. The ID is the cookie token.
type WebSession struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	CreatedAt      time.Time `json:"createdAt"`
	ExpiresAt      time.Time `json:"expiresAt"`
	LastActivityAt time.Time `json:"lastActivityAt"`
	IPAddress      string    `json:"ipAddress,omitempty"`
	UserAgent      string    `json:"userAgent,omitempty"`
	IsActive       bool      `json:"isActive"`
}

// SessionResponse is the safe response format
type SessionResponse struct {
	ExpiresAt      time.Time    `json:"expiresAt"`
	LastActivityAt time.Time    `json:"lastActivityAt"`
	User           UserResponse `json:"user"`
}

// NewWebSession creates a new web session
func NewWebSession(userID, ipAddress, userAgent string, duration time.Duration) *WebSession {
	now := time.Now().UTC()
	return &WebSession{
		ID:             uuid.New().String(),
		UserID:         userID,
		CreatedAt:      now,
		ExpiresAt:      now.Add(duration),
		LastActivityAt: now,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		IsActive:       true,
	}
}

// IsExpired checks if the session has expired
func (s *WebSession) IsExpired() bool {
	return time.Now().UTC().After(s.ExpiresAt)
}

// ToResponse builds the response for the session's owner
func (s *WebSession) ToResponse(u *User) SessionResponse {
	return SessionResponse{
		ExpiresAt:      s.ExpiresAt,
		LastActivityAt: s.LastActivityAt,
		User:           u.ToResponse(),
	}
}

// WebSession errors
var (
	ErrSessionNotFound = SessionError{"session not found"}
	ErrSessionExpired  = SessionError{"session has expired"}
	ErrSessionInactive = SessionError{"session is no longer active"}
)

type SessionError struct {
	Message string
}

func (e SessionError) Error() string {
	return e.Message
}
