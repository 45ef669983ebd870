package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/repository"
)

// AuthService handles staff login and web sessions
type AuthService struct {
	userRepo        repository.UserRepo
	sessionRepo     repository.WebSessionRepo
	activity        *ActivityService
	metrics         *observability.ConsoleMetrics
	sessionDuration time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repository.UserRepo,
	sessionRepo repository.WebSessionRepo,
	activity *ActivityService,
	metrics *observability.ConsoleMetrics,
	sessionDurationHours int,
) *AuthService {
	if sessionDurationHours <= 0 {
		sessionDurationHours = 24
	}
	return &AuthService{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		activity:        activity,
		metrics:         metrics,
		sessionDuration: time.Duration(sessionDurationHours) * time.Hour,
	}
}

// Login checks the credentials and opens a new session.
// Unknown users and wrong passwords both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password, ipAddress, userAgent string) (*models.WebSession, *models.User, error) {
	ctx, span := observability.StartServiceSpan(ctx, "auth", "Login")
	defer span.End()

	user, err := s.userRepo.GetByUsername(ctx, models.NormalizeUsername(username))
	if err != nil {
		observability.RecordError(span, err)
		return nil, nil, fmt.Errorf("failed to lookup user: %w", err)
	}
	if user == nil || !user.VerifyPassword(password) {
		s.metrics.RecordAuthAttempt(ctx, false)
		observability.WithContext(ctx).WithField("username", username).Warn("Login rejected")
		return nil, nil, models.ErrInvalidCredentials
	}
	if !user.IsActive {
		s.metrics.RecordAuthAttempt(ctx, false)
		return nil, nil, models.ErrUserInactive
	}

	session := models.NewWebSession(user.ID, ipAddress, userAgent, s.sessionDuration)
	if err := s.sessionRepo.Add(ctx, session); err != nil {
		observability.RecordError(span, err)
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.metrics.RecordAuthAttempt(ctx, true)
	s.activity.Record(ctx, models.NewActivity(user.ID, models.ActionLogin, models.SubjectUser, user.ID, ipAddress, true))
	span.SetAttributes(observability.UserID(user.ID))
	observability.SetSuccess(span)
	return session, user, nil
}

// GetSession retrieves a session and validates it
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*models.WebSession, *models.User, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, models.ErrSessionNotFound
	}
	if !session.IsActive {
		return nil, nil, models.ErrSessionInactive
	}
	if session.IsExpired() {
		return nil, nil, models.ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil, models.ErrUserNotFound
	}

	return session, user, nil
}

// Logout invalidates a session
func (s *AuthService) Logout(ctx context.Context, session *models.WebSession) error {
	if err := s.sessionRepo.Invalidate(ctx, session.ID); err != nil {
		return err
	}
	s.activity.Record(ctx, models.NewActivity(session.UserID, models.ActionLogout, models.SubjectUser, session.UserID, "", true))
	return nil
}

// BootstrapAdmin creates the configured staff account if it does not exist yet.
// It returns true when an account was created.
func (s *AuthService) BootstrapAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	existing, err := s.userRepo.GetByUsername(ctx, models.NormalizeUsername(username))
	if err != nil {
		return false, fmt.Errorf("failed to lookup admin user: %w", err)
	}
	if existing != nil {
		return false, nil
	}

	user, err := models.NewUser(username, "", password)
	if err != nil {
		return false, err
	}
	if err := s.userRepo.Add(ctx, user); err != nil {
		return false, fmt.Errorf("failed to create admin user: %w", err)
	}

	observability.WithField("username", user.Username).Info("Bootstrap staff account created")
	return true, nil
}

// CleanupExpired removes expired and invalidated sessions
func (s *AuthService) CleanupExpired(ctx context.Context) (int, error) {
	return s.sessionRepo.CleanupExpired(ctx)
}
