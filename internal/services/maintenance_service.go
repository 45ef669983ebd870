package services

import (
	"context"
	"sync"
	"time"

	"github.com/hairshop/admin/internal/observability"
)

// MaintenanceStatus represents the current status of maintenance tasks
type MaintenanceStatus struct {
	Running          bool      `json:"running"`
	LastRun          time.Time `json:"lastRun,omitempty"`
	LastRunDuration  string    `json:"lastRunDuration,omitempty"`
	SessionsRemoved  int       `json:"sessionsRemoved"`
	ActivityRemoved  int       `json:"activityRemoved"`
	Errors           []string  `json:"errors,omitempty"`
	NextScheduledRun time.Time `json:"nextScheduledRun,omitempty"`
}

// MaintenanceService purges dead sessions and activity past its retention
type MaintenanceService struct {
	auth          *AuthService
	activity      *ActivityService
	retentionDays int
	interval      time.Duration

	mu      sync.RWMutex
	running bool
	status  MaintenanceStatus
}

// NewMaintenanceService creates a new MaintenanceService. retentionDays of
// zero keeps activity forever.
func NewMaintenanceService(auth *AuthService, activity *ActivityService, retentionDays int) *MaintenanceService {
	return &MaintenanceService{
		auth:          auth,
		activity:      activity,
		retentionDays: retentionDays,
		interval:      time.Hour,
		status:        MaintenanceStatus{Errors: []string{}},
	}
}

// Start runs maintenance once, then every interval until ctx is done
func (s *MaintenanceService) Start(ctx context.Context) {
	observability.Infof("Maintenance service started (runs every %s)", s.interval)

	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.setNextRun()
		s.RunNow(ctx)

		for {
			select {
			case <-ticker.C:
				s.setNextRun()
				s.RunNow(ctx)
			case <-ctx.Done():
				observability.Infof("Maintenance service stopped")
				return
			}
		}
	}()
}

func (s *MaintenanceService) setNextRun() {
	s.mu.Lock()
	s.status.NextScheduledRun = time.Now().Add(s.interval)
	s.mu.Unlock()
}

// GetStatus returns the current maintenance status
func (s *MaintenanceService) GetStatus() MaintenanceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := s.status
	status.Errors = append([]string{}, s.status.Errors...)
	return status
}

// RunNow performs all maintenance tasks and returns the resulting status.
// It reports false without doing anything when a run is already in progress.
func (s *MaintenanceService) RunNow(ctx context.Context) (MaintenanceStatus, bool) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		observability.Debugf("Maintenance already running, skipping")
		return s.GetStatus(), false
	}
	s.running = true
	s.status.Running = true
	s.mu.Unlock()

	startTime := time.Now()
	var errs []string

	sessionsRemoved, err := s.auth.CleanupExpired(ctx)
	if err != nil {
		errs = append(errs, "Failed to clean up sessions: "+err.Error())
	}

	activityRemoved, err := s.activity.Cleanup(ctx, s.retentionDays)
	if err != nil {
		errs = append(errs, "Failed to clean up activity: "+err.Error())
	}

	duration := time.Since(startTime)

	s.mu.Lock()
	s.running = false
	s.status.Running = false
	s.status.LastRun = startTime
	s.status.LastRunDuration = duration.Round(time.Millisecond).String()
	s.status.SessionsRemoved = sessionsRemoved
	s.status.ActivityRemoved = activityRemoved
	s.status.Errors = append([]string{}, errs...)
	s.mu.Unlock()

	logger := observability.WithFields(map[string]interface{}{
		"sessions_removed": sessionsRemoved,
		"activity_removed": activityRemoved,
		"duration":         duration.Round(time.Millisecond).String(),
	})
	if len(errs) > 0 {
		for _, e := range errs {
			observability.Warnf("Maintenance: %s", e)
		}
		logger.Warnf("Maintenance completed with %d errors", len(errs))
	} else {
		logger.Info("Maintenance tasks completed")
	}

	return s.GetStatus(), true
}
