package booking

import (
	"context"

	"driveline/backend"
	"driveline/models"

	"go.uber.org/zap"
)

// CatalogService fetches the set of currently active class sessions for
// local availability filtering. One fetch per call, no retry, no polling.
type CatalogService struct {
	Sessions backend.SessionAPI
	Limit    int
	Logger   *zap.Logger
}

// LoadActiveSessions returns the active session catalog in backend order.
// On transport failure or a non-success response it resolves to an empty
// catalog rather than an error: callers treat empty as "unknown/none" and
// show no sessions instead of an error state.
func (s *CatalogService) LoadActiveSessions(ctx context.Context) []models.ClassSession {
	sessions, err := s.Sessions.ListActiveSessions(ctx, s.Limit)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("failed to load active class sessions, treating catalog as empty", zap.Error(err))
		}
		return nil
	}
	return sessions
}
