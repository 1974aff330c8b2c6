package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"driveline/models"
)

// SessionAPI covers the class session endpoints.
type SessionAPI interface {
	ListActiveSessions(ctx context.Context, limit int) ([]models.ClassSession, error)
	CreateClassSession(ctx context.Context, req models.CreateClassSessionRequest) (*models.ClassSession, error)
}

// ListActiveSessions fetches active class sessions up to the given ceiling.
// Order is whatever the backend returns; callers must not rely on sorting.
func (c *Client) ListActiveSessions(ctx context.Context, limit int) ([]models.ClassSession, error) {
	query := url.Values{}
	query.Set("is_active", "true")
	query.Set("limit", strconv.Itoa(limit))

	var sessions []models.ClassSession
	if err := c.do(ctx, http.MethodGet, "/class_sessions/", query, nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateClassSession creates a new class session and returns it with its
// backend-assigned ID.
func (c *Client) CreateClassSession(ctx context.Context, req models.CreateClassSessionRequest) (*models.ClassSession, error) {
	var created models.ClassSession
	if err := c.do(ctx, http.MethodPost, "/class_sessions/", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
