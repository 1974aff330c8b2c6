// Package auth holds the logged-in user state. It is an injected service
// object rather than an ambient global so it can be substituted in tests.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"driveline/backend"
	"driveline/models"
	"driveline/utils"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession means the token does not map to a logged-in user.
var ErrNoSession = errors.New("no active session")

// Service verifies credentials against the backend and keeps the resulting
// user record in the auth session cache.
type Service struct {
	Users backend.UserAPI
	Cache *redis.Client
}

func NewService(users backend.UserAPI, cache *redis.Client) *Service {
	return &Service{Users: users, Cache: cache}
}

// Login delegates the credential check to the backend, then issues a JWT and
// stores the user record under the token hash.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (string, *models.User, error) {
	user, err := s.Users.Authenticate(ctx, creds)
	if err != nil {
		return "", nil, fmt.Errorf("authentication failed: %w", err)
	}

	token, err := utils.GenerateToken(strconv.Itoa(user.ID), user.Email, utils.AuthSessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := utils.AuthSession{User: *user, CreatedAt: time.Now()}
	if err := utils.SaveAuthSession(s.Cache, utils.HashToken(token), session); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout drops the session for the token. Unknown tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return utils.DeleteAuthSession(s.Cache, utils.HashToken(token))
}

// CurrentUser resolves the logged-in user for a token, or ErrNoSession.
func (s *Service) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	if _, err := utils.ValidateToken(token); err != nil {
		return nil, ErrNoSession
	}

	session, err := utils.GetAuthSession(s.Cache, utils.HashToken(token))
	if err == redis.Nil {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}
	return &session.User, nil
}
