package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"driveline/models"

	"github.com/go-redis/redis/v8"
)

const (
	AuthSessionPrefix = "authSession:"
	AuthSessionTTL    = 24 * time.Hour
)

// AuthSession is the record of a logged-in user, keyed by token hash. It is
// the single shared read-mostly resource in the system: written on login and
// logout, read by navigation, dashboards and the booking flow.
type AuthSession struct {
	User      models.User `json:"user"`
	CreatedAt time.Time   `json:"createdAt"`
	LastSeen  time.Time   `json:"lastSeen"`
}

// SaveAuthSession stores the session in Redis under the token hash.
func SaveAuthSession(client *redis.Client, tokenHash string, session AuthSession) error {
	session.LastSeen = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+tokenHash, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the session for a token hash. A redis.Nil error
// means no user is logged in under that token.
func GetAuthSession(client *redis.Client, tokenHash string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+tokenHash).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a session (logout).
func DeleteAuthSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+tokenHash).Err()
}
