package notification

import (
	"context"
	"fmt"
	"strconv"

	"firebase.google.com/go/v4/messaging"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const deviceTokenPrefix = "deviceToken:"

// FCMPushService keeps one device token per user in Redis and delivers
// pushes through Firebase Cloud Messaging.
type FCMPushService struct {
	Tokens    *redis.Client
	Messaging *messaging.Client
	Logger    *zap.Logger
}

func NewFCMPushService(tokens *redis.Client, client *messaging.Client, logger *zap.Logger) *FCMPushService {
	return &FCMPushService{Tokens: tokens, Messaging: client, Logger: logger}
}

func tokenKey(userID int) string {
	return deviceTokenPrefix + strconv.Itoa(userID)
}

func (s *FCMPushService) RegisterToken(ctx context.Context, userID int, token string) error {
	if token == "" {
		return fmt.Errorf("empty device token for user %d", userID)
	}
	if err := s.Tokens.Set(ctx, tokenKey(userID), token, 0).Err(); err != nil {
		return fmt.Errorf("failed to register device token: %w", err)
	}
	return nil
}

func (s *FCMPushService) CurrentToken(ctx context.Context, userID int) (string, error) {
	token, err := s.Tokens.Get(ctx, tokenKey(userID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read device token: %w", err)
	}
	return token, nil
}

// RefreshToken replaces a stale token; same write path as RegisterToken.
func (s *FCMPushService) RefreshToken(ctx context.Context, userID int, token string) error {
	return s.RegisterToken(ctx, userID, token)
}

func (s *FCMPushService) RevokeToken(ctx context.Context, userID int) error {
	return s.Tokens.Del(ctx, tokenKey(userID)).Err()
}

// SendPush delivers a push to the user's registered device. A missing client
// or token is reported as an error; callers treat delivery as best-effort.
func (s *FCMPushService) SendPush(ctx context.Context, userID int, title, body string, data map[string]string) error {
	if s.Messaging == nil {
		return fmt.Errorf("push notifications are not configured")
	}

	token, err := s.CurrentToken(ctx, userID)
	if err != nil {
		return err
	}
	if token == "" {
		return fmt.Errorf("user %d has no registered device token", userID)
	}

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	id, err := s.Messaging.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send push to user %d: %w", userID, err)
	}
	s.Logger.Debug("push notification sent", zap.Int("userId", userID), zap.String("messageId", id))
	return nil
}
