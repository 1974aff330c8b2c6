package notification

import "context"

// PushService is the capability interface for browser push notifications.
// Token lifecycle mirrors the FCM permission flow on the client; delivery is
// best-effort with no guarantees.
type PushService interface {
	RegisterToken(ctx context.Context, userID int, token string) error
	CurrentToken(ctx context.Context, userID int) (string, error)
	RefreshToken(ctx context.Context, userID int, token string) error
	RevokeToken(ctx context.Context, userID int) error
	SendPush(ctx context.Context, userID int, title, body string, data map[string]string) error
}
