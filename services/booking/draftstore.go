package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"driveline/models"

	"github.com/go-redis/redis/v8"
)

const (
	draftKeyPrefix = "bookingDraft:"
	draftTTL       = 30 * time.Minute
)

// RedisDraftStore keeps wizard drafts in Redis with a sliding 30-minute TTL.
// Expiry doubles as abandonment cleanup; nothing is persisted.
type RedisDraftStore struct {
	Client *redis.Client
}

func NewRedisDraftStore(client *redis.Client) *RedisDraftStore {
	return &RedisDraftStore{Client: client}
}

func (s *RedisDraftStore) Save(ctx context.Context, draft models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKeyPrefix+draft.WizardID, data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Get(ctx context.Context, wizardID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, draftKeyPrefix+wizardID).Result()
	if err == redis.Nil {
		return nil, ErrWizardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}

	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse booking draft: %w", err)
	}
	return &draft, nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, wizardID string) error {
	return s.Client.Del(ctx, draftKeyPrefix+wizardID).Err()
}
