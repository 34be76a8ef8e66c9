package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

const draftTTL = 72 * time.Hour

// DraftStore keeps pre-registration onboarding drafts in Redis.
// Key format: onboarding:draft:<draft_id>. The TTL is refreshed on every
// save so an active onboarding session never expires mid-flow.
type DraftStore struct {
	client *redis.Client
}

// NewDraftStore creates a DraftStore wrapping the given Redis client.
func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{client: client}
}

func (s *DraftStore) Save(ctx context.Context, draft *domain.OnboardingDraft) error {
	payload, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.client.Set(ctx, s.key(draft.ID), payload, draftTTL).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *DraftStore) Get(ctx context.Context, draftID string) (*domain.OnboardingDraft, error) {
	payload, err := s.client.Get(ctx, s.key(draftID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrDraftNotFound
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}

	var draft domain.OnboardingDraft
	if err := json.Unmarshal(payload, &draft); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &draft, nil
}

func (s *DraftStore) Delete(ctx context.Context, draftID string) error {
	if err := s.client.Del(ctx, s.key(draftID)).Err(); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

func (s *DraftStore) key(draftID string) string {
	return fmt.Sprintf("onboarding:draft:%s", draftID)
}
