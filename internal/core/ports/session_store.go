package ports

import (
	"context"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// SessionStore holds authenticated session records keyed by session id.
// Records expire on their own; Delete makes logout immediate.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session *domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// DraftStore holds pre-registration onboarding drafts keyed by draft id.
type DraftStore interface {
	Save(ctx context.Context, draft *domain.OnboardingDraft) error
	Get(ctx context.Context, draftID string) (*domain.OnboardingDraft, error)
	Delete(ctx context.Context, draftID string) error
}
