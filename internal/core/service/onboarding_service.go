package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

// OnboardingService accumulates a new hire's choices in a draft held by the
// draft store. Both set mutations are idempotent appends; the completion
// predicate is always computed server side.
type OnboardingService struct {
	drafts ports.DraftStore
	logger zerolog.Logger
}

func NewOnboardingService(drafts ports.DraftStore, logger zerolog.Logger) *OnboardingService {
	return &OnboardingService{drafts: drafts, logger: logger}
}

// Start opens an empty draft for the given role.
func (s *OnboardingService) Start(ctx context.Context, role string) (*ports.OnboardingProgress, error) {
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return nil, domain.ErrInvalidInput
	}

	draft := &domain.OnboardingDraft{
		ID:             uuid.NewString(),
		Role:           role,
		AgreedPolicies: []string{},
		CompletedTools: []string{},
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	s.logger.Info().Str("draft_id", draft.ID).Str("role", role).Msg("onboarding draft started")
	return progressView(draft), nil
}

// AgreePolicy records a policy agreement. Repeat calls are no-ops.
func (s *OnboardingService) AgreePolicy(ctx context.Context, draftID, policyID string) (*ports.OnboardingProgress, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !domain.KnownPolicyID(policyID) {
		return nil, domain.ErrUnknownCatalogID
	}

	draft.AgreedPolicies = domain.AppendUnique(draft.AgreedPolicies, policyID)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return progressView(draft), nil
}

// CompleteTool records a tool-setup check. Repeat calls are no-ops.
func (s *OnboardingService) CompleteTool(ctx context.Context, draftID, toolID string) (*ports.OnboardingProgress, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !domain.KnownToolID(draft.Role, toolID) {
		return nil, domain.ErrUnknownCatalogID
	}

	draft.CompletedTools = domain.AppendUnique(draft.CompletedTools, toolID)
	if err := s.drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return progressView(draft), nil
}

// Progress returns the current draft state.
func (s *OnboardingService) Progress(ctx context.Context, draftID string) (*ports.OnboardingProgress, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return progressView(draft), nil
}

func progressView(d *domain.OnboardingDraft) *ports.OnboardingProgress {
	return &ports.OnboardingProgress{
		DraftID:        d.ID,
		Role:           d.Role,
		AgreedPolicies: d.AgreedPolicies,
		CompletedTools: d.CompletedTools,
		PoliciesAgreed: len(d.AgreedPolicies),
		PoliciesTotal:  len(domain.PolicyCatalog),
		ToolsCompleted: len(d.CompletedTools),
		ToolsTotal:     len(domain.ToolCatalog(d.Role)),
		IsComplete:     d.Complete(),
	}
}
