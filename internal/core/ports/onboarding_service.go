package ports

import "context"

// OnboardingProgress is the view of a draft returned to the client after
// every mutation, including the server-computed completion predicate.
type OnboardingProgress struct {
	DraftID        string
	Role           string
	AgreedPolicies []string
	CompletedTools []string
	PoliciesAgreed int
	PoliciesTotal  int
	ToolsCompleted int
	ToolsTotal     int
	IsComplete     bool
}

// OnboardingService accumulates a new hire's policy agreements and tool
// checks ahead of registration. AgreePolicy and CompleteTool are idempotent.
type OnboardingService interface {
	Start(ctx context.Context, role string) (*OnboardingProgress, error)
	AgreePolicy(ctx context.Context, draftID, policyID string) (*OnboardingProgress, error)
	CompleteTool(ctx context.Context, draftID, toolID string) (*OnboardingProgress, error)
	Progress(ctx context.Context, draftID string) (*OnboardingProgress, error)
}
