package domain

import "time"

// OnboardingDraft accumulates policy agreements and tool checks for a new
// hire before the account exists. Drafts live in Redis with a TTL; both sets
// only ever grow.
type OnboardingDraft struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	AgreedPolicies []string  `json:"agreedPolicies"`
	CompletedTools []string  `json:"completedTools"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Complete applies the onboarding completion predicate to the draft.
func (d *OnboardingDraft) Complete() bool {
	return IsOnboardingComplete(d.Role, d.AgreedPolicies, d.CompletedTools)
}
