package ports

import (
	"context"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// EmployeeOverview is the roster row shown on the admin dashboard: identity
// plus onboarding state, hashes already stripped.
type EmployeeOverview struct {
	User               *domain.User
	OnboardingComplete bool
}

// AdminService covers the read/audit surfaces reserved for admins.
type AdminService interface {
	// ListEmployees returns the employee roster, newest first.
	ListEmployees(ctx context.Context) ([]*EmployeeOverview, error)
	// DeleteUser removes a user. actorID guards against self-deletion.
	DeleteUser(ctx context.Context, actorID, userID string) error
	// ListLoginAttempts returns the latest audit records, newest first.
	ListLoginAttempts(ctx context.Context) ([]*domain.LoginAttempt, error)
}
