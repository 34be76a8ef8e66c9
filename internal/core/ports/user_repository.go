package ports

import (
	"context"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// UserRepository defines persistence for user identities.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindAdminByEmail retrieves the ADMIN record with the exact email.
	FindAdminByEmail(ctx context.Context, email string) (*domain.User, error)
	// ListEmployees returns every EMPLOYEE record, newest first. The full
	// scan backs both name matching and the secret-uniqueness check; the
	// employee population is small by design.
	ListEmployees(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// LoginAttemptRepository is the append-only audit log of login outcomes.
type LoginAttemptRepository interface {
	Append(ctx context.Context, attempt *domain.LoginAttempt) error
	// ListRecent returns the latest attempts, newest first, capped at limit.
	ListRecent(ctx context.Context, limit int) ([]*domain.LoginAttempt, error)
}
