package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

// loginAttemptListCap bounds the audit view to the latest records.
const loginAttemptListCap = 100

// AdminService covers the admin-only review surfaces: employee roster,
// user removal and the login audit log.
type AdminService struct {
	users    ports.UserRepository
	attempts ports.LoginAttemptRepository
	logger   zerolog.Logger
}

func NewAdminService(users ports.UserRepository, attempts ports.LoginAttemptRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, attempts: attempts, logger: logger}
}

func (s *AdminService) ListEmployees(ctx context.Context) ([]*ports.EmployeeOverview, error) {
	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]*ports.EmployeeOverview, 0, len(employees))
	for _, employee := range employees {
		sanitized := employee.Sanitized()
		overviews = append(overviews, &ports.EmployeeOverview{
			User:               sanitized,
			OnboardingComplete: domain.IsOnboardingComplete(sanitized.Role, sanitized.AgreedPolicies, sanitized.CompletedTools),
		})
	}
	return overviews, nil
}

func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return domain.ErrForbidden
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID).Str("deleted_by", actorID).Msg("user deleted")
	return nil
}

func (s *AdminService) ListLoginAttempts(ctx context.Context) ([]*domain.LoginAttempt, error) {
	return s.attempts.ListRecent(ctx, loginAttemptListCap)
}
