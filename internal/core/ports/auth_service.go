package ports

import (
	"context"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// ClientMeta carries the request metadata recorded on every login attempt.
// Fields default to "N/A" when the transport could not resolve them.
type ClientMeta struct {
	IPAddress string
	UserAgent string
}

// LoginInput is either the employee credential shape (firstName, lastName,
// idNumber) or the admin shape (email, password). The service decides which
// path applies from the populated fields.
type LoginInput struct {
	FirstName string
	LastName  string
	IDNumber  string
	Email     string
	Password  string
	Client    ClientMeta
}

// RegisterInput finalizes an onboarding flow into a new employee account.
// Role is what the client claims; the service always persists EMPLOYEE.
type RegisterInput struct {
	FirstName      string
	LastName       string
	IDNumber       string
	Role           string
	AgreedPolicies []string
	CompletedTools []string
}

// AuthResult is returned on successful login or registration: a bearer token
// wrapping the session id, the sanitized user, and the stored session state.
type AuthResult struct {
	Token   string
	User    *domain.User
	Session *domain.Session
}

// AuthService implements credential verification, registration and the
// session lifecycle.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context, sessionID string) error
	Session(ctx context.Context, sessionID string) (*domain.Session, error)
}
