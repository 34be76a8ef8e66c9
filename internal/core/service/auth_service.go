package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

// secretPattern is the employee id-number rule: 6 to 8 digits, nothing else.
var secretPattern = regexp.MustCompile(`^[0-9]{6,8}$`)

// AuthService implements login, registration and the session lifecycle.
type AuthService struct {
	users     ports.UserRepository
	attempts  ports.LoginAttemptRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	hashCost  int
	logger    zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	attempts ports.LoginAttemptRepository,
	sessions ports.SessionStore,
	jwtSecret string,
	tokenTTL time.Duration,
	hashCost int,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if hashCost < bcrypt.DefaultCost {
		hashCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:     users,
		attempts:  attempts,
		sessions:  sessions,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		hashCost:  hashCost,
		logger:    logger,
	}
}

// Login verifies either credential shape and always appends one audit record
// for the attempt. Unknown identity and wrong secret are indistinguishable
// to the caller: both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	var (
		identifier string
		user       *domain.User
		verified   bool
	)

	switch {
	case input.Email != "" && input.Password != "":
		identifier = input.Email
		user, verified = s.loginAdmin(ctx, input.Email, input.Password)
	case strings.TrimSpace(input.FirstName) != "" && strings.TrimSpace(input.LastName) != "" && input.IDNumber != "":
		identifier = fmt.Sprintf("%s %s", input.FirstName, input.LastName)
		user, verified = s.loginEmployee(ctx, input.FirstName, input.LastName, input.IDNumber)
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := s.recordAttempt(ctx, identifier, user, verified, input.Client); err != nil {
		return nil, err
	}

	if user == nil || !verified {
		s.logger.Info().Str("identifier", identifier).Msg("login rejected")
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return result, nil
}

func (s *AuthService) loginAdmin(ctx context.Context, email, password string) (*domain.User, bool) {
	user, err := s.users.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, false
	}
	if user.Role != domain.RoleAdmin || user.PasswordHash == "" {
		return nil, false
	}
	return user, s.compareHash(user.PasswordHash, password)
}

func (s *AuthService) loginEmployee(ctx context.Context, firstName, lastName, idNumber string) (*domain.User, bool) {
	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return nil, false
	}
	for _, candidate := range employees {
		if !candidate.SameName(firstName, lastName) || candidate.IDNumberHash == "" {
			continue
		}
		return candidate, s.compareHash(candidate.IDNumberHash, idNumber)
	}
	return nil, false
}

func (s *AuthService) compareHash(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}

func (s *AuthService) recordAttempt(ctx context.Context, identifier string, user *domain.User, success bool, client ports.ClientMeta) error {
	attempt := &domain.LoginAttempt{
		Timestamp:           time.Now().UTC(),
		AttemptedIdentifier: identifier,
		Success:             success && user != nil,
		IPAddress:           orNA(client.IPAddress),
		UserAgent:           orNA(client.UserAgent),
	}
	if user != nil {
		attempt.UserID = user.ID
	}
	if err := s.attempts.Append(ctx, attempt); err != nil {
		s.logger.Error().Err(err).Str("identifier", identifier).Msg("failed to record login attempt")
		return fmt.Errorf("record login attempt: %w", err)
	}
	return nil
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// Register finalizes onboarding into a new EMPLOYEE account. Completion
// state is re-validated server side; client flags are never trusted.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" || !secretPattern.MatchString(input.IDNumber) {
		return nil, domain.ErrInvalidInput
	}
	if len(input.AgreedPolicies) == 0 || len(input.CompletedTools) == 0 {
		return nil, domain.ErrInvalidInput
	}

	employees, err := s.users.ListEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	for _, existing := range employees {
		if existing.SameName(firstName, lastName) {
			return nil, domain.ErrDuplicateName
		}
	}
	// Secrets are stored hashed, so uniqueness cannot be a database
	// constraint: the candidate is compared against every stored hash.
	for _, existing := range employees {
		if existing.IDNumberHash == "" {
			continue
		}
		if s.compareHash(existing.IDNumberHash, input.IDNumber) {
			return nil, domain.ErrDuplicateSecret
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.IDNumber), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash secret: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Role:           domain.RoleEmployee, // forced, regardless of the claimed role
		FirstName:      firstName,
		LastName:       lastName,
		IDNumberHash:   string(hash),
		AgreedPolicies: dedupe(input.AgreedPolicies),
		CompletedTools: dedupe(input.CompletedTools),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("employee registered")
	return s.openSession(ctx, created)
}

// Logout deletes the server-side session record, revoking the token.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// Session restores the persisted session state. A record that fails the
// shape check is discarded rather than trusted.
func (s *AuthService) Session(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Valid() {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	sessionID := uuid.NewString()
	session := domain.NewSession(user)
	if err := s.sessions.Save(ctx, sessionID, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.generateToken(sessionID, user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &ports.AuthResult{Token: token, User: user.Sanitized(), Session: session}, nil
}

func (s *AuthService) generateToken(sessionID string, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sessionID,
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = domain.AppendUnique(out, id)
	}
	return out
}
