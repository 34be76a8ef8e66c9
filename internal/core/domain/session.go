package domain

// Session is the server-held state for an authenticated client, stored in
// Redis under the session id carried by the bearer token. The shape mirrors
// what clients persist locally between page loads.
type Session struct {
	IsLoggedIn         bool     `json:"isLoggedIn"`
	UserID             string   `json:"userId"`
	UserRole           string   `json:"userRole"`
	FirstName          string   `json:"firstName,omitempty"`
	LastName           string   `json:"lastName,omitempty"`
	Email              string   `json:"email,omitempty"`
	AgreedPolicies     []string `json:"agreedPolicies"`
	CompletedTools     []string `json:"completedTools"`
	OnboardingComplete bool     `json:"onboardingComplete"`
}

// Valid performs the shape check applied before a restored session is
// trusted. A malformed record is discarded, never repaired.
func (s *Session) Valid() bool {
	if !s.IsLoggedIn || s.UserID == "" {
		return false
	}
	if s.UserRole != RoleAdmin && s.UserRole != RoleEmployee {
		return false
	}
	return s.AgreedPolicies != nil && s.CompletedTools != nil
}

// NewSession builds the session record for a freshly authenticated user.
func NewSession(u *User) *Session {
	sanitized := u.Sanitized()
	return &Session{
		IsLoggedIn:         true,
		UserID:             sanitized.ID,
		UserRole:           sanitized.Role,
		FirstName:          sanitized.FirstName,
		LastName:           sanitized.LastName,
		Email:              sanitized.Email,
		AgreedPolicies:     sanitized.AgreedPolicies,
		CompletedTools:     sanitized.CompletedTools,
		OnboardingComplete: IsOnboardingComplete(sanitized.Role, sanitized.AgreedPolicies, sanitized.CompletedTools),
	}
}
