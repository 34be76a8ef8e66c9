package handler

import (
	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// loginRequest accepts either credential shape: employees send firstName,
// lastName and idNumber; admins send email and password. Which path applies
// is decided server side from the populated fields.
type loginRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IDNumber  string `json:"idNumber"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password"`
}

type registerRequest struct {
	FirstName             string   `json:"firstName"             validate:"required"`
	LastName              string   `json:"lastName"              validate:"required"`
	IDNumber              string   `json:"idNumber"              validate:"required,idnumber"`
	UserRole              string   `json:"userRole"              validate:"required"`
	CurrentAgreedPolicies []string `json:"currentAgreedPolicies" validate:"required,min=1"`
	CurrentCompletedTools []string `json:"currentCompletedTools" validate:"required,min=1"`
}

// authResponse is returned on successful login and registration. The token
// carries the session id; hashes are already stripped from the user.
type authResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

type sessionResponse struct {
	Session *domain.Session `json:"session"`
}
