package domain

import (
	"strings"
	"time"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User models an identity in the portal. Employees authenticate with a
// (firstName, lastName) pair plus a numeric id-number secret; admins
// authenticate with email and password. Hash fields never leave the server.
type User struct {
	ID             string    `json:"id"`
	Role           string    `json:"role"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	Email          string    `json:"email,omitempty"`
	IDNumberHash   string    `json:"-"`
	PasswordHash   string    `json:"-"`
	AgreedPolicies []string  `json:"agreedPolicies"`
	CompletedTools []string  `json:"completedTools"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to clients: hashes cleared and the
// policy/tool sets never nil.
func (u *User) Sanitized() *User {
	clone := *u
	clone.IDNumberHash = ""
	clone.PasswordHash = ""
	if clone.AgreedPolicies == nil {
		clone.AgreedPolicies = []string{}
	}
	if clone.CompletedTools == nil {
		clone.CompletedTools = []string{}
	}
	return &clone
}

// NameKey normalizes a first/last name pair for employee identity matching:
// employees are unique by the case-insensitive, trimmed pair.
func NameKey(firstName, lastName string) (string, string) {
	return strings.ToLower(strings.TrimSpace(firstName)), strings.ToLower(strings.TrimSpace(lastName))
}

// SameName reports whether the user's name matches the given pair under the
// case-insensitive trimmed comparison.
func (u *User) SameName(firstName, lastName string) bool {
	f1, l1 := NameKey(u.FirstName, u.LastName)
	f2, l2 := NameKey(firstName, lastName)
	return f1 == f2 && l1 == l2
}
