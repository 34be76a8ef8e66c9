package domain

import "errors"

var ErrInvalidInput = errors.New("invalid input")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrDuplicateName = errors.New("user with this first and last name already exists")
var ErrDuplicateSecret = errors.New("password already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrAnnouncementNotFound = errors.New("announcement not found")
var ErrMaintenanceEventNotFound = errors.New("maintenance event not found")
var ErrDraftNotFound = errors.New("onboarding draft not found")
var ErrSessionNotFound = errors.New("session not found")
var ErrUnknownCatalogID = errors.New("unknown catalog id")
var ErrForbidden = errors.New("access forbidden")
