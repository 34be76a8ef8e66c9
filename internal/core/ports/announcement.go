package ports

import (
	"context"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// AnnouncementRepository defines persistence for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	FindByID(ctx context.Context, id string) (*domain.Announcement, error)
	// List returns announcements newest first. When activeOnly is set only
	// active records are returned.
	List(ctx context.Context, activeOnly bool) ([]*domain.Announcement, error)
	Update(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}

// CreateAnnouncementInput carries a new announcement. IsActive defaults to
// true when nil.
type CreateAnnouncementInput struct {
	Title    string
	Content  string
	IsActive *bool
	AuthorID string
}

// UpdateAnnouncementInput carries a partial update; nil fields are left
// untouched.
type UpdateAnnouncementInput struct {
	Title    *string
	Content  *string
	IsActive *bool
}

// AnnouncementService defines announcement use cases. List filters by the
// viewer's role: admins see everything, everyone else only active notices.
type AnnouncementService interface {
	Create(ctx context.Context, input CreateAnnouncementInput) (*domain.Announcement, error)
	Get(ctx context.Context, id string) (*domain.Announcement, error)
	List(ctx context.Context, viewerRole string) ([]*domain.Announcement, error)
	Update(ctx context.Context, id string, input UpdateAnnouncementInput) (*domain.Announcement, error)
	Delete(ctx context.Context, id string) error
}
