package ports

import (
	"context"
	"time"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
)

// MaintenanceRepository defines persistence for maintenance events.
type MaintenanceRepository interface {
	Create(ctx context.Context, e *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error)
	FindByID(ctx context.Context, id string) (*domain.MaintenanceEvent, error)
	// ListAll returns every event, most recent start date first.
	ListAll(ctx context.Context) ([]*domain.MaintenanceEvent, error)
	// ListUpcoming returns events still relevant at now, soonest first.
	ListUpcoming(ctx context.Context, now time.Time) ([]*domain.MaintenanceEvent, error)
	Update(ctx context.Context, e *domain.MaintenanceEvent) (*domain.MaintenanceEvent, error)
	Delete(ctx context.Context, id string) error
}

// CreateMaintenanceInput carries a new maintenance event.
type CreateMaintenanceInput struct {
	Title       string
	Description string
	StartDate   time.Time
	EndDate     *time.Time
	Type        string
	AuthorID    string
}

// UpdateMaintenanceInput carries a partial update; nil fields are left
// untouched. ClearEndDate removes an existing end date.
type UpdateMaintenanceInput struct {
	Title        *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Type         *string
}

// MaintenanceService defines maintenance calendar use cases.
type MaintenanceService interface {
	Create(ctx context.Context, input CreateMaintenanceInput) (*domain.MaintenanceEvent, error)
	Get(ctx context.Context, id string) (*domain.MaintenanceEvent, error)
	List(ctx context.Context, viewerRole string) ([]*domain.MaintenanceEvent, error)
	Update(ctx context.Context, id string, input UpdateMaintenanceInput) (*domain.MaintenanceEvent, error)
	Delete(ctx context.Context, id string) error
}
