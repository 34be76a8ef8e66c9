package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

// MaintenanceService implements maintenance calendar CRUD. Admins see the
// full history; everyone else only upcoming or ongoing windows.
type MaintenanceService struct {
	repo   ports.MaintenanceRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewMaintenanceService(repo ports.MaintenanceRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, logger: logger, now: time.Now}
}

func (s *MaintenanceService) Create(ctx context.Context, input ports.CreateMaintenanceInput) (*domain.MaintenanceEvent, error) {
	eventType := domain.MaintenanceEventType(input.Type)
	if strings.TrimSpace(input.Title) == "" || len(input.Title) > maxTitleLength || !eventType.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if input.StartDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.MaintenanceEvent{
		Title:       input.Title,
		Description: input.Description,
		StartDate:   input.StartDate.UTC(),
		EndDate:     input.EndDate,
		Type:        eventType,
		AuthorID:    input.AuthorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("event_id", created.ID).
		Str("type", string(created.Type)).
		Time("start_date", created.StartDate).
		Msg("maintenance event scheduled")
	return created, nil
}

func (s *MaintenanceService) Get(ctx context.Context, id string) (*domain.MaintenanceEvent, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MaintenanceService) List(ctx context.Context, viewerRole string) ([]*domain.MaintenanceEvent, error) {
	if viewerRole == domain.RoleAdmin {
		return s.repo.ListAll(ctx)
	}
	return s.repo.ListUpcoming(ctx, s.now().UTC())
}

func (s *MaintenanceService) Update(ctx context.Context, id string, input ports.UpdateMaintenanceInput) (*domain.MaintenanceEvent, error) {
	if input.Title == nil && input.Description == nil && input.StartDate == nil &&
		input.EndDate == nil && !input.ClearEndDate && input.Type == nil {
		return nil, domain.ErrInvalidInput
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" || len(*input.Title) > maxTitleLength {
			return nil, domain.ErrInvalidInput
		}
		existing.Title = *input.Title
	}
	if input.Description != nil {
		existing.Description = *input.Description
	}
	if input.StartDate != nil {
		start := input.StartDate.UTC()
		existing.StartDate = start
	}
	if input.ClearEndDate {
		existing.EndDate = nil
	} else if input.EndDate != nil {
		end := input.EndDate.UTC()
		existing.EndDate = &end
	}
	if input.Type != nil {
		eventType := domain.MaintenanceEventType(*input.Type)
		if !eventType.Valid() {
			return nil, domain.ErrInvalidInput
		}
		existing.Type = eventType
	}
	if existing.EndDate != nil && existing.EndDate.Before(existing.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	existing.UpdatedAt = s.now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *MaintenanceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("event_id", id).Msg("maintenance event deleted")
	return nil
}
