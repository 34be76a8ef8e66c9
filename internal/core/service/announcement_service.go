package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

const maxTitleLength = 255

// AnnouncementService implements announcement CRUD with role-aware listing.
type AnnouncementService struct {
	repo   ports.AnnouncementRepository
	logger zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, logger: logger}
}

func (s *AnnouncementService) Create(ctx context.Context, input ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	if strings.TrimSpace(input.Title) == "" || len(input.Title) > maxTitleLength || strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrInvalidInput
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Announcement{
		Title:     input.Title,
		Content:   input.Content,
		IsActive:  active,
		AuthorID:  input.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("announcement_id", created.ID).Str("author_id", input.AuthorID).Msg("announcement created")
	return created, nil
}

func (s *AnnouncementService) Get(ctx context.Context, id string) (*domain.Announcement, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all announcements for admins and only active ones for
// everyone else, newest first in both cases.
func (s *AnnouncementService) List(ctx context.Context, viewerRole string) ([]*domain.Announcement, error) {
	return s.repo.List(ctx, viewerRole != domain.RoleAdmin)
}

func (s *AnnouncementService) Update(ctx context.Context, id string, input ports.UpdateAnnouncementInput) (*domain.Announcement, error) {
	if input.Title == nil && input.Content == nil && input.IsActive == nil {
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
	if input.Content != nil {
		if strings.TrimSpace(*input.Content) == "" {
			return nil, domain.ErrInvalidInput
		}
		existing.Content = *input.Content
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *AnnouncementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("announcement_id", id).Msg("announcement deleted")
	return nil
}
