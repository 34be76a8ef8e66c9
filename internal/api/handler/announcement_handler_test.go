package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/api/middleware"
	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type stubAnnouncementService struct {
	createFn func(ctx context.Context, input ports.CreateAnnouncementInput) (*domain.Announcement, error)
	getFn    func(ctx context.Context, id string) (*domain.Announcement, error)
	listFn   func(ctx context.Context, viewerRole string) ([]*domain.Announcement, error)
	updateFn func(ctx context.Context, id string, input ports.UpdateAnnouncementInput) (*domain.Announcement, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubAnnouncementService) Create(ctx context.Context, input ports.CreateAnnouncementInput) (*domain.Announcement, error) {
	return s.createFn(ctx, input)
}

func (s *stubAnnouncementService) Get(ctx context.Context, id string) (*domain.Announcement, error) {
	return s.getFn(ctx, id)
}

func (s *stubAnnouncementService) List(ctx context.Context, viewerRole string) ([]*domain.Announcement, error) {
	return s.listFn(ctx, viewerRole)
}

func (s *stubAnnouncementService) Update(ctx context.Context, id string, input ports.UpdateAnnouncementInput) (*domain.Announcement, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubAnnouncementService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestAnnouncementHandler_List_PassesViewerRole(t *testing.T) {
	var gotRole string
	stub := &stubAnnouncementService{
		listFn: func(_ context.Context, viewerRole string) ([]*domain.Announcement, error) {
			gotRole = viewerRole
			return []*domain.Announcement{{ID: "ann_1", Title: "hello"}}, nil
		},
	}
	handler := NewAnnouncementHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/announcements", "")
	c.Set(middleware.CtxUserRole, domain.RoleAdmin)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotRole != domain.RoleAdmin {
		t.Fatalf("viewer role not forwarded, got %q", gotRole)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["announcements"].([]any); !ok {
		t.Fatalf("expected announcements list, got %+v", resp)
	}
}

func TestAnnouncementHandler_List_AnonymousRole(t *testing.T) {
	var gotRole string
	stub := &stubAnnouncementService{
		listFn: func(_ context.Context, viewerRole string) ([]*domain.Announcement, error) {
			gotRole = viewerRole
			return nil, nil
		},
	}
	handler := NewAnnouncementHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/announcements", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotRole != "" {
		t.Fatalf("anonymous viewer must carry an empty role, got %q", gotRole)
	}
}

func TestAnnouncementHandler_Create(t *testing.T) {
	stub := &stubAnnouncementService{
		createFn: func(_ context.Context, input ports.CreateAnnouncementInput) (*domain.Announcement, error) {
			if input.AuthorID != "admin_1" || input.Title != "Welcome" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Announcement{ID: "ann_1", Title: input.Title, Content: input.Content, IsActive: true}, nil
		},
	}
	handler := NewAnnouncementHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/announcements", `{"title":"Welcome","content":"First day info"}`)
	c.Set(middleware.CtxUserID, "admin_1")
	c.Set(middleware.CtxUserRole, domain.RoleAdmin)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAnnouncementHandler_Create_MissingIdentity(t *testing.T) {
	stub := &stubAnnouncementService{
		createFn: func(_ context.Context, _ ports.CreateAnnouncementInput) (*domain.Announcement, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAnnouncementHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/announcements", `{"title":"t","content":"c"}`)
	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAnnouncementHandler_Delete_NotFound(t *testing.T) {
	stub := &stubAnnouncementService{
		deleteFn: func(_ context.Context, _ string) error {
			return domain.ErrAnnouncementNotFound
		},
	}
	handler := NewAnnouncementHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/announcements/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := handler.Delete(c); !errors.Is(err, domain.ErrAnnouncementNotFound) {
		t.Fatalf("expected ErrAnnouncementNotFound to propagate, got %v", err)
	}
}
