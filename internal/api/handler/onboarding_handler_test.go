package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type stubOnboardingService struct {
	startFn    func(ctx context.Context, role string) (*ports.OnboardingProgress, error)
	agreeFn    func(ctx context.Context, draftID, policyID string) (*ports.OnboardingProgress, error)
	completeFn func(ctx context.Context, draftID, toolID string) (*ports.OnboardingProgress, error)
	progressFn func(ctx context.Context, draftID string) (*ports.OnboardingProgress, error)
}

func (s *stubOnboardingService) Start(ctx context.Context, role string) (*ports.OnboardingProgress, error) {
	return s.startFn(ctx, role)
}

func (s *stubOnboardingService) AgreePolicy(ctx context.Context, draftID, policyID string) (*ports.OnboardingProgress, error) {
	return s.agreeFn(ctx, draftID, policyID)
}

func (s *stubOnboardingService) CompleteTool(ctx context.Context, draftID, toolID string) (*ports.OnboardingProgress, error) {
	return s.completeFn(ctx, draftID, toolID)
}

func (s *stubOnboardingService) Progress(ctx context.Context, draftID string) (*ports.OnboardingProgress, error) {
	return s.progressFn(ctx, draftID)
}

func TestOnboardingHandler_Start(t *testing.T) {
	stub := &stubOnboardingService{
		startFn: func(_ context.Context, role string) (*ports.OnboardingProgress, error) {
			if role != domain.RoleEmployee {
				t.Fatalf("unexpected role: %s", role)
			}
			return &ports.OnboardingProgress{
				DraftID:        "draft_1",
				Role:           role,
				AgreedPolicies: []string{},
				CompletedTools: []string{},
				PoliciesTotal:  17,
				ToolsTotal:     3,
			}, nil
		},
	}
	handler := NewOnboardingHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/onboarding", `{"role":"EMPLOYEE"}`)
	if err := handler.Start(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["draftId"] != "draft_1" || resp["isComplete"] != false {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestOnboardingHandler_Start_UnknownRole(t *testing.T) {
	stub := &stubOnboardingService{
		startFn: func(_ context.Context, _ string) (*ports.OnboardingProgress, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOnboardingHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/onboarding", `{"role":"ROOT"}`)
	err := handler.Start(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestOnboardingHandler_AgreePolicy(t *testing.T) {
	stub := &stubOnboardingService{
		agreeFn: func(_ context.Context, draftID, policyID string) (*ports.OnboardingProgress, error) {
			if draftID != "draft_1" || policyID != "m1p1" {
				t.Fatalf("unexpected params: %s %s", draftID, policyID)
			}
			return &ports.OnboardingProgress{DraftID: draftID, PoliciesAgreed: 1}, nil
		},
	}
	handler := NewOnboardingHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/onboarding/draft_1/policies/m1p1", "")
	c.SetParamNames("id", "policyId")
	c.SetParamValues("draft_1", "m1p1")
	if err := handler.AgreePolicy(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOnboardingHandler_CompleteTool_UnknownID(t *testing.T) {
	stub := &stubOnboardingService{
		completeFn: func(_ context.Context, _, _ string) (*ports.OnboardingProgress, error) {
			return nil, domain.ErrUnknownCatalogID
		},
	}
	handler := NewOnboardingHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/onboarding/draft_1/tools/bogus", "")
	c.SetParamNames("id", "toolId")
	c.SetParamValues("draft_1", "bogus")
	if err := handler.CompleteTool(c); !errors.Is(err, domain.ErrUnknownCatalogID) {
		t.Fatalf("expected ErrUnknownCatalogID to propagate, got %v", err)
	}
}

func TestOnboardingHandler_Progress_NotFound(t *testing.T) {
	stub := &stubOnboardingService{
		progressFn: func(_ context.Context, _ string) (*ports.OnboardingProgress, error) {
			return nil, domain.ErrDraftNotFound
		},
	}
	handler := NewOnboardingHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/onboarding/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := handler.Progress(c); !errors.Is(err, domain.ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound to propagate, got %v", err)
	}
}
