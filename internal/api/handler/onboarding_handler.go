package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/api/metrics"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type OnboardingHandler struct {
	service ports.OnboardingService
}

func NewOnboardingHandler(service ports.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

type startOnboardingRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN EMPLOYEE"`
}

type onboardingProgressResponse struct {
	DraftID        string   `json:"draftId"`
	Role           string   `json:"role"`
	AgreedPolicies []string `json:"agreedPolicies"`
	CompletedTools []string `json:"completedTools"`
	PoliciesAgreed int      `json:"policiesAgreed"`
	PoliciesTotal  int      `json:"policiesTotal"`
	ToolsCompleted int      `json:"toolsCompleted"`
	ToolsTotal     int      `json:"toolsTotal"`
	IsComplete     bool     `json:"isComplete"`
}

func toProgressResponse(p *ports.OnboardingProgress) onboardingProgressResponse {
	return onboardingProgressResponse{
		DraftID:        p.DraftID,
		Role:           p.Role,
		AgreedPolicies: p.AgreedPolicies,
		CompletedTools: p.CompletedTools,
		PoliciesAgreed: p.PoliciesAgreed,
		PoliciesTotal:  p.PoliciesTotal,
		ToolsCompleted: p.ToolsCompleted,
		ToolsTotal:     p.ToolsTotal,
		IsComplete:     p.IsComplete,
	}
}

// Start opens a new onboarding draft for the given role.
//
// @Summary      Start an onboarding draft
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Param        body  body      startOnboardingRequest  true  "Onboarding role"
// @Success      201   {object}  onboardingProgressResponse
// @Failure      400   {object}  errorResponse
// @Router       /onboarding [post]
func (h *OnboardingHandler) Start(c echo.Context) error {
	var req startOnboardingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	progress, err := h.service.Start(c.Request().Context(), req.Role)
	if err != nil {
		return err
	}

	metrics.OnboardingDraftsStartedTotal.WithLabelValues(req.Role).Inc()
	return c.JSON(http.StatusCreated, toProgressResponse(progress))
}

// Progress returns the current state of a draft.
//
// @Summary      Get onboarding progress
// @Tags         onboarding
// @Produce      json
// @Param        id  path  string  true  "Draft id"
// @Success      200   {object}  onboardingProgressResponse
// @Failure      404   {object}  errorResponse
// @Router       /onboarding/{id} [get]
func (h *OnboardingHandler) Progress(c echo.Context) error {
	progress, err := h.service.Progress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgressResponse(progress))
}

// AgreePolicy records a policy agreement on the draft. Idempotent.
//
// @Summary      Agree to a policy
// @Tags         onboarding
// @Produce      json
// @Param        id        path  string  true  "Draft id"
// @Param        policyId  path  string  true  "Policy catalog id"
// @Success      200   {object}  onboardingProgressResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /onboarding/{id}/policies/{policyId} [post]
func (h *OnboardingHandler) AgreePolicy(c echo.Context) error {
	progress, err := h.service.AgreePolicy(c.Request().Context(), c.Param("id"), c.Param("policyId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgressResponse(progress))
}

// CompleteTool records a tool-setup check on the draft. Idempotent.
//
// @Summary      Check off a setup tool
// @Tags         onboarding
// @Produce      json
// @Param        id      path  string  true  "Draft id"
// @Param        toolId  path  string  true  "Tool catalog id"
// @Success      200   {object}  onboardingProgressResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /onboarding/{id}/tools/{toolId} [post]
func (h *OnboardingHandler) CompleteTool(c echo.Context) error {
	progress, err := h.service.CompleteTool(c.Request().Context(), c.Param("id"), c.Param("toolId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProgressResponse(progress))
}
