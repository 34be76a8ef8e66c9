package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type employeeOverviewResponse struct {
	*domain.User
	OnboardingComplete bool `json:"onboardingComplete"`
}

type employeeListResponse struct {
	Employees []employeeOverviewResponse `json:"employees"`
}

type loginAttemptListResponse struct {
	Attempts []*domain.LoginAttempt `json:"attempts"`
}

// ListEmployees returns the employee roster with onboarding state.
//
// @Summary      List employees
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  employeeListResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListEmployees(c echo.Context) error {
	overviews, err := h.service.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}

	employees := make([]employeeOverviewResponse, 0, len(overviews))
	for _, o := range overviews {
		employees = append(employees, employeeOverviewResponse{
			User:               o.User,
			OnboardingComplete: o.OnboardingComplete,
		})
	}
	return c.JSON(http.StatusOK, employeeListResponse{Employees: employees})
}

// DeleteUser removes a user account. Admins cannot delete themselves.
//
// @Summary      Delete a user
// @Tags         admin
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteUser(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListLoginAttempts returns the most recent login audit records.
//
// @Summary      List login attempts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  loginAttemptListResponse
// @Failure      401   {object}  errorResponse
// @Router       /admin/login-attempts [get]
func (h *AdminHandler) ListLoginAttempts(c echo.Context) error {
	attempts, err := h.service.ListLoginAttempts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, loginAttemptListResponse{Attempts: attempts})
}
