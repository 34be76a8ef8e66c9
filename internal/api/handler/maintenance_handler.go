package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type MaintenanceHandler struct {
	service ports.MaintenanceService
}

func NewMaintenanceHandler(service ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

type createMaintenanceRequest struct {
	Title       string     `json:"title"       validate:"required,max=255"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"   validate:"required"`
	EndDate     *time.Time `json:"endDate"`
	Type        string     `json:"type"        validate:"required,oneof=PREVENTIVE_MAINTENANCE REGULAR_UPDATE EMERGENCY_MAINTENANCE SERVICE_DEPLOYMENT"`
}

type updateMaintenanceRequest struct {
	Title        *string    `json:"title"        validate:"omitempty,max=255"`
	Description  *string    `json:"description"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	ClearEndDate bool       `json:"clearEndDate"`
	Type         *string    `json:"type"         validate:"omitempty,oneof=PREVENTIVE_MAINTENANCE REGULAR_UPDATE EMERGENCY_MAINTENANCE SERVICE_DEPLOYMENT"`
}

type maintenanceListResponse struct {
	Events []*domain.MaintenanceEvent `json:"events"`
}

// List returns maintenance events for the current viewer. Admins get the
// full history newest first; everyone else the upcoming calendar soonest
// first.
//
// @Summary      List maintenance events
// @Tags         maintenance
// @Produce      json
// @Success      200   {object}  maintenanceListResponse
// @Router       /maintenance [get]
func (h *MaintenanceHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context(), ctxRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, maintenanceListResponse{Events: events})
}

// Get returns a single maintenance event by id.
//
// @Summary      Get a maintenance event
// @Tags         maintenance
// @Produce      json
// @Param        id  path  string  true  "Event id"
// @Success      200   {object}  domain.MaintenanceEvent
// @Failure      404   {object}  errorResponse
// @Router       /maintenance/{id} [get]
func (h *MaintenanceHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Create schedules a new maintenance event. Admin only.
//
// @Summary      Schedule a maintenance event
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createMaintenanceRequest  true  "Maintenance event"
// @Success      201   {object}  domain.MaintenanceEvent
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /maintenance [post]
func (h *MaintenanceHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.service.Create(c.Request().Context(), ports.CreateMaintenanceInput{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
		AuthorID:    userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Update partially updates a maintenance event. Admin only.
//
// @Summary      Update a maintenance event
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Event id"
// @Param        body  body      updateMaintenanceRequest  true  "Fields to change"
// @Success      200   {object}  domain.MaintenanceEvent
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /maintenance/{id} [put]
func (h *MaintenanceHandler) Update(c echo.Context) error {
	var req updateMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateMaintenanceInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		ClearEndDate: req.ClearEndDate,
		Type:         req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// Delete removes a maintenance event. Admin only.
//
// @Summary      Delete a maintenance event
// @Tags         maintenance
// @Security     BearerAuth
// @Param        id  path  string  true  "Event id"
// @Success      204
// @Failure      404   {object}  errorResponse
// @Router       /maintenance/{id} [delete]
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
