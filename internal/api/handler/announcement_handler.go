package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inuaai/onboarding-portal/internal/core/domain"
	"github.com/inuaai/onboarding-portal/internal/core/ports"
)

type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

type createAnnouncementRequest struct {
	Title    string `json:"title"    validate:"required,max=255"`
	Content  string `json:"content"  validate:"required"`
	IsActive *bool  `json:"isActive"`
}

type updateAnnouncementRequest struct {
	Title    *string `json:"title"    validate:"omitempty,max=255"`
	Content  *string `json:"content"`
	IsActive *bool   `json:"isActive"`
}

type announcementListResponse struct {
	Announcements []*domain.Announcement `json:"announcements"`
}

// List returns announcements for the current viewer. Admins see every
// record; everyone else only active notices.
//
// @Summary      List announcements
// @Tags         announcements
// @Produce      json
// @Success      200   {object}  announcementListResponse
// @Router       /announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.service.List(c.Request().Context(), ctxRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcementListResponse{Announcements: announcements})
}

// Get returns a single announcement by id.
//
// @Summary      Get an announcement
// @Tags         announcements
// @Produce      json
// @Param        id  path  string  true  "Announcement id"
// @Success      200   {object}  domain.Announcement
// @Failure      404   {object}  errorResponse
// @Router       /announcements/{id} [get]
func (h *AnnouncementHandler) Get(c echo.Context) error {
	announcement, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}

// Create publishes a new announcement. Admin only.
//
// @Summary      Create an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAnnouncementRequest  true  "Announcement"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.service.Create(c.Request().Context(), ports.CreateAnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: req.IsActive,
		AuthorID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, announcement)
}

// Update partially updates an announcement. Admin only.
//
// @Summary      Update an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Announcement id"
// @Param        body  body      updateAnnouncementRequest  true  "Fields to change"
// @Success      200   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req updateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	announcement, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateAnnouncementInput{
		Title:    req.Title,
		Content:  req.Content,
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcement)
}

// Delete removes an announcement. Admin only.
//
// @Summary      Delete an announcement
// @Tags         announcements
// @Security     BearerAuth
// @Param        id  path  string  true  "Announcement id"
// @Success      204
// @Failure      404   {object}  errorResponse
// @Router       /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
