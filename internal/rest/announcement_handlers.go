package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mo-adel007/quizz/internal/dashboard"
)

const announcementNotFound = "Announcement not found"

type AnnouncementHandler struct {
	m   *dashboard.Manager
	log *slog.Logger
}

func NewAnnouncementHandler(m *dashboard.Manager, log *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		m:   m,
		log: log,
	}
}

func (h *AnnouncementHandler) Register(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.ByID)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List handles GET /api/announcements
// @Summary List announcements
// @Description Returns all announcements sorted newest-first by date
// @Tags announcements
// @Produce json
// @Success 200 {array} rest.Announcement
// @Failure 500 {object} rest.Message
// @Router /api/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	list, err := h.m.Announcements(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err, announcementNotFound)
	}

	return c.JSON(http.StatusOK, Map(list, NewAnnouncement))
}

// ByID handles GET /api/announcements/:id
// @Summary Get announcement by ID
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} rest.Announcement
// @Failure 400,404,500 {object} rest.Message
// @Router /api/announcements/{id} [get]
func (h *AnnouncementHandler) ByID(c echo.Context) error {
	a, err := h.m.AnnouncementByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, h.log, err, announcementNotFound)
	}

	return c.JSON(http.StatusOK, NewAnnouncement(*a))
}

// Create handles POST /api/announcements
// @Summary Create announcement
// @Description Creates an announcement; the id is server-assigned and the
// @Description date defaults to the current time when omitted
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body rest.AnnouncementRequest true "Announcement fields"
// @Success 201 {object} rest.Announcement
// @Failure 400,500 {object} rest.Message
// @Router /api/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Message{Message: "invalid request body"})
	}

	a, err := h.m.CreateAnnouncement(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, h.log, err, announcementNotFound)
	}

	return c.JSON(http.StatusCreated, NewAnnouncement(*a))
}

// Update handles PUT /api/announcements/:id
// @Summary Update announcement
// @Description Re-validates all fields and returns the full merged record
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param announcement body rest.AnnouncementRequest true "Announcement fields"
// @Success 200 {object} rest.Announcement
// @Failure 400,404,500 {object} rest.Message
// @Router /api/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Message{Message: "invalid request body"})
	}

	a, err := h.m.UpdateAnnouncement(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return writeError(c, h.log, err, announcementNotFound)
	}

	return c.JSON(http.StatusOK, NewAnnouncement(*a))
}

// Delete handles DELETE /api/announcements/:id
// @Summary Delete announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} rest.Message
// @Failure 400,404,500 {object} rest.Message
// @Router /api/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.m.DeleteAnnouncement(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, h.log, err, announcementNotFound)
	}

	return c.JSON(http.StatusOK, Message{Message: "Announcement deleted successfully"})
}
