package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type AnnouncementHandler struct {
	announcementUsecase usecases.AnnouncementUsecase
}

func NewAnnouncementHandler(announcementUsecase usecases.AnnouncementUsecase) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUsecase: announcementUsecase}
}

// GetAnnouncements godoc
// @Summary List announcements newest first, or fetch one with ?id=
// @Tags Announcements
// @Produce json
// @Param id query string false "Announcement ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/announcements [get]
func (h *AnnouncementHandler) GetAnnouncements(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		announcement, err := h.announcementUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, announcement)
	}
	return c.JSON(http.StatusOK, h.announcementUsecase.GetAll())
}

// CreateAnnouncement godoc
// @Summary Publish an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param request body entities.AnnouncementRequest true "Announcement"
// @Success 201 {object} entities.Announcement
// @Failure 400 {object} map[string]string
// @Router /api/announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req entities.AnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	announcement, err := h.announcementUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, announcement)
}

// PatchAnnouncement godoc
// @Summary Partially update an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id query string true "Announcement ID"
// @Success 200 {object} entities.Announcement
// @Failure 404 {object} map[string]string
// @Router /api/announcements [patch]
func (h *AnnouncementHandler) PatchAnnouncement(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "announcement id is required"})
	}

	var patch entities.AnnouncementPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	announcement, err := h.announcementUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Produce json
// @Param id query string true "Announcement ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/announcements [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "announcement id is required"})
	}
	if err := h.announcementUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// AddReply godoc
// @Summary Add a reply to an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body entities.ReplyRequest true "Reply"
// @Success 201 {object} entities.Reply
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/announcements/{id}/replies [post]
func (h *AnnouncementHandler) AddReply(c echo.Context) error {
	var req entities.ReplyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	reply, err := h.announcementUsecase.AddReply(c.Param("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, reply)
}

// GetReplies godoc
// @Summary List replies of an announcement
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/announcements/{id}/replies [get]
func (h *AnnouncementHandler) GetReplies(c echo.Context) error {
	replies, err := h.announcementUsecase.GetReplies(c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, replies)
}
