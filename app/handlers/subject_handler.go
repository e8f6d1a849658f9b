package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type SubjectHandler struct {
	subjectUsecase usecases.SubjectUsecase
}

func NewSubjectHandler(subjectUsecase usecases.SubjectUsecase) *SubjectHandler {
	return &SubjectHandler{subjectUsecase: subjectUsecase}
}

// GetSubjects godoc
// @Summary List subjects, or fetch one with ?id=
// @Tags Subjects
// @Produce json
// @Param id query string false "Subject ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/subjects [get]
func (h *SubjectHandler) GetSubjects(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		subject, err := h.subjectUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, subject)
	}
	return c.JSON(http.StatusOK, h.subjectUsecase.GetAll())
}

// CreateSubject godoc
// @Summary Create a subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param request body entities.SubjectRequest true "Subject"
// @Success 201 {object} entities.Subject
// @Failure 400 {object} map[string]string
// @Router /api/subjects [post]
func (h *SubjectHandler) CreateSubject(c echo.Context) error {
	var req entities.SubjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	subject, err := h.subjectUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, subject)
}

// PatchSubject godoc
// @Summary Partially update a subject
// @Tags Subjects
// @Accept json
// @Produce json
// @Param id query string true "Subject ID"
// @Success 200 {object} entities.Subject
// @Failure 404 {object} map[string]string
// @Router /api/subjects [patch]
func (h *SubjectHandler) PatchSubject(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject id is required"})
	}

	var patch entities.SubjectPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	subject, err := h.subjectUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary Delete a subject
// @Tags Subjects
// @Produce json
// @Param id query string true "Subject ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/subjects [delete]
func (h *SubjectHandler) DeleteSubject(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "subject id is required"})
	}
	if err := h.subjectUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
