package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type TeacherHandler struct {
	teacherUsecase usecases.TeacherUsecase
}

func NewTeacherHandler(teacherUsecase usecases.TeacherUsecase) *TeacherHandler {
	return &TeacherHandler{teacherUsecase: teacherUsecase}
}

// GetTeachers godoc
// @Summary List teachers, or fetch one with ?id=
// @Tags Faculty
// @Produce json
// @Param id query string false "Teacher ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/teachers [get]
func (h *TeacherHandler) GetTeachers(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		teacher, err := h.teacherUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, teacher)
	}
	return c.JSON(http.StatusOK, h.teacherUsecase.GetAll())
}

// CreateTeacher godoc
// @Summary Create a teacher
// @Tags Faculty
// @Accept json
// @Produce json
// @Param request body entities.TeacherRequest true "Teacher"
// @Success 201 {object} entities.Teacher
// @Failure 400 {object} map[string]string
// @Router /api/teachers [post]
func (h *TeacherHandler) CreateTeacher(c echo.Context) error {
	var req entities.TeacherRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	teacher, err := h.teacherUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, teacher)
}

// PatchTeacher godoc
// @Summary Partially update a teacher
// @Tags Faculty
// @Accept json
// @Produce json
// @Param id query string true "Teacher ID"
// @Success 200 {object} entities.Teacher
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/teachers [patch]
func (h *TeacherHandler) PatchTeacher(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "teacher id is required"})
	}

	var patch entities.TeacherPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	teacher, err := h.teacherUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, teacher)
}

// DeleteTeacher godoc
// @Summary Delete a teacher
// @Tags Faculty
// @Produce json
// @Param id query string true "Teacher ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/teachers [delete]
func (h *TeacherHandler) DeleteTeacher(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "teacher id is required"})
	}
	if err := h.teacherUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
