package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type StudentHandler struct {
	studentUsecase usecases.StudentUsecase
}

func NewStudentHandler(studentUsecase usecases.StudentUsecase) *StudentHandler {
	return &StudentHandler{studentUsecase: studentUsecase}
}

// GetStudents godoc
// @Summary List students, or fetch one with ?id=
// @Tags Students
// @Produce json
// @Param id query string false "Student ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/students [get]
func (h *StudentHandler) GetStudents(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		student, err := h.studentUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, student)
	}
	return c.JSON(http.StatusOK, h.studentUsecase.GetAll())
}

// CreateStudent godoc
// @Summary Create a student
// @Tags Students
// @Accept json
// @Produce json
// @Param request body entities.StudentRequest true "Student"
// @Success 201 {object} entities.Student
// @Failure 400 {object} map[string]string
// @Router /api/students [post]
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	var req entities.StudentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	student, err := h.studentUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, student)
}

// PatchStudent godoc
// @Summary Partially update a student
// @Tags Students
// @Accept json
// @Produce json
// @Param id query string true "Student ID"
// @Success 200 {object} entities.Student
// @Failure 404 {object} map[string]string
// @Router /api/students [patch]
func (h *StudentHandler) PatchStudent(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "student id is required"})
	}

	var patch entities.StudentPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	student, err := h.studentUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, student)
}

// DeleteStudent godoc
// @Summary Delete a student
// @Tags Students
// @Produce json
// @Param id query string true "Student ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/students [delete]
func (h *StudentHandler) DeleteStudent(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "student id is required"})
	}
	if err := h.studentUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
