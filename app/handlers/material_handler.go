package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type StudyMaterialHandler struct {
	materialUsecase usecases.StudyMaterialUsecase
}

func NewStudyMaterialHandler(materialUsecase usecases.StudyMaterialUsecase) *StudyMaterialHandler {
	return &StudyMaterialHandler{materialUsecase: materialUsecase}
}

// GetMaterials godoc
// @Summary List study materials, or fetch one with ?id=
// @Tags StudyMaterials
// @Produce json
// @Param id query string false "Material ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/study-materials [get]
func (h *StudyMaterialHandler) GetMaterials(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		material, err := h.materialUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, material)
	}
	return c.JSON(http.StatusOK, h.materialUsecase.GetAll())
}

// CreateMaterial godoc
// @Summary Record a study material without a file upload
// @Tags StudyMaterials
// @Accept json
// @Produce json
// @Param request body entities.StudyMaterialRequest true "Material"
// @Success 201 {object} entities.StudyMaterial
// @Failure 400 {object} map[string]string
// @Router /api/study-materials [post]
func (h *StudyMaterialHandler) CreateMaterial(c echo.Context) error {
	var req entities.StudyMaterialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	material, err := h.materialUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, material)
}

// UploadMaterial godoc
// @Summary Upload a study material file (pdf or image, ≤10MB)
// @Tags StudyMaterials
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param file formData file true "File"
// @Success 201 {object} entities.StudyMaterial
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/study-materials/upload [post]
func (h *StudyMaterialHandler) UploadMaterial(c echo.Context) error {
	var req entities.StudyMaterialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}

	baseURL := c.Scheme() + "://" + c.Request().Host
	material, err := h.materialUsecase.Upload(req, file, baseURL)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, material)
}

// PatchMaterial godoc
// @Summary Partially update a study material
// @Tags StudyMaterials
// @Accept json
// @Produce json
// @Param id query string true "Material ID"
// @Success 200 {object} entities.StudyMaterial
// @Failure 404 {object} map[string]string
// @Router /api/study-materials [patch]
func (h *StudyMaterialHandler) PatchMaterial(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "material id is required"})
	}

	var patch entities.StudyMaterialPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	material, err := h.materialUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, material)
}

// DeleteMaterial godoc
// @Summary Delete a study material
// @Tags StudyMaterials
// @Produce json
// @Param id query string true "Material ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/study-materials [delete]
func (h *StudyMaterialHandler) DeleteMaterial(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "material id is required"})
	}
	if err := h.materialUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
