package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type FloorHandler struct {
	floorUsecase usecases.FloorUsecase
}

func NewFloorHandler(floorUsecase usecases.FloorUsecase) *FloorHandler {
	return &FloorHandler{floorUsecase: floorUsecase}
}

func (h *FloorHandler) GetFloors(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		floor, err := h.floorUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, floor)
	}
	return c.JSON(http.StatusOK, h.floorUsecase.GetAll())
}

func (h *FloorHandler) CreateFloor(c echo.Context) error {
	var req entities.FloorRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	floor, err := h.floorUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, floor)
}

func (h *FloorHandler) PatchFloor(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "floor id is required"})
	}

	var patch entities.FloorPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	floor, err := h.floorUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, floor)
}

func (h *FloorHandler) DeleteFloor(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "floor id is required"})
	}
	if err := h.floorUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
