package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type RoomHandler struct {
	roomUsecase usecases.RoomUsecase
}

func NewRoomHandler(roomUsecase usecases.RoomUsecase) *RoomHandler {
	return &RoomHandler{roomUsecase: roomUsecase}
}

// GetRooms godoc
// @Summary List rooms, or fetch one with ?id=
// @Tags Rooms
// @Produce json
// @Param id query string false "Room ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/rooms [get]
func (h *RoomHandler) GetRooms(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		room, err := h.roomUsecase.GetByID(id)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(http.StatusOK, room)
	}
	return c.JSON(http.StatusOK, h.roomUsecase.GetAll())
}

// CreateRoom godoc
// @Summary Create a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param request body entities.RoomRequest true "Room"
// @Success 201 {object} entities.Room
// @Failure 400 {object} map[string]string
// @Router /api/rooms [post]
func (h *RoomHandler) CreateRoom(c echo.Context) error {
	var req entities.RoomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	room, err := h.roomUsecase.Create(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// PatchRoom godoc
// @Summary Partially update a room
// @Tags Rooms
// @Accept json
// @Produce json
// @Param id query string true "Room ID"
// @Success 200 {object} entities.Room
// @Failure 404 {object} map[string]string
// @Router /api/rooms [patch]
func (h *RoomHandler) PatchRoom(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room id is required"})
	}

	var patch entities.RoomPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}

	room, err := h.roomUsecase.Update(id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Tags Rooms
// @Produce json
// @Param id query string true "Room ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/rooms [delete]
func (h *RoomHandler) DeleteRoom(c echo.Context) error {
	id := c.QueryParam("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room id is required"})
	}
	if err := h.roomUsecase.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
