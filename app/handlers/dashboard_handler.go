package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type DashboardHandler struct {
	dashboardUsecase usecases.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUsecase: dashboardUsecase}
}

// GetDashboard godoc
// @Summary Room occupancy summary for a date at the current time slot
// @Tags Dashboard
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	data, err := h.dashboardUsecase.GetDashboard(c.QueryParam("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": "success",
		"data":    data,
	})
}
