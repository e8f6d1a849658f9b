package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/entities"
	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

type ScheduleHandler struct {
	scheduleUsecase usecases.ScheduleUsecase
}

func NewScheduleHandler(scheduleUsecase usecases.ScheduleUsecase) *ScheduleHandler {
	return &ScheduleHandler{scheduleUsecase: scheduleUsecase}
}

// GetSchedule godoc
// @Summary Get the effective schedule for a date
// @Description Merge of the recurring weekly timetable and ad-hoc bookings for one date. Defaults to today.
// @Tags Schedule
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/schedule [get]
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = h.scheduleUsecase.Today()
	}

	schedule, err := h.scheduleUsecase.EffectiveSchedule(date)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
	return c.JSON(http.StatusOK, schedule)
}

// CreateBooking godoc
// @Summary Book a room for one time slot on a date
// @Description Validates against staff rooms, recurring classes and existing bookings before committing.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body entities.BookingRequest true "Booking request"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/schedule [post]
func (h *ScheduleHandler) CreateBooking(c echo.Context) error {
	var req entities.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request format"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(usecases.ErrMissingFields.Code, echo.Map{"error": usecases.ErrMissingFields.Message})
	}

	data, err := h.scheduleUsecase.Book(req)
	if err != nil {
		if e, ok := err.(*usecases.UseCaseError); ok {
			return c.JSON(e.Code, echo.Map{"error": e.Message})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    data,
	})
}
