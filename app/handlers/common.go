package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TejaswaniRai/MindMesh/app/usecases"
)

// respondError maps a usecase error to its JSON response. Anything that is
// not a UseCaseError is an unexpected failure.
func respondError(c echo.Context, err error) error {
	if e, ok := err.(*usecases.UseCaseError); ok {
		return c.JSON(e.Code, echo.Map{"error": e.Message})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
