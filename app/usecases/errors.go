package usecases

import "net/http"

// UseCaseError carries the HTTP status code the handler should answer with.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}

// Booking failures, in the order the booking flow checks them. Handlers and
// callers branch on these values.
var (
	ErrMissingFields   = &UseCaseError{Code: http.StatusBadRequest, Message: "missing required fields"}
	ErrInvalidDate     = &UseCaseError{Code: http.StatusBadRequest, Message: "invalid date format, use YYYY-MM-DD"}
	ErrInvalidTimeSlot = &UseCaseError{Code: http.StatusBadRequest, Message: "invalid time slot"}
	ErrPastOrWeekend   = &UseCaseError{Code: http.StatusBadRequest, Message: "invalid booking date, must be a future weekday"}
	ErrStaffRoom       = &UseCaseError{Code: http.StatusConflict, Message: "this room is reserved for the teachers department"}
	ErrRecurringClass  = &UseCaseError{Code: http.StatusConflict, Message: "room is unavailable due to regular classes at this time"}
	ErrAlreadyBooked   = &UseCaseError{Code: http.StatusConflict, Message: "room is already booked for this time slot on the selected date"}
)

func notFound(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusNotFound, Message: message}
}

func badRequest(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: message}
}
