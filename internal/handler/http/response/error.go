package response

import (
	"errors"
	"net/http"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
	"github.com/mtbtransit/timeslip-backend-go/internal/pkg/dates"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	// Roster domain errors
	case errors.Is(err, employee.ErrUnreadableRoster):
		BadRequest(w, "Could not read the roster file")

	// Slip domain errors
	case errors.Is(err, overtime.ErrMissingEmployees):
		BadRequest(w, "No employees provided")
	case errors.Is(err, overtime.ErrMissingPayPeriodEnd):
		BadRequest(w, "No pay period ending date provided")
	case errors.Is(err, overtime.ErrEndingDateNotBoundary):
		BadRequest(w, "Pay period ending date must be a Saturday")
	case errors.Is(err, overtime.ErrNoOvertimeEntries):
		BadRequest(w, "No employee has overtime entries")
	case errors.Is(err, dates.ErrUnparseable):
		BadRequest(w, "Unrecognized date format")
	case errors.Is(err, overtime.ErrNoSlipsProduced):
		InternalServerError(w, "No slips could be produced")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
