package http

import (
	"io"
	"net/http"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
	"github.com/mtbtransit/timeslip-backend-go/internal/handler/http/response"
)

// maxRosterSize caps the uploaded roster file at 10 MiB.
const maxRosterSize = 10 << 20

type RosterHandler interface {
	Parse(w http.ResponseWriter, r *http.Request)
}

type rosterHandlerImpl struct {
	rosterService employee.RosterService
}

func NewRosterHandler(rosterService employee.RosterService) RosterHandler {
	return &rosterHandlerImpl{
		rosterService: rosterService,
	}
}

// Parse handles POST /roster/parse
func (h *rosterHandlerImpl) Parse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No roster file uploaded")
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(file, maxRosterSize))
	if err != nil {
		response.BadRequest(w, "Could not read the roster file")
		return
	}

	employees, err := h.rosterService.Parse(ctx, fileBytes)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, employee.ParseRosterResponse{
		Employees: employees,
		Count:     len(employees),
	})
}
