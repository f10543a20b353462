package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
	"github.com/mtbtransit/timeslip-backend-go/internal/handler/http/response"
)

type SlipHandler interface {
	GenerateBlank(w http.ResponseWriter, r *http.Request)
	GenerateOvertime(w http.ResponseWriter, r *http.Request)
}

type slipHandlerImpl struct {
	slipService overtime.SlipService
}

func NewSlipHandler(slipService overtime.SlipService) SlipHandler {
	return &slipHandlerImpl{
		slipService: slipService,
	}
}

// GenerateBlank handles POST /slips/blank. The composed document is
// returned directly as a download.
func (h *slipHandlerImpl) GenerateBlank(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req overtime.GenerateBlankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	batch, err := h.slipService.GenerateBlank(ctx, req.Employees, req.PayPeriodEnd)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", batch.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(batch.Document)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(batch.Document)
}

// GenerateOvertime handles POST /slips/overtime. Both artifacts travel
// base64-encoded in one JSON body.
func (h *slipHandlerImpl) GenerateOvertime(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req overtime.GenerateOvertimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	bundle, err := h.slipService.GenerateOvertime(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.JSON(w, overtime.GenerateOvertimeResponse{
		Document:         base64.StdEncoding.EncodeToString(bundle.Document),
		DocumentFilename: bundle.DocumentFilename,
		Report:           base64.StdEncoding.EncodeToString(bundle.Report),
		ReportFilename:   bundle.ReportFilename,
	})
}
