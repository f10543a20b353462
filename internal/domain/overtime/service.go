package overtime

import (
	"context"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
)

// SlipService composes filled slip pages and merges them into one document.
type SlipService interface {
	// GenerateBlank fills identity fields only, one page per employee.
	GenerateBlank(ctx context.Context, employees []employee.Employee, payPeriodEnd string) (SlipBatch, error)

	// GenerateOvertime fills slips for the employees with qualifying
	// entries and builds the companion summary workbook.
	GenerateOvertime(ctx context.Context, req GenerateOvertimeRequest) (OvertimeBundle, error)
}

// ReportService builds the tabular overtime summary workbook.
type ReportService interface {
	BuildSummary(ctx context.Context, rows []EmployeeOvertime, period PayPeriod) ([]byte, error)
}
