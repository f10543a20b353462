package slip

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
	"github.com/mtbtransit/timeslip-backend-go/internal/pkg/dates"
	"github.com/mtbtransit/timeslip-backend-go/internal/pkg/slippdf"
	otcalc "github.com/mtbtransit/timeslip-backend-go/internal/service/overtime"
)

// PageComposer merges a rendered overlay onto the slip template and
// concatenates composed pages. Satisfied by slippdf.Composer.
type PageComposer interface {
	Compose(overlay []byte) ([]byte, error)
	MergePages(pages [][]byte) ([]byte, error)
}

type SlipServiceImpl struct {
	composer      PageComposer
	reportService overtime.ReportService
	deptCode      string
	logger        *slog.Logger
}

func NewSlipService(
	composer PageComposer,
	reportService overtime.ReportService,
	deptCode string,
	logger *slog.Logger,
) overtime.SlipService {
	return &SlipServiceImpl{
		composer:      composer,
		reportService: reportService,
		deptCode:      deptCode,
		logger:        logger,
	}
}

func (s *SlipServiceImpl) GenerateBlank(ctx context.Context, employees []employee.Employee, payPeriodEnd string) (overtime.SlipBatch, error) {
	if len(employees) == 0 {
		return overtime.SlipBatch{}, overtime.ErrMissingEmployees
	}
	if strings.TrimSpace(payPeriodEnd) == "" {
		return overtime.SlipBatch{}, overtime.ErrMissingPayPeriodEnd
	}

	period, err := overtime.PayPeriodFromEnding(payPeriodEnd)
	if err != nil {
		return overtime.SlipBatch{}, err
	}

	sorted := make([]employee.Employee, len(employees))
	copy(sorted, employees)
	employee.SortByName(sorted)

	pages := make([][]byte, 0, len(sorted))
	for _, emp := range sorted {
		page, err := s.composeSlip(emp, period, nil)
		if err != nil {
			s.logger.Error("failed to compose slip, skipping employee",
				slog.String("employee", emp.Number),
				slog.Any("error", err),
			)
			continue
		}
		pages = append(pages, page)
	}
	if len(pages) == 0 {
		return overtime.SlipBatch{}, overtime.ErrNoSlipsProduced
	}

	document, err := s.composer.MergePages(pages)
	if err != nil {
		return overtime.SlipBatch{}, err
	}

	return overtime.SlipBatch{
		Document: document,
		Filename: "Time_Exception_Slips_" + dates.FormatShortYear(period.Ending) + ".pdf",
	}, nil
}

func (s *SlipServiceImpl) GenerateOvertime(ctx context.Context, req overtime.GenerateOvertimeRequest) (overtime.OvertimeBundle, error) {
	if strings.TrimSpace(req.PayPeriodEnd) == "" {
		return overtime.OvertimeBundle{}, overtime.ErrMissingPayPeriodEnd
	}

	period, err := overtime.PayPeriodFromEnding(req.PayPeriodEnd)
	if err != nil {
		return overtime.OvertimeBundle{}, err
	}

	// Only employees with at least one keyed entry get a slip or a report
	// row.
	withOT := make([]overtime.EmployeeOvertime, 0, len(req.Employees))
	for _, emp := range req.Employees {
		set, ok := req.OvertimeEntries[emp.Number]
		if !ok || len(set.Entries) == 0 {
			continue
		}
		withOT = append(withOT, overtime.EmployeeOvertime{Employee: emp, Entries: set.Entries})
	}
	if len(withOT) == 0 {
		return overtime.OvertimeBundle{}, overtime.ErrNoOvertimeEntries
	}

	sortEmployeeOvertime(withOT)

	pages := make([][]byte, 0, len(withOT))
	for _, row := range withOT {
		page, err := s.composeSlip(row.Employee, period, row.Entries)
		if err != nil {
			s.logger.Error("failed to compose overtime slip, skipping employee",
				slog.String("employee", row.Employee.Number),
				slog.Any("error", err),
			)
			continue
		}
		pages = append(pages, page)
	}
	if len(pages) == 0 {
		return overtime.OvertimeBundle{}, overtime.ErrNoSlipsProduced
	}

	document, err := s.composer.MergePages(pages)
	if err != nil {
		return overtime.OvertimeBundle{}, err
	}

	report, err := s.reportService.BuildSummary(ctx, withOT, period)
	if err != nil {
		return overtime.OvertimeBundle{}, err
	}

	suffix := dates.FormatShortYear(period.Ending)
	return overtime.OvertimeBundle{
		Document:         document,
		DocumentFilename: "Overtime_Slips_" + suffix + ".pdf",
		Report:           report,
		ReportFilename:   "Overtime_Summary_" + suffix + ".xlsx",
	}, nil
}

// composeSlip renders one employee's page and stamps it onto the template.
func (s *SlipServiceImpl) composeSlip(emp employee.Employee, period overtime.PayPeriod, entries []overtime.Entry) ([]byte, error) {
	overlay, _, err := slippdf.RenderOverlay(slipFieldValues(emp, period, entries, s.deptCode))
	if err != nil {
		return nil, err
	}
	return s.composer.Compose(overlay)
}

// slipFieldValues builds the overlay value table for one employee's page.
// With entries the two weeks are aggregated and the non-zero sums written
// into rows 1 and 2 plus the total row; without, only the identity fields
// are filled.
func slipFieldValues(emp employee.Employee, period overtime.PayPeriod, entries []overtime.Entry, deptCode string) map[string]string {
	values := map[string]string{
		"Employee Name": emp.DisplayName(),
		"Dept":          deptCode,
		"Ending Date":   dates.FormatShortYear(period.Ending),
		"Employee":      emp.Number,
	}
	if entries == nil {
		return values
	}

	wk1, wk2 := otcalc.Aggregate(entries, period)

	var grandTotal float64
	for rowIdx, week := range []overtime.WeekBucket{wk1, wk2} {
		if !week.HasData {
			continue
		}
		values[slippdf.RowFields["dates"][rowIdx]] = week.DatesLabel()
		for _, cat := range overtime.Categories {
			if hours := week.Sum(cat); hours > 0 {
				values[slippdf.RowFields[string(cat)][rowIdx]] = overtime.FormatHours(hours)
			}
		}
		grandTotal += week.RowTotal
	}

	for _, cat := range overtime.Categories {
		if total := wk1.Sum(cat) + wk2.Sum(cat); total > 0 {
			values[slippdf.TotalFields[string(cat)]] = overtime.FormatHours(total)
		}
	}
	if grandTotal > 0 {
		values[slippdf.GrandTotalField] = overtime.FormatHours(grandTotal)
	}
	return values
}

func sortEmployeeOvertime(rows []overtime.EmployeeOvertime) {
	sort.SliceStable(rows, func(i, j int) bool {
		li, lj := strings.ToLower(rows[i].Employee.Last), strings.ToLower(rows[j].Employee.Last)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(rows[i].Employee.First) < strings.ToLower(rows[j].Employee.First)
	})
}
