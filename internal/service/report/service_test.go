package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
)

func buildWorkbook(t *testing.T, rows []overtime.EmployeeOvertime) *excelize.File {
	t.Helper()

	period, err := overtime.PayPeriodFromEnding("2025-06-14")
	require.NoError(t, err)

	raw, err := NewReportService("910").BuildSummary(context.Background(), rows, period)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = f.Close()
	})
	return f
}

func cell(t *testing.T, f *excelize.File, ref string) string {
	t.Helper()
	v, err := f.GetCellValue(sheetName, ref)
	require.NoError(t, err)
	return v
}

func TestBuildSummary_HeaderBlock(t *testing.T) {
	t.Parallel()

	f := buildWorkbook(t, nil)

	assert.Equal(t, "City of Montebello — Transit Dept. 910 — Overtime Summary", cell(t, f, "A1"))
	assert.Equal(t, "Pay Period Ending: 06/14/2025", cell(t, f, "A2"))
	assert.Equal(t, "Week 1: 06/01 – 06/07/2025", cell(t, f, "A3"))
	assert.Equal(t, "Week 2: 06/08 – 06/14/2025", cell(t, f, "A4"))

	for i, header := range columnHeaders {
		ref, err := excelize.CoordinatesToCellName(i+1, 6)
		require.NoError(t, err)
		assert.Equal(t, header, cell(t, f, ref))
	}
}

func TestBuildSummary_EmployeeBlock(t *testing.T) {
	t.Parallel()

	rows := []overtime.EmployeeOvertime{
		{
			Employee: employee.Employee{Last: "Doe", First: "John", Number: "123"},
			Entries: []overtime.Entry{
				{Date: "2025-06-03", Category: overtime.CategoryOT10, Hours: 5},
				{Date: "2025-06-10", Category: overtime.CategoryOT15, Hours: 2.5},
			},
		},
	}
	f := buildWorkbook(t, rows)

	assert.Equal(t, "Doe, John (#123)", cell(t, f, "A7"))

	assert.Equal(t, "Wk 1: 6/3", cell(t, f, "B7"))
	assert.Equal(t, "5", cell(t, f, "C7"))
	assert.Equal(t, "5", cell(t, f, "G7"))
	assert.Empty(t, cell(t, f, "D7"))

	assert.Equal(t, "Wk 2: 6/10", cell(t, f, "B8"))
	assert.Equal(t, "2.5", cell(t, f, "D8"))
	assert.Equal(t, "2.5", cell(t, f, "G8"))
	assert.Empty(t, cell(t, f, "C8"))

	assert.Equal(t, "Employee Total", cell(t, f, "A9"))
	assert.Equal(t, "7.5", cell(t, f, "G9"))

	assert.Equal(t, "GRAND TOTAL", cell(t, f, "A10"))
	assert.Equal(t, "7.5", cell(t, f, "G10"))
}

func TestBuildSummary_GrandTotalAcrossEmployees(t *testing.T) {
	t.Parallel()

	rows := []overtime.EmployeeOvertime{
		{
			Employee: employee.Employee{Last: "Baker", First: "Zoe", Number: "300"},
			Entries:  []overtime.Entry{{Date: "2025-06-02", Category: overtime.CategoryCTE10, Hours: 3}},
		},
		{
			Employee: employee.Employee{Last: "Doe", First: "John", Number: "123"},
			Entries:  []overtime.Entry{{Date: "2025-06-09", Category: overtime.CategoryCTE15, Hours: 1.5}},
		},
	}
	f := buildWorkbook(t, rows)

	// Two employees occupy rows 7-9 and 10-12, grand total on 13.
	assert.Equal(t, "Baker, Zoe (#300)", cell(t, f, "A7"))
	assert.Equal(t, "Doe, John (#123)", cell(t, f, "A10"))
	assert.Equal(t, "GRAND TOTAL", cell(t, f, "A13"))
	assert.Equal(t, "4.5", cell(t, f, "G13"))
}

func TestBuildSummary_WeekWithoutEntriesKeepsBareLabel(t *testing.T) {
	t.Parallel()

	rows := []overtime.EmployeeOvertime{
		{
			Employee: employee.Employee{Last: "Doe", First: "John", Number: "123"},
			Entries:  []overtime.Entry{{Date: "2025-06-03", Category: overtime.CategoryOT10, Hours: 2}},
		},
	}
	f := buildWorkbook(t, rows)

	assert.Equal(t, "Wk 2", cell(t, f, "B8"))
	assert.Empty(t, cell(t, f, "G8"))
}
