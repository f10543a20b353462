// Package report builds the overtime summary workbook: a header block, two
// stacked week rows per employee, an employee total row each, and a grand
// total. Layout mirrors the paper slip's category columns.
package report

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
	otcalc "github.com/mtbtransit/timeslip-backend-go/internal/service/overtime"
)

const sheetName = "Overtime Summary"

const (
	headerFillColor = "4472C4"
	nameFillColor   = "F2F7FC"
	totalFillColor  = "E8F5E9"
)

var columnHeaders = []string{"Employee", "Week", "OT 1.0", "OT 1.5", "CTE 1.0", "CTE 1.5", "Total"}

var columnWidths = []float64{30, 22, 10, 10, 10, 10, 10}

type ReportServiceImpl struct {
	deptCode string
}

func NewReportService(deptCode string) overtime.ReportService {
	return &ReportServiceImpl{deptCode: deptCode}
}

// styleSet holds the workbook's style IDs, registered once per build.
type styleSet struct {
	title         int
	bold          int
	header        int
	name          int
	nameFillOnly  int
	weekLabel     int
	numCell       int
	empTotalLabel int
	empTotalValue int
	grandLabel    int
	grandCell     int
	grandValue    int
}

func (s *ReportServiceImpl) BuildSummary(ctx context.Context, rows []overtime.EmployeeOvertime, period overtime.PayPeriod) ([]byte, error) {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	styles, err := registerStyles(f)
	if err != nil {
		return nil, err
	}

	if err := s.writeHeaderBlock(f, styles, period); err != nil {
		return nil, err
	}

	rowNum := 7
	var grandTotal float64
	for _, row := range rows {
		wk1, wk2 := otcalc.Aggregate(row.Entries, period)
		empTotal := wk1.RowTotal + wk2.RowTotal
		grandTotal += empTotal

		if err := writeEmployeeRows(f, styles, rowNum, row, wk1, wk2, empTotal); err != nil {
			return nil, err
		}
		rowNum += 3
	}

	if err := writeGrandTotalRow(f, styles, rowNum, grandTotal); err != nil {
		return nil, err
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *ReportServiceImpl) writeHeaderBlock(f *excelize.File, styles styleSet, period overtime.PayPeriod) error {
	if err := f.MergeCell(sheetName, "A1", "G1"); err != nil {
		return err
	}
	title := fmt.Sprintf("City of Montebello — Transit Dept. %s — Overtime Summary", s.deptCode)
	if err := setCell(f, "A1", title, styles.title); err != nil {
		return err
	}

	ending := "Pay Period Ending: " + period.Ending.Format("01/02/2006")
	if err := setCell(f, "A2", ending, styles.bold); err != nil {
		return err
	}

	week1 := fmt.Sprintf("Week 1: %s – %s", period.Week1.Start.Format("01/02"), period.Week1.End.Format("01/02/2006"))
	if err := setCell(f, "A3", week1, 0); err != nil {
		return err
	}
	week2 := fmt.Sprintf("Week 2: %s – %s", period.Week2.Start.Format("01/02"), period.Week2.End.Format("01/02/2006"))
	if err := setCell(f, "A4", week2, 0); err != nil {
		return err
	}

	for i, header := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 6)
		if err != nil {
			return err
		}
		if err := setCell(f, cell, header, styles.header); err != nil {
			return err
		}
	}
	return nil
}

// writeEmployeeRows emits the two stacked week rows plus the employee
// total row starting at rowNum.
func writeEmployeeRows(f *excelize.File, styles styleSet, rowNum int, row overtime.EmployeeOvertime, wk1, wk2 overtime.WeekBucket, empTotal float64) error {
	// Name cell spans both week rows.
	nameStart, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	nameEnd, err := excelize.CoordinatesToCellName(1, rowNum+1)
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, nameStart, nameEnd); err != nil {
		return err
	}
	name := fmt.Sprintf("%s (#%s)", row.Employee.DisplayName(), row.Employee.Number)
	if err := setCell(f, nameStart, name, styles.name); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, nameEnd, nameEnd, styles.nameFillOnly); err != nil {
		return err
	}

	for i, week := range []overtime.WeekBucket{wk1, wk2} {
		if err := writeWeekRow(f, styles, rowNum+i, i+1, week); err != nil {
			return err
		}
	}

	// Employee total row: label merged across the first six columns.
	totalRow := rowNum + 2
	labelStart, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return err
	}
	labelEnd, err := excelize.CoordinatesToCellName(6, totalRow)
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, labelStart, labelEnd); err != nil {
		return err
	}
	if err := setCell(f, labelStart, "Employee Total", styles.empTotalLabel); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, labelStart, labelEnd, styles.empTotalLabel); err != nil {
		return err
	}
	totalCell, err := excelize.CoordinatesToCellName(7, totalRow)
	if err != nil {
		return err
	}
	return setCell(f, totalCell, empTotal, styles.empTotalValue)
}

// writeWeekRow fills columns B..G of one week row. Category cells hold raw
// numbers, left blank when zero.
func writeWeekRow(f *excelize.File, styles styleSet, rowNum, weekNum int, week overtime.WeekBucket) error {
	label := fmt.Sprintf("Wk %d", weekNum)
	if datesLabel := week.DatesLabel(); datesLabel != "" {
		label += ": " + datesLabel
	}
	labelCell, err := excelize.CoordinatesToCellName(2, rowNum)
	if err != nil {
		return err
	}
	if err := setCell(f, labelCell, label, styles.weekLabel); err != nil {
		return err
	}

	values := []float64{week.OT10, week.OT15, week.CTE10, week.CTE15, week.RowTotal}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(3+i, rowNum)
		if err != nil {
			return err
		}
		if v != 0 {
			if err := setCell(f, cell, v, styles.numCell); err != nil {
				return err
			}
		} else if err := f.SetCellStyle(sheetName, cell, cell, styles.numCell); err != nil {
			return err
		}
	}
	return nil
}

func writeGrandTotalRow(f *excelize.File, styles styleSet, rowNum int, grandTotal float64) error {
	labelStart, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	labelEnd, err := excelize.CoordinatesToCellName(6, rowNum)
	if err != nil {
		return err
	}
	if err := f.MergeCell(sheetName, labelStart, labelEnd); err != nil {
		return err
	}
	if err := setCell(f, labelStart, "GRAND TOTAL", styles.grandLabel); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, labelStart, labelEnd, styles.grandCell); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, labelStart, labelStart, styles.grandLabel); err != nil {
		return err
	}
	valueCell, err := excelize.CoordinatesToCellName(7, rowNum)
	if err != nil {
		return err
	}
	return setCell(f, valueCell, grandTotal, styles.grandValue)
}

func setCell(f *excelize.File, cell string, value interface{}, styleID int) error {
	if err := f.SetCellValue(sheetName, cell, value); err != nil {
		return err
	}
	if styleID == 0 {
		return nil
	}
	return f.SetCellStyle(sheetName, cell, cell, styleID)
}

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

func registerStyles(f *excelize.File) (styleSet, error) {
	var styles styleSet
	var err error

	if styles.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	}); err != nil {
		return styles, err
	}
	if styles.bold, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	}); err != nil {
		return styles, err
	}
	if styles.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      solidFill(headerFillColor),
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	}); err != nil {
		return styles, err
	}
	if styles.name, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Fill:      solidFill(nameFillColor),
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Vertical: "center", WrapText: true},
	}); err != nil {
		return styles, err
	}
	if styles.nameFillOnly, err = f.NewStyle(&excelize.Style{
		Fill:   solidFill(nameFillColor),
		Border: thinBorders(),
	}); err != nil {
		return styles, err
	}
	if styles.weekLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "left", WrapText: true},
	}); err != nil {
		return styles, err
	}
	if styles.numCell, err = f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return styles, err
	}
	if styles.empTotalLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 10},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return styles, err
	}
	if styles.empTotalValue, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return styles, err
	}
	if styles.grandLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      solidFill(totalFillColor),
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "right"},
	}); err != nil {
		return styles, err
	}
	if styles.grandCell, err = f.NewStyle(&excelize.Style{
		Fill:   solidFill(totalFillColor),
		Border: thinBorders(),
	}); err != nil {
		return styles, err
	}
	if styles.grandValue, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      solidFill(totalFillColor),
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center"},
	}); err != nil {
		return styles, err
	}

	return styles, nil
}
