package overtime

import "github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"

// EntrySet is the per-employee payload of keyed overtime lines.
type EntrySet struct {
	Entries []Entry `json:"entries"`
}

type GenerateBlankRequest struct {
	Employees    []employee.Employee `json:"employees"`
	PayPeriodEnd string              `json:"payPeriodEnd"`
}

type GenerateOvertimeRequest struct {
	Employees       []employee.Employee `json:"employees"`
	PayPeriodEnd    string              `json:"payPeriodEnd"`
	OvertimeEntries map[string]EntrySet `json:"overtimeEntries"`
}

type GenerateOvertimeResponse struct {
	Document         string `json:"document"`
	DocumentFilename string `json:"documentFilename"`
	Report           string `json:"report"`
	ReportFilename   string `json:"reportFilename"`
}

// EmployeeOvertime pairs an employee with their qualifying entries; it is
// the unit both the slip composer and the report generator consume.
type EmployeeOvertime struct {
	Employee employee.Employee
	Entries  []Entry
}

// SlipBatch is a merged multi-page slip document ready for download.
type SlipBatch struct {
	Document []byte
	Filename string
}

// OvertimeBundle is the paired slip document and summary workbook.
type OvertimeBundle struct {
	Document         []byte
	DocumentFilename string
	Report           []byte
	ReportFilename   string
}
