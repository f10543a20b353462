package employee

import (
	"sort"
	"strings"
)

// Employee is one roster row. Number is an opaque external key from the
// payroll system and is never validated as numeric.
type Employee struct {
	Last   string `json:"last"`
	First  string `json:"first"`
	Number string `json:"emp_no"`
}

// DisplayName renders "Last, First", degrading gracefully when either part
// is missing.
func (e Employee) DisplayName() string {
	return strings.TrimSpace(strings.Trim(e.Last+", "+e.First, ", "))
}

// SortByName orders employees by (last, first), case-insensitively. This is
// the one canonical ordering used for both slip pages and report rows.
func SortByName(employees []Employee) {
	sort.SliceStable(employees, func(i, j int) bool {
		li, lj := strings.ToLower(employees[i].Last), strings.ToLower(employees[j].Last)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(employees[i].First) < strings.ToLower(employees[j].First)
	})
}

type ParseRosterResponse struct {
	Employees []Employee `json:"employees"`
	Count     int        `json:"count"`
}
