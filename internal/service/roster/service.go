// Package roster parses uploaded employee roster files. Rosters come from
// whatever the payroll system exports, so both the text encoding and the
// column names vary; decoding falls through a chain of encodings and column
// lookup accepts a fixed set of aliases.
package roster

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/employee"
)

var (
	lastNameAliases  = []string{"LastName", "Last", "Last_Name", "Surname"}
	firstNameAliases = []string{"FirstName", "First", "First_Name", "GivenName"}
	numberAliases    = []string{"EmployeeNumber", "Employee #", "EmpNo", "EmployeeID", "Employee_Id"}
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type RosterServiceImpl struct{}

func NewRosterService() employee.RosterService {
	return &RosterServiceImpl{}
}

// Parse decodes the roster bytes, resolves column aliases, drops rows with
// neither name field, and returns the employees sorted alphabetically.
func (s *RosterServiceImpl) Parse(ctx context.Context, fileBytes []byte) ([]employee.Employee, error) {
	rows, err := readCSV(fileBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", employee.ErrUnreadableRoster, err)
	}

	employees := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		last := fieldByAlias(row, lastNameAliases)
		first := fieldByAlias(row, firstNameAliases)
		number := fieldByAlias(row, numberAliases)
		if last == "" && first == "" {
			continue
		}
		employees = append(employees, employee.Employee{
			Last:   last,
			First:  first,
			Number: number,
		})
	}

	employee.SortByName(employees)
	return employees, nil
}

// readCSV decodes the raw bytes through a fallback chain of encodings
// (UTF-8 with and without BOM, Windows-1252, Latin-1) and parses the first
// decoding that yields a valid CSV; the last resort is a lossy UTF-8 read.
func readCSV(raw []byte) ([]map[string]string, error) {
	for _, decode := range []func([]byte) (string, error){
		decodeUTF8,
		decodeWindows1252,
		decodeLatin1,
	} {
		text, err := decode(raw)
		if err != nil {
			continue
		}
		rows, err := parseCSV(text)
		if err != nil {
			continue
		}
		return rows, nil
	}

	// Best-effort lossy decode: replace whatever is left unreadable.
	return parseCSV(strings.ToValidUTF8(string(raw), string(utf8.RuneError)))
}

func decodeUTF8(raw []byte) (string, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("not valid UTF-8")
	}
	return string(raw), nil
}

func decodeWindows1252(raw []byte) (string, error) {
	return charmap.Windows1252.NewDecoder().String(string(raw))
}

func decodeLatin1(raw []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(raw))
}

// parseCSV reads a header row plus data rows into per-row column maps.
// Ragged rows are tolerated; short rows simply lack the trailing columns.
func parseCSV(text string) ([]map[string]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fieldByAlias returns the first non-blank value among the aliased columns.
func fieldByAlias(row map[string]string, aliases []string) string {
	for _, alias := range aliases {
		if v := strings.TrimSpace(row[alias]); v != "" {
			return v
		}
	}
	return ""
}
