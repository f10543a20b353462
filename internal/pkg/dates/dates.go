// Package dates parses the date formats clerks actually type and formats
// dates the way the slip template and summary report expect them.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnparseable = errors.New("unparseable date")

// layouts are tried in order; ISO first so that YYYY-MM-DD is never
// mistaken for a month by the US layouts below it.
var layouts = []string{
	"2006-01-02",
	"01/02/2006",
	"01-02-2006",
	"01/02/06",
	"01-02-06",
}

// Parse accepts ISO (YYYY-MM-DD) and US (MM/DD/YYYY, MM-DD-YYYY, MM/DD/YY,
// MM-DD-YY) date text and returns the first successful interpretation.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseable, s)
}

// FormatShort renders a date as "M/D" with no leading zeros and no year.
// Used for the in-cell worked-date lists.
func FormatShort(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}

// FormatShortYear renders a date as "MM-DD-YY". Used for the slip's ending
// date field and for download file names.
func FormatShortYear(t time.Time) string {
	return t.Format("01-02-06")
}
