package overtime

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mtbtransit/timeslip-backend-go/internal/pkg/dates"
)

// Category enum - the four overtime/comp-time buckets on the slip.
// Values match the wire format used by the entry editor.
type Category string

const (
	CategoryOT10  Category = "ot10"
	CategoryOT15  Category = "ot15"
	CategoryCTE10 Category = "cte10"
	CategoryCTE15 Category = "cte15"
)

// Categories in slip/report column order.
var Categories = []Category{CategoryOT10, CategoryOT15, CategoryCTE10, CategoryCTE15}

func (c Category) Valid() bool {
	switch c {
	case CategoryOT10, CategoryOT15, CategoryCTE10, CategoryCTE15:
		return true
	}
	return false
}

// Entry is one manually keyed overtime line: a worked date, a category and
// an hour count. Date stays textual until aggregation so a single bad entry
// can be skipped instead of failing the batch.
type Entry struct {
	Date     string   `json:"date"`
	Category Category `json:"category"`
	Hours    float64  `json:"hours"`
}

// DateRange is an inclusive calendar span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// PayPeriod is a 14-day span ending on a Saturday, split into two
// contiguous Sunday-through-Saturday weeks.
type PayPeriod struct {
	Ending time.Time
	Week1  DateRange
	Week2  DateRange
}

// PayPeriodFromEnding parses the ending date and derives the two 7-day
// weeks: week1 = [end-13d, end-7d], week2 = [end-6d, end], both inclusive.
// An ending date that is not a Saturday is rejected rather than silently
// producing misaligned weeks.
func PayPeriodFromEnding(endingDate string) (PayPeriod, error) {
	end, err := dates.Parse(endingDate)
	if err != nil {
		return PayPeriod{}, err
	}
	if end.Weekday() != time.Saturday {
		return PayPeriod{}, ErrEndingDateNotBoundary
	}
	return PayPeriod{
		Ending: end,
		Week1:  DateRange{Start: end.AddDate(0, 0, -13), End: end.AddDate(0, 0, -7)},
		Week2:  DateRange{Start: end.AddDate(0, 0, -6), End: end},
	}, nil
}

// WeekBucket is the aggregation result for one employee in one week of the
// pay period: per-category hour sums, the distinct dates that contributed,
// and the row total across the four categories.
type WeekBucket struct {
	OT10     float64
	OT15     float64
	CTE10    float64
	CTE15    float64
	Dates    []time.Time
	HasData  bool
	RowTotal float64
}

// Sum returns the bucket's hours for one category.
func (b WeekBucket) Sum(c Category) float64 {
	switch c {
	case CategoryOT10:
		return b.OT10
	case CategoryOT15:
		return b.OT15
	case CategoryCTE10:
		return b.CTE10
	case CategoryCTE15:
		return b.CTE15
	}
	return 0
}

// DatesLabel renders the bucket's worked dates as a comma-separated
// ascending list of short dates, e.g. "6/3, 6/5".
func (b WeekBucket) DatesLabel() string {
	sorted := make([]time.Time, len(b.Dates))
	copy(sorted, b.Dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, d := range sorted {
		parts[i] = dates.FormatShort(d)
	}
	return strings.Join(parts, ", ")
}

// FormatHours renders an hour value for slips and reports: whole values as
// "<n>.0", everything else rounded to exactly one decimal digit.
func FormatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%d.0", int64(h))
	}
	return fmt.Sprintf("%.1f", h)
}
