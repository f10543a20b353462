// Package overtime buckets raw overtime entries into the two weeks of a
// pay period.
package overtime

import (
	"time"

	"github.com/mtbtransit/timeslip-backend-go/internal/domain/overtime"
	"github.com/mtbtransit/timeslip-backend-go/internal/pkg/dates"
)

// Aggregate folds raw entries into per-week buckets. It is a pure,
// order-independent fold: entries with non-positive hours, unknown
// categories, unparseable dates, or dates outside both weeks never
// contribute to any sum or date set.
func Aggregate(entries []overtime.Entry, period overtime.PayPeriod) (week1, week2 overtime.WeekBucket) {
	acc := [2]accumulator{newAccumulator(), newAccumulator()}

	for _, entry := range entries {
		d, err := dates.Parse(entry.Date)
		if err != nil {
			continue
		}
		if entry.Hours <= 0 || !entry.Category.Valid() {
			continue
		}

		var idx int
		switch {
		case period.Week1.Contains(d):
			idx = 0
		case period.Week2.Contains(d):
			idx = 1
		default:
			continue
		}

		acc[idx].add(entry.Category, entry.Hours, d)
	}

	return acc[0].bucket(), acc[1].bucket()
}

type accumulator struct {
	sums     map[overtime.Category]float64
	dates    map[time.Time]struct{}
	rowTotal float64
}

func newAccumulator() accumulator {
	return accumulator{
		sums:  make(map[overtime.Category]float64),
		dates: make(map[time.Time]struct{}),
	}
}

func (a *accumulator) add(c overtime.Category, hours float64, d time.Time) {
	a.sums[c] += hours
	a.dates[d] = struct{}{}
	a.rowTotal += hours
}

func (a accumulator) bucket() overtime.WeekBucket {
	distinct := make([]time.Time, 0, len(a.dates))
	for d := range a.dates {
		distinct = append(distinct, d)
	}
	return overtime.WeekBucket{
		OT10:     a.sums[overtime.CategoryOT10],
		OT15:     a.sums[overtime.CategoryOT15],
		CTE10:    a.sums[overtime.CategoryCTE10],
		CTE15:    a.sums[overtime.CategoryCTE15],
		Dates:    distinct,
		HasData:  len(a.dates) > 0,
		RowTotal: a.rowTotal,
	}
}
