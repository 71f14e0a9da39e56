package dataprocessing

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"attendancecli/pkg/contracts/domain"
)

// dayFirstLayouts are tried in order. Numeric day/month forms always read
// the day first; ISO forms are unambiguous and accepted as well.
var dayFirstLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
	"02.01.2006",
	"2.1.2006 15:04:05",
	"2.1.2006 15:04",
	"2.1.2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006",
	"02-01-2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006",
	"2-1-2006",
	"02.01.06",
	"02/01/06",
	"02-01-06",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC3339,
}

// ParseDayFirst coerces a cell to a point in time, reading ambiguous
// numeric dates day first. Numeric cells are Excel serial dates. The
// second result is false when the value is not a date; callers treat such
// rows as non-data rather than as errors.
func ParseDayFirst(c domain.Cell) (time.Time, bool) {
	if n, ok := c.Number(); ok {
		if n <= 0 {
			return time.Time{}, false
		}
		t, err := excelize.ExcelDateToTime(n, false)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	text := strings.TrimSpace(c.String())
	if text == "" {
		return time.Time{}, false
	}

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ParseDate is ParseDayFirst reduced to the calendar date
func ParseDate(c domain.Cell) (domain.Date, bool) {
	t, ok := ParseDayFirst(c)
	if !ok {
		return domain.Date{}, false
	}
	return domain.DateOf(t), true
}
