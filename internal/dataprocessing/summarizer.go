package dataprocessing

import (
	"sort"

	"attendancecli/pkg/contracts/domain"
)

// EmployeeRecords holds the punch records of one employee in source order
type EmployeeRecords struct {
	Name    string
	Records []domain.PunchRecord
}

// GroupByEmployee splits records per employee. Employees are returned in
// the order they first appear in the export; each employee's records keep
// source order.
func GroupByEmployee(records []domain.PunchRecord) []EmployeeRecords {
	index := make(map[string]int)
	var groups []EmployeeRecords

	for _, r := range records {
		i, ok := index[r.Employee]
		if !ok {
			i = len(groups)
			index[r.Employee] = i
			groups = append(groups, EmployeeRecords{Name: r.Employee})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	return groups
}

// Summarize reduces one employee's punch records to one DailySummary per
// calendar date.
//
// Within a date, records are ordered by the raw date cell value (stable, so
// equal stamps keep source order) and reduced as follows:
//
//   - Entry is the entry time of the first record.
//   - Exit is the exit time of the second-to-last record when the day has
//     more than one record, otherwise of the only record.
//   - NetDuration is the net duration of the last record.
//
// The penultimate-exit rule reproduces how the punch clock export behaves:
// its final row of a day is usually a checkout artifact, so the real last
// exit sits one row above it. It is a property of that export, not a
// general attendance rule, and it is untested for days with more than three
// punches.
//
// Summaries are returned in ascending date order.
func Summarize(records []domain.PunchRecord) []domain.DailySummary {
	byDate := make(map[domain.Date][]domain.PunchRecord)
	var dates []domain.Date

	for _, r := range records {
		if _, seen := byDate[r.Date]; !seen {
			dates = append(dates, r.Date)
		}
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})

	summaries := make([]domain.DailySummary, 0, len(dates))
	for _, date := range dates {
		summaries = append(summaries, summarizeDay(date, byDate[date]))
	}

	return summaries
}

// summarizeDay applies the reduction rule to the records of a single date
func summarizeDay(date domain.Date, group []domain.PunchRecord) domain.DailySummary {
	sorted := make([]domain.PunchRecord, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stamp.Before(sorted[j].Stamp)
	})

	first, last := sorted[0], sorted[len(sorted)-1]

	exit := last.Exit
	if len(sorted) > 1 {
		exit = sorted[len(sorted)-2].Exit
	}

	return domain.DailySummary{
		Employee:    first.Employee,
		Date:        date,
		Entry:       first.Entry,
		Exit:        exit,
		NetDuration: last.NetDuration,
		Punches:     len(sorted),
	}
}
