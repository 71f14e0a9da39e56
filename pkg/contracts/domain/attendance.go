package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cell is a spreadsheet cell value as read from a workbook.
// Text is the value as displayed (number format applied) and Raw is the
// stored value, so date and time serials survive unformatted.
type Cell struct {
	Text string `json:"text"`
	Raw  string `json:"raw"`
}

// TextCell builds a cell whose stored and displayed values are the same string.
func TextCell(s string) Cell {
	return Cell{Text: s, Raw: s}
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return strings.TrimSpace(c.Raw) == "" && strings.TrimSpace(c.Text) == ""
}

// Number returns the stored value as a float when it is numeric.
func (c Cell) Number() (float64, bool) {
	raw := strings.TrimSpace(c.Raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String returns the displayed value, falling back to the stored one.
func (c Cell) String() string {
	if t := strings.TrimSpace(c.Text); t != "" {
		return t
	}
	return strings.TrimSpace(c.Raw)
}

// Date is a calendar date without time of day or location.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String formats d as 2006-01-02.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// PunchRecord is one qualifying row of the time-clock export.
// Records are produced in source order, which is the only chronological
// evidence for punches sharing a date.
type PunchRecord struct {
	Employee    string    `json:"employee"`
	DateRaw     Cell      `json:"date_raw"`
	Stamp       time.Time `json:"stamp"` // full value of DateRaw, time of day included when present
	Date        Date      `json:"date"`
	Entry       Cell      `json:"entry"`
	Exit        Cell      `json:"exit"`
	NetDuration Cell      `json:"net_duration"`
	Row         int       `json:"row"` // 1-based row in the source sheet
}

// DailySummary is the reduced entry/exit/duration triple for one employee
// on one date.
type DailySummary struct {
	Employee    string `json:"employee" validate:"required"`
	Date        Date   `json:"date"`
	Entry       Cell   `json:"entry"`
	Exit        Cell   `json:"exit"`
	NetDuration Cell   `json:"net_duration"`
	Punches     int    `json:"punches" validate:"min=1"`
}
