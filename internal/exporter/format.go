package exporter

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"attendancecli/pkg/contracts/domain"
)

const (
	clockLayout = "15:04:05"

	// Built-in number formats: "hh:mm:ss" and the elapsed "[h]:mm:ss"
	numFmtClock   = 21
	numFmtElapsed = 46

	secondsPerDay = 24 * 60 * 60
)

// timeWriter writes time values into a workbook. Cell styles cloned with
// a time format are cached per original style and format so a sheet does
// not accumulate duplicate styles.
type timeWriter struct {
	f      *excelize.File
	styles map[styleKey]int
}

type styleKey struct {
	base   int
	numFmt int
}

func newTimeWriter(f *excelize.File) *timeWriter {
	return &timeWriter{f: f, styles: make(map[styleKey]int)}
}

// write stores v in sheet!cell. A value that reads as HH:MM:SS becomes a
// typed time of day; anything else is written through unchanged.
func (w *timeWriter) write(sheet, cell string, v domain.Cell) error {
	if v.IsEmpty() {
		return w.f.SetCellValue(sheet, cell, nil)
	}

	if frac, ok := clockFraction(v.String()); ok {
		if err := w.f.SetCellFloat(sheet, cell, frac, -1, 64); err != nil {
			return err
		}
		return w.applyNumFmt(sheet, cell, numFmtClock)
	}

	return w.writeVerbatim(sheet, cell, v)
}

// writeVerbatim keeps a stored number numeric. A bare number keeps the
// template's style; a formatted one (a serial shown as h:mm or [h]:mm:ss)
// gets a time format, elapsed hours once it reaches a full day. Values
// without a numeric stored form are written as the text the source showed.
func (w *timeWriter) writeVerbatim(sheet, cell string, v domain.Cell) error {
	n, ok := v.Number()
	if !ok {
		return w.f.SetCellStr(sheet, cell, v.String())
	}

	if err := w.f.SetCellFloat(sheet, cell, n, -1, 64); err != nil {
		return err
	}
	if strings.TrimSpace(v.Text) == strings.TrimSpace(v.Raw) {
		return nil
	}
	if n >= 1 {
		return w.applyNumFmt(sheet, cell, numFmtElapsed)
	}
	return w.applyNumFmt(sheet, cell, numFmtClock)
}

// applyNumFmt clones the cell's current style with numFmt applied
func (w *timeWriter) applyNumFmt(sheet, cell string, numFmt int) error {
	current, err := w.f.GetCellStyle(sheet, cell)
	if err != nil {
		return err
	}

	key := styleKey{base: current, numFmt: numFmt}
	id, ok := w.styles[key]
	if !ok {
		style, err := w.f.GetStyle(current)
		if err != nil {
			return fmt.Errorf("read style %d: %w", current, err)
		}
		style.NumFmt = numFmt
		style.CustomNumFmt = nil

		if id, err = w.f.NewStyle(style); err != nil {
			return fmt.Errorf("create time style: %w", err)
		}
		w.styles[key] = id
	}

	return w.f.SetCellStyle(sheet, cell, cell, id)
}

// clockFraction parses s strictly as HH:MM:SS and returns it as a fraction
// of a day, the way spreadsheets store time values.
func clockFraction(s string) (float64, bool) {
	t, err := time.Parse(clockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	seconds := t.Hour()*3600 + t.Minute()*60 + t.Second()
	return float64(seconds) / secondsPerDay, true
}

