package testutil

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Source export layout written by the fixtures: four banner rows, then
// name in B, date in G, entry in H, exit in J and net duration in M.
const (
	SourceBannerRows = 4
	SourceSheet      = "Sheet1"
	TemplateSheet    = "Sheet1"
)

// Styled is a typed cell value written with a built-in number format,
// e.g. Styled{Value: 8.5 / 24, NumFmt: 20} for an "h:mm" time.
type Styled struct {
	Value  any
	NumFmt int
}

// SourceRow is one data row of a fixture punch export.
// Fields left nil are written as empty cells; a Styled field is written
// with its number format.
type SourceRow struct {
	Name  any
	Date  any
	Entry any
	Exit  any
	Net   any
}

// NewSourceWorkbook builds an in-memory punch export containing rows
// below the banner.
func NewSourceWorkbook(t *testing.T, rows []SourceRow) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	banner := []string{"Personel Giriş Çıkış Raporu", "Tarih Aralığı", "", "Sicil"}
	for i, text := range banner {
		if text == "" {
			continue
		}
		mustSet(t, f, SourceSheet, fmt.Sprintf("A%d", i+1), text)
	}

	for i, r := range rows {
		row := SourceBannerRows + i + 1
		cells := map[string]any{"B": r.Name, "G": r.Date, "H": r.Entry, "J": r.Exit, "M": r.Net}
		for col, v := range cells {
			if v == nil {
				continue
			}
			ref := fmt.Sprintf("%s%d", col, row)
			if styled, ok := v.(Styled); ok {
				mustSet(t, f, SourceSheet, ref, styled.Value)
				mustStyle(t, f, SourceSheet, ref, styled.NumFmt)
				continue
			}
			mustSet(t, f, SourceSheet, ref, v)
		}
	}

	return f
}

// WriteSourceWorkbook saves a fixture punch export under dir and returns its path
func WriteSourceWorkbook(t *testing.T, dir string, rows []SourceRow) string {
	t.Helper()
	return save(t, NewSourceWorkbook(t, rows), filepath.Join(dir, "DATA.xlsx"))
}

// NewTemplateWorkbook builds an in-memory report template. dates are
// written to column E starting at row 6; a nil entry leaves the row blank.
func NewTemplateWorkbook(t *testing.T, dates []any) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	mustSet(t, f, TemplateSheet, "B2", "AYLIK PUANTAJ")
	mustSet(t, f, TemplateSheet, "E4", "Personel:")
	mustSet(t, f, TemplateSheet, "E5", "Tarih")
	mustSet(t, f, TemplateSheet, "F5", "Giriş")
	mustSet(t, f, TemplateSheet, "G5", "Çıkış")
	mustSet(t, f, TemplateSheet, "I5", "Net")

	for i, d := range dates {
		if d == nil {
			continue
		}
		mustSet(t, f, TemplateSheet, fmt.Sprintf("E%d", 6+i), d)
	}

	return f
}

// WriteTemplateWorkbook saves a fixture template under dir and returns its path
func WriteTemplateWorkbook(t *testing.T, dir string, dates []any) string {
	t.Helper()
	return save(t, NewTemplateWorkbook(t, dates), filepath.Join(dir, "taslak.xlsx"))
}

// OpenWorkbook opens path and closes it when the test ends
func OpenWorkbook(t *testing.T, path string) *excelize.File {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook %s: %v", path, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func mustSet(t *testing.T, f *excelize.File, sheet, cell string, v any) {
	t.Helper()
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		t.Fatalf("set %s!%s: %v", sheet, cell, err)
	}
}

func mustStyle(t *testing.T, f *excelize.File, sheet, cell string, numFmt int) {
	t.Helper()
	id, err := f.NewStyle(&excelize.Style{NumFmt: numFmt})
	if err != nil {
		t.Fatalf("new style %d: %v", numFmt, err)
	}
	if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
		t.Fatalf("style %s!%s: %v", sheet, cell, err)
	}
}

func save(t *testing.T, f *excelize.File, path string) string {
	t.Helper()
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
	return path
}
