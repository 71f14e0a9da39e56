package dataprocessing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"attendancecli/internal/config"
	"attendancecli/internal/infrastructure"
	"attendancecli/pkg/contracts/domain"
)

// Extractor reads punch records out of a time-clock export workbook
type Extractor struct {
	layout config.SourceLayout
	logger *slog.Logger
}

// NewExtractor creates an extractor for the given column layout
func NewExtractor(layout config.SourceLayout, logger *slog.Logger) *Extractor {
	return &Extractor{
		layout: layout,
		logger: infrastructure.WithComponent(logger, "extractor"),
	}
}

// ExtractFile opens the export at filePath and extracts its punch records.
// Any failure to open or read the workbook is reported as ErrSourceUnreadable.
func (e *Extractor) ExtractFile(ctx context.Context, filePath string) ([]domain.PunchRecord, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnreadable, filePath, err)
	}
	defer f.Close()

	records, err := e.ExtractWorkbook(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnreadable, filePath, err)
	}
	return records, nil
}

// ExtractWorkbook extracts punch records from the active sheet of f.
// Banner rows are skipped, rows with an empty date cell are not punch
// events, and rows whose date cannot be parsed are dropped. The result keeps
// source order.
func (e *Extractor) ExtractWorkbook(ctx context.Context, f *excelize.File) ([]domain.PunchRecord, error) {
	sheet, err := ActiveSheet(f)
	if err != nil {
		return nil, err
	}

	display, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read raw sheet %q: %w", sheet, err)
	}

	e.logger.DebugContext(ctx, "reading source sheet",
		slog.String("sheet_name", sheet),
		slog.Int("total_rows", len(display)))

	var (
		records  []domain.PunchRecord
		dropped  int
		rowCount = max(len(display), len(raw))
	)

	for i := e.layout.HeaderRows; i < rowCount; i++ {
		cell := func(col int) domain.Cell {
			return domain.Cell{Text: at(display, i, col), Raw: at(raw, i, col)}
		}

		dateCell := cell(e.layout.DateCol)
		if dateCell.IsEmpty() {
			continue
		}

		stamp, ok := ParseDayFirst(dateCell)
		if !ok {
			dropped++
			e.logger.DebugContext(ctx, "dropped row with unparseable date",
				slog.Int("row", i+1),
				slog.String("value", dateCell.String()))
			continue
		}

		records = append(records, domain.PunchRecord{
			Employee:    NormalizeValue(cell(e.layout.NameCol)),
			DateRaw:     dateCell,
			Stamp:       stamp,
			Date:        domain.DateOf(stamp),
			Entry:       cell(e.layout.EntryCol),
			Exit:        cell(e.layout.ExitCol),
			NetDuration: cell(e.layout.NetDurationCol),
			Row:         i + 1,
		})
	}

	e.logger.InfoContext(ctx, "source extraction complete",
		slog.String("sheet_name", sheet),
		slog.Int("records", len(records)),
		slog.Int("dropped_rows", dropped))

	return records, nil
}

// ActiveSheet returns the active worksheet name, falling back to the first sheet
func ActiveSheet(f *excelize.File) (string, error) {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name, nil
	}
	if sheets := f.GetSheetList(); len(sheets) > 0 {
		return sheets[0], nil
	}
	return "", ErrNoSheet
}

// at returns rows[row][col] or "" when the cell lies outside the data
func at(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) || col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
