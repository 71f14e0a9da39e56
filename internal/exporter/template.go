package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"attendancecli/internal/config"
	"attendancecli/internal/dataprocessing"
	"attendancecli/internal/infrastructure"
	"attendancecli/pkg/contracts/domain"
)

// ProjectionStats describes how one set of summaries landed on the template
type ProjectionStats struct {
	RowsScanned int           // template rows holding a readable date
	RowsMatched int           // rows written from a summary
	Unmatched   []domain.Date // summary dates with no template row
}

// TemplateProjector fills copies of the report template with one
// employee's daily summaries.
type TemplateProjector struct {
	templatePath string
	layout       config.TemplateLayout
	outDir       string
	logger       *slog.Logger
}

// NewTemplateProjector creates a projector writing reports into outDir
func NewTemplateProjector(templatePath string, layout config.TemplateLayout, outDir string, logger *slog.Logger) *TemplateProjector {
	if outDir == "" {
		outDir = "."
	}
	return &TemplateProjector{
		templatePath: templatePath,
		layout:       layout,
		outDir:       outDir,
		logger:       infrastructure.WithComponent(logger, "projector"),
	}
}

// ArtifactName returns the report file name for an employee: spaces become
// underscores and the report suffix is appended. Distinct names that only
// differ by spaces versus underscores map to the same file.
func ArtifactName(employee string) string {
	return strings.ReplaceAll(employee, " ", "_") + config.ReportLabel + config.ReportExtension
}

// Project opens a fresh copy of the template, fills it for employee and
// saves it. It returns the path of the written report.
func (p *TemplateProjector) Project(ctx context.Context, employee string, summaries []domain.DailySummary) (string, ProjectionStats, error) {
	f, err := excelize.OpenFile(p.templatePath)
	if err != nil {
		return "", ProjectionStats{}, fmt.Errorf("%w: open %s: %v", ErrTemplateUnreadable, p.templatePath, err)
	}
	defer f.Close()

	stats, err := p.Fill(f, employee, summaries)
	if err != nil {
		return "", stats, fmt.Errorf("fill template for %s: %w", employee, err)
	}

	if len(stats.Unmatched) > 0 {
		dates := make([]string, len(stats.Unmatched))
		for i, d := range stats.Unmatched {
			dates[i] = d.String()
		}
		p.logger.WarnContext(ctx, "days without a template row",
			slog.String("employee", employee),
			slog.Any("dates", dates))
	}

	path := filepath.Join(p.outDir, ArtifactName(employee))
	if err := f.SaveAs(path); err != nil {
		return "", stats, fmt.Errorf("%w: %s: %v", ErrArtifactSave, path, err)
	}

	p.logger.InfoContext(ctx, "report written",
		slog.String("employee", employee),
		slog.String("path", path),
		slog.Int("rows_scanned", stats.RowsScanned),
		slog.Int("rows_matched", stats.RowsMatched))

	return path, stats, nil
}

// Fill writes employee into the header cell and, for every template row
// whose date has a summary, the entry, exit and net duration values.
// Rows with a blank or unreadable date, or with no summary, are left as
// they are.
func (p *TemplateProjector) Fill(f *excelize.File, employee string, summaries []domain.DailySummary) (ProjectionStats, error) {
	var stats ProjectionStats

	sheet, err := dataprocessing.ActiveSheet(f)
	if err != nil {
		return stats, err
	}

	if err := f.SetCellValue(sheet, p.layout.NameCell, employee); err != nil {
		return stats, fmt.Errorf("write name cell %s: %w", p.layout.NameCell, err)
	}

	byDate := make(map[domain.Date]domain.DailySummary, len(summaries))
	for _, s := range summaries {
		byDate[s.Date] = s
	}
	matched := make(map[domain.Date]bool, len(summaries))

	writer := newTimeWriter(f)
	for row := p.layout.FirstRow; row <= p.layout.LastRow; row++ {
		dateCell, err := readCell(f, sheet, p.ref(p.layout.DateColumn, row))
		if err != nil {
			return stats, err
		}
		if dateCell.IsEmpty() {
			continue
		}

		date, ok := dataprocessing.ParseDate(dateCell)
		if !ok {
			continue
		}
		stats.RowsScanned++

		summary, ok := byDate[date]
		if !ok {
			continue
		}

		writes := []struct {
			column string
			value  domain.Cell
		}{
			{p.layout.EntryColumn, summary.Entry},
			{p.layout.ExitColumn, summary.Exit},
			{p.layout.NetDurationColumn, summary.NetDuration},
		}
		for _, w := range writes {
			ref := p.ref(w.column, row)
			if err := writer.write(sheet, ref, w.value); err != nil {
				return stats, fmt.Errorf("write %s: %w", ref, err)
			}
		}

		stats.RowsMatched++
		matched[date] = true
	}

	for _, s := range summaries {
		if !matched[s.Date] {
			stats.Unmatched = append(stats.Unmatched, s.Date)
		}
	}

	return stats, nil
}

func (p *TemplateProjector) ref(column string, row int) string {
	return column + strconv.Itoa(row)
}

// readCell returns both the displayed and the stored value of a cell
func readCell(f *excelize.File, sheet, ref string) (domain.Cell, error) {
	text, err := f.GetCellValue(sheet, ref)
	if err != nil {
		return domain.Cell{}, fmt.Errorf("read %s: %w", ref, err)
	}
	raw, err := f.GetCellValue(sheet, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.Cell{}, fmt.Errorf("read %s: %w", ref, err)
	}
	return domain.Cell{Text: text, Raw: raw}, nil
}
