package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"attendancecli/internal/operations"
)

type summaryStyles struct {
	title   lipgloss.Style
	ok      lipgloss.Style
	failed  lipgloss.Style
	skipped lipgloss.Style
	detail  lipgloss.Style
	box     lipgloss.Style
}

func newSummaryStyles() summaryStyles {
	return summaryStyles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		skipped: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		box:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// render formats the run report for the terminal
func (s summaryStyles) render(report *operations.RunReport) string {
	var lines []string
	lines = append(lines, s.title.Render("Attendance reports"))
	lines = append(lines, s.detail.Render("run "+report.RunID))

	if report.Err != nil {
		lines = append(lines, s.failed.Render("Source export unreadable, no reports generated"))
		lines = append(lines, s.detail.Render(report.Err.Error()))
		return s.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	}

	lines = append(lines, fmt.Sprintf("%d punch records, %d employees, %d failed",
		report.Records, len(report.Employees), len(report.Failed())))
	lines = append(lines, "")

	width := 0
	for _, e := range report.Employees {
		width = max(width, lipgloss.Width(e.Name))
	}

	for _, e := range report.Employees {
		name := e.Name + strings.Repeat(" ", width-lipgloss.Width(e.Name))
		if e.OK() {
			lines = append(lines, s.ok.Render("✓ "+name)+"  "+
				fmt.Sprintf("%2d days  %s", e.Days, filepath.Base(e.Artifact)))
			continue
		}
		lines = append(lines, s.failed.Render("✗ "+name)+"  "+
			s.detail.Render(string(operations.GetErrorType(e.Err))))
	}

	if len(report.Skipped) > 0 {
		lines = append(lines, "")
		lines = append(lines, s.skipped.Render("skipped: "+strings.Join(report.Skipped, ", ")))
	}

	return s.box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
