// Package exporter writes per-employee attendance reports from a workbook
// template.
//
// TemplateProjector opens a fresh copy of the template for every employee,
// stamps the employee name into the header cell, and fills the entry, exit
// and net duration columns of each template row whose date has a daily
// summary. The result is saved as <Name_With_Underscores>_Attendance.xlsx.
//
// Time values that read as HH:MM:SS are stored as typed times of day with
// an hh:mm:ss number format; anything else is written through unchanged.
//
// Example usage:
//
//	projector := exporter.NewTemplateProjector("taslak.xlsx", cfg.Template, ".", logger)
//	path, stats, err := projector.Project(ctx, "Jane Doe", summaries)
//	// path == "Jane_Doe_Attendance.xlsx"
package exporter
