package operations

import (
	"context"

	"attendancecli/internal/exporter"
	"attendancecli/pkg/contracts/domain"
)

// RecordSource yields the punch records of one export
type RecordSource interface {
	ExtractFile(ctx context.Context, path string) ([]domain.PunchRecord, error)
}

// ReportWriter produces one employee's report
type ReportWriter interface {
	Project(ctx context.Context, employee string, summaries []domain.DailySummary) (string, exporter.ProjectionStats, error)
}
