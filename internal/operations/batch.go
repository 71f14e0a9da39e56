package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"attendancecli/internal/config"
	"attendancecli/internal/dataprocessing"
	"attendancecli/internal/exporter"
	"attendancecli/internal/infrastructure"
	"attendancecli/internal/validation"
	"attendancecli/pkg/contracts/domain"
)

// Batch drives one run: extract the export, then summarize and project
// every employee in turn. Employees are isolated from each other: one
// failing report never stops the others.
type Batch struct {
	files config.FilesConfig
	rc    *infrastructure.RunContext

	logger    *slog.Logger
	validator *validation.FileValidator
	source    RecordSource
	filter    *dataprocessing.NameFilter
	writer    ReportWriter
}

// NewBatch wires the pipeline components for cfg
func NewBatch(cfg *config.Config, rc *infrastructure.RunContext) *Batch {
	return &Batch{
		files:     cfg.Files,
		rc:        rc,
		logger:    rc.Component("batch"),
		validator: validation.NewFileValidator(rc.Logger),
		source:    dataprocessing.NewExtractor(cfg.Source, rc.Logger),
		filter:    dataprocessing.NewNameFilter(cfg.Filter.ExcludedKeywords),
		writer:    exporter.NewTemplateProjector(cfg.Files.Template, cfg.Template, cfg.Files.OutputDir, rc.Logger),
	}
}

// Run executes the batch. It always returns a report; an unreadable source
// is reported in RunReport.Err and produces no artifacts.
func (b *Batch) Run(ctx context.Context) *RunReport {
	ctx = b.rc.Context(ctx)
	ctx, span := b.rc.Tracer.Start(ctx, "batch",
		trace.WithAttributes(
			attribute.String("run.id", b.rc.ID),
			attribute.String("run.source", b.files.Source),
			attribute.String("run.template", b.files.Template),
		))
	defer span.End()

	start := time.Now()
	report := &RunReport{RunID: b.rc.ID}

	b.logger.InfoContext(ctx, "batch_start",
		slog.String("source", b.files.Source),
		slog.String("template", b.files.Template),
		slog.String("output_dir", b.files.OutputDir))

	records, err := b.extract(ctx)
	if err != nil {
		report.Err = err
		span.SetStatus(codes.Error, "source unreadable")
		b.logger.WarnContext(ctx, "source export unreadable, no reports generated",
			slog.String("source", b.files.Source),
			slog.String("error", err.Error()))
		return report
	}
	report.Records = len(records)

	if len(records) == 0 {
		b.logger.WarnContext(ctx, "no punch records found, no reports generated",
			slog.String("source", b.files.Source))
		return report
	}

	b.validateTargets(ctx)

	for _, group := range dataprocessing.GroupByEmployee(records) {
		if b.filter.Excluded(group.Name) {
			report.Skipped = append(report.Skipped, group.Name)
			b.rc.Metrics.Employees.WithLabelValues(infrastructure.StatusExcluded).Inc()
			b.logger.DebugContext(ctx, "excluded aggregate row",
				slog.String("name", group.Name),
				slog.Int("records", len(group.Records)))
			continue
		}

		result := b.processEmployee(ctx, group)
		report.Employees = append(report.Employees, result)
	}

	failed := len(report.Failed())
	span.SetAttributes(
		attribute.Int("run.employees", len(report.Employees)),
		attribute.Int("run.failed", failed),
	)
	if failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d employee reports failed", failed))
	}

	b.logger.InfoContext(ctx, "batch_complete",
		slog.Int("records", report.Records),
		slog.Int("employees", len(report.Employees)),
		slog.Int("failed", failed),
		slog.Int("skipped", len(report.Skipped)),
		slog.Duration("duration", time.Since(start)))

	return report
}

// extract validates and reads the source export
func (b *Batch) extract(ctx context.Context) ([]domain.PunchRecord, error) {
	ctx, span := b.rc.Tracer.Start(ctx, StepExtract)
	defer span.End()

	if err := b.validator.ValidateExcelFile(b.files.Source); err != nil {
		span.RecordError(err)
		return nil, NewSourceError(StepValidate, err)
	}

	records, err := b.source.ExtractFile(ctx, b.files.Source)
	if err != nil {
		span.RecordError(err)
		return nil, NewSourceError(StepExtract, err)
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	b.rc.Metrics.PunchRecords.Add(float64(len(records)))
	return records, nil
}

// validateTargets checks the template and output directory. Failures are
// logged only; each employee then fails on its own when projecting.
func (b *Batch) validateTargets(ctx context.Context) {
	if err := b.validator.ValidateExcelFile(b.files.Template); err != nil {
		b.logger.ErrorContext(ctx, "report template failed validation",
			slog.String("template", b.files.Template),
			slog.String("error", err.Error()))
	}
	if err := b.validator.ValidateOutputDirectory(b.files.OutputDir); err != nil {
		b.logger.ErrorContext(ctx, "output directory failed validation",
			slog.String("output_dir", b.files.OutputDir),
			slog.String("error", err.Error()))
	}
}

// processEmployee summarizes and projects one employee. A panic anywhere
// below is turned into that employee's error.
func (b *Batch) processEmployee(ctx context.Context, group dataprocessing.EmployeeRecords) (result EmployeeResult) {
	result.Name = group.Name

	ctx, span := b.rc.Tracer.Start(ctx, "employee",
		trace.WithAttributes(attribute.String("employee", group.Name)))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			result.Artifact = ""
			result.Err = NewEmployeeError(group.Name, fmt.Errorf("panic: %v", r))
		}
		if result.Err != nil {
			span.RecordError(result.Err)
			span.SetStatus(codes.Error, "report failed")
			b.rc.Metrics.Employees.WithLabelValues(infrastructure.StatusFailed).Inc()
			b.logger.ErrorContext(ctx, "employee report failed",
				slog.String("employee", group.Name),
				slog.String("error_type", string(GetErrorType(result.Err))),
				slog.String("error", result.Err.Error()))
			return
		}
		b.rc.Metrics.Employees.WithLabelValues(infrastructure.StatusSucceeded).Inc()
	}()

	summaries, err := b.summarize(ctx, group)
	if err != nil {
		result.Err = err
		return result
	}
	result.Days = len(summaries)

	path, err := b.project(ctx, group.Name, summaries)
	if err != nil {
		result.Err = NewEmployeeError(group.Name, err)
		return result
	}

	result.Artifact = path
	return result
}

func (b *Batch) project(ctx context.Context, employee string, summaries []domain.DailySummary) (string, error) {
	ctx, span := b.rc.Tracer.Start(ctx, StepProject)
	defer span.End()

	path, stats, err := b.writer.Project(ctx, employee, summaries)
	span.SetAttributes(
		attribute.Int("rows_matched", stats.RowsMatched),
		attribute.Int("days_unmatched", len(stats.Unmatched)),
	)
	if err != nil {
		return "", err
	}

	b.rc.Metrics.RowsProjected.Add(float64(stats.RowsMatched))
	return path, nil
}

func (b *Batch) summarize(ctx context.Context, group dataprocessing.EmployeeRecords) ([]domain.DailySummary, error) {
	_, span := b.rc.Tracer.Start(ctx, StepSummarize)
	defer span.End()

	summaries := dataprocessing.Summarize(group.Records)
	span.SetAttributes(
		attribute.Int("records", len(group.Records)),
		attribute.Int("days", len(summaries)),
	)

	if err := checkSummaries(group.Name, summaries); err != nil {
		span.RecordError(err)
		return nil, err
	}

	b.logger.DebugContext(ctx, "employee summarized",
		slog.String("employee", group.Name),
		slog.Int("records", len(group.Records)),
		slog.Int("days", len(summaries)))
	return summaries, nil
}

var summaryValidator = validator.New()

// checkSummaries rejects summaries that cannot be placed on a template row
func checkSummaries(employee string, summaries []domain.DailySummary) error {
	for _, s := range summaries {
		if s.Date.IsZero() {
			return newSummaryError(employee, "daily summary without a date", nil)
		}
		if err := summaryValidator.Struct(s); err != nil {
			return newSummaryError(employee, "invalid daily summary for "+s.Date.String(), err)
		}
	}
	return nil
}

func newSummaryError(employee, message string, cause error) *OperationError {
	err := NewValidationError(StepSummarize, message)
	err.Employee = employee
	err.Cause = cause
	return err
}
