package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"attendancecli/internal/config"
	"attendancecli/internal/infrastructure"
	"attendancecli/internal/operations"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one batch and returns the process exit code. Per-employee
// failures do not change the exit code; only setup failures do.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file (default: attendance.yaml if present)")
	source := fs.String("source", "", "punch-clock export workbook (default "+config.DefaultSourceFile+")")
	template := fs.String("template", "", "report template workbook (default "+config.DefaultTemplateFile+")")
	outDir := fs.String("out", "", "directory for generated reports (default: current directory)")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load configuration: %v\n", err)
		return 1
	}
	if *source != "" {
		cfg.Files.Source = *source
	}
	if *template != "" {
		cfg.Files.Template = *template
	}
	if *outDir != "" {
		cfg.Files.OutputDir = *outDir
	}

	logger, closer, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer closer.Close()

	ctx := context.Background()

	tracer, shutdown, err := infrastructure.NewTracer(cfg.Telemetry, stderr, logger)
	if err != nil {
		logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			logger.Warn("Tracer shutdown failed", slog.String("error", err.Error()))
		}
	}()

	rc := infrastructure.NewRunContext(logger, tracer, nil)
	logger.InfoContext(rc.Context(ctx), "Starting attendance report generation",
		slog.String("version", config.AppVersion),
		slog.String("source", cfg.Files.Source),
		slog.String("template", cfg.Files.Template),
		slog.String("output_dir", cfg.Files.OutputDir))

	report := operations.NewBatch(cfg, rc).Run(ctx)

	if path := cfg.Telemetry.MetricsFile; path != "" {
		if err := rc.Metrics.WriteTextfile(path); err != nil {
			logger.WarnContext(rc.Context(ctx), "Failed to write metrics file",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}

	fmt.Fprintln(stdout, newSummaryStyles().render(report))
	return 0
}
