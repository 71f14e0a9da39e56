package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attendancecli/internal/exporter"
	"attendancecli/internal/operations"
	"attendancecli/internal/shared/testutil"
)

type cliFixture struct {
	source   string
	template string
	out      string
}

func newCLIFixture(t *testing.T) cliFixture {
	t.Helper()
	t.Setenv("ATTENDANCE_LOGGING_LEVEL", "error")

	dir := t.TempDir()
	return cliFixture{
		source: testutil.WriteSourceWorkbook(t, dir, []testutil.SourceRow{
			{Name: "arge*Jane Doe", Date: "01.02.2024", Entry: "08:00:00", Exit: "17:00:00", Net: "09:00:00"},
			{Name: "Toplam", Date: "01.02.2024", Net: "09:00:00"},
		}),
		template: testutil.WriteTemplateWorkbook(t, dir, []any{"01.02.2024", "02.02.2024"}),
		out:      filepath.Join(dir, "reports"),
	}
}

func (f cliFixture) args(extra ...string) []string {
	return append([]string{"-source", f.source, "-template", f.template, "-out", f.out}, extra...)
}

func TestRun(t *testing.T) {
	f := newCLIFixture(t)
	var stdout, stderr bytes.Buffer

	code := run(f.args(), &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, filepath.Join(f.out, "Jane_Doe_Attendance.xlsx"))
	assert.NoFileExists(t, filepath.Join(f.out, "Toplam_Attendance.xlsx"))
	assert.Contains(t, stdout.String(), "Jane Doe")
	assert.Contains(t, stdout.String(), "skipped: Toplam")
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		args     func(f cliFixture) []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name:     "missing source still exits zero",
			args:     func(f cliFixture) []string { return append(f.args(), "-source", filepath.Join(f.out, "missing.xlsx")) },
			wantCode: 0,
			wantOut:  "Source export unreadable",
		},
		{
			name:     "missing template still exits zero",
			args:     func(f cliFixture) []string { return append(f.args(), "-template", filepath.Join(f.out, "missing.xlsx")) },
			wantCode: 0,
			wantOut:  "template_unreadable",
		},
		{
			name:     "unknown flag",
			args:     func(f cliFixture) []string { return []string{"-bogus"} },
			wantCode: 1,
			wantErr:  "flag provided but not defined",
		},
		{
			name:     "missing config file",
			args:     func(f cliFixture) []string { return append(f.args(), "-config", filepath.Join(f.out, "nope.yaml")) },
			wantCode: 1,
			wantErr:  "Failed to load configuration",
		},
		{
			name:     "invalid configuration",
			env:      map[string]string{"ATTENDANCE_TELEMETRY_TRACE_EXPORTER": "jaeger"},
			args:     func(f cliFixture) []string { return f.args() },
			wantCode: 1,
			wantErr:  "config validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLIFixture(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			var stdout, stderr bytes.Buffer

			code := run(tt.args(f), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Contains(t, stdout.String(), tt.wantOut)
			}
			if tt.wantErr != "" {
				assert.Contains(t, stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRunWritesMetricsFile(t *testing.T) {
	f := newCLIFixture(t)
	metrics := filepath.Join(t.TempDir(), "attendance.prom")
	t.Setenv("ATTENDANCE_TELEMETRY_METRICS_FILE", metrics)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(f.args(), &stdout, &stderr))

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `attendance_employees_total{status="succeeded"} 1`)
	assert.Contains(t, string(data), `attendance_employees_total{status="excluded"} 1`)
	assert.Contains(t, string(data), "attendance_punch_records_total 2")
}

func TestRunStdoutTracing(t *testing.T) {
	f := newCLIFixture(t)
	t.Setenv("ATTENDANCE_TELEMETRY_TRACE_EXPORTER", "stdout")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(f.args(), &stdout, &stderr))

	assert.Contains(t, stderr.String(), `"Name": "batch"`)
	assert.Contains(t, stderr.String(), `"Name": "project"`)
}

func TestRenderSummary(t *testing.T) {
	styles := newSummaryStyles()

	t.Run("completed run", func(t *testing.T) {
		out := styles.render(&operations.RunReport{
			RunID:   "run-1",
			Records: 12,
			Employees: []operations.EmployeeResult{
				{Name: "Jane Doe", Days: 3, Artifact: "/tmp/out/Jane_Doe_Attendance.xlsx"},
				{Name: "Bob", Err: operations.NewEmployeeError("Bob", exporter.ErrArtifactSave)},
			},
			Skipped: []string{"Toplam", "Günlük Toplam"},
		})

		assert.Contains(t, out, "run-1")
		assert.Contains(t, out, "12 punch records, 2 employees, 1 failed")
		assert.Contains(t, out, "Jane_Doe_Attendance.xlsx")
		assert.NotContains(t, out, "/tmp/out")
		assert.Contains(t, out, "save")
		assert.Contains(t, out, "skipped: Toplam, Günlük Toplam")
	})

	t.Run("wide names stay aligned", func(t *testing.T) {
		out := styles.render(&operations.RunReport{
			RunID: "run-3",
			Employees: []operations.EmployeeResult{
				{Name: "王小明", Days: 2, Artifact: "王小明_Attendance.xlsx"},
				{Name: "Bob", Days: 1, Artifact: "Bob_Attendance.xlsx"},
			},
		})

		var columns []int
		for _, line := range strings.Split(out, "\n") {
			if i := strings.Index(line, " days"); i >= 0 {
				columns = append(columns, lipgloss.Width(line[:i]))
			}
		}
		require.Len(t, columns, 2)
		assert.Equal(t, columns[0], columns[1])
	})

	t.Run("unreadable source", func(t *testing.T) {
		out := styles.render(&operations.RunReport{
			RunID: "run-2",
			Err:   operations.NewSourceError(operations.StepValidate, errors.New("DATA.xlsx does not exist")),
		})

		assert.Contains(t, out, "Source export unreadable")
		assert.Contains(t, out, "DATA.xlsx does not exist")
		assert.NotContains(t, out, "punch records")
	})
}
