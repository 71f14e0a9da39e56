package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMetrics_Counters(t *testing.T) {
	m := NewRunMetrics()

	m.PunchRecords.Add(6)
	m.Employees.WithLabelValues(StatusSucceeded).Inc()
	m.Employees.WithLabelValues(StatusSucceeded).Inc()
	m.Employees.WithLabelValues(StatusExcluded).Inc()
	m.RowsProjected.Add(2)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.PunchRecords))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Employees.WithLabelValues(StatusSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Employees.WithLabelValues(StatusExcluded)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Employees.WithLabelValues(StatusFailed)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RowsProjected))

	// Registries are private per run
	other := NewRunMetrics()
	assert.Equal(t, 0.0, testutil.ToFloat64(other.PunchRecords))
}

func TestRunMetrics_WriteTextfile(t *testing.T) {
	m := NewRunMetrics()
	m.PunchRecords.Add(3)

	path := filepath.Join(t.TempDir(), "attendance.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "attendance_punch_records_total 3")

	expected := `
# HELP attendance_punch_records_total Punch records extracted from the source export.
# TYPE attendance_punch_records_total counter
attendance_punch_records_total 3
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "attendance_punch_records_total"))
}

func TestRunMetrics_WriteTextfileBadDir(t *testing.T) {
	m := NewRunMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "attendance.prom"))
	assert.Error(t, err)
}

func TestNewRunContext_Defaults(t *testing.T) {
	rc := NewRunContext(nil, nil, nil)

	require.NotNil(t, rc.Logger)
	require.NotNil(t, rc.Tracer)
	require.NotNil(t, rc.Metrics)
	assert.Len(t, rc.ID, 36)

	ctx := rc.Context(context.Background())
	assert.Equal(t, rc.ID, GetRunID(ctx))

	assert.NotEqual(t, rc.ID, NewRunContext(nil, nil, nil).ID)
}
