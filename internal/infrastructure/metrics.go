package infrastructure

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Employee outcome label values
const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusExcluded  = "excluded"
)

// RunMetrics holds the counters of one batch run on a private registry.
// A batch job has no scrape endpoint, so the registry is written out as a
// text-exposition file instead (WriteTextfile).
type RunMetrics struct {
	Registry *prometheus.Registry

	PunchRecords  prometheus.Counter
	Employees     *prometheus.CounterVec
	RowsProjected prometheus.Counter
}

// NewRunMetrics creates and registers the run counters
func NewRunMetrics() *RunMetrics {
	m := &RunMetrics{
		Registry: prometheus.NewRegistry(),
		PunchRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_punch_records_total",
			Help: "Punch records extracted from the source export.",
		}),
		Employees: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_employees_total",
			Help: "Employees seen in the source export, by outcome.",
		}, []string{"status"}),
		RowsProjected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "attendance_rows_projected_total",
			Help: "Template rows filled with a daily summary.",
		}),
	}

	m.Registry.MustRegister(m.PunchRecords, m.Employees, m.RowsProjected)
	return m
}

// WriteTextfile writes the registry in Prometheus text format, suitable for
// the node_exporter textfile collector.
func (m *RunMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics file %s: %w", path, err)
	}
	return nil
}
