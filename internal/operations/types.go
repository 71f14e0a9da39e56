package operations

// EmployeeResult is the outcome of one employee's report
type EmployeeResult struct {
	Name     string `json:"name"`
	Days     int    `json:"days"`
	Artifact string `json:"artifact,omitempty"`
	Err      error  `json:"-"`
}

// OK reports whether the report was written
func (r EmployeeResult) OK() bool {
	return r.Err == nil
}

// RunReport summarizes a batch run. Err is set only when the run could not
// start work at all (unreadable source); per-employee failures live in
// Employees.
type RunReport struct {
	RunID     string           `json:"run_id"`
	Records   int              `json:"records"`
	Employees []EmployeeResult `json:"employees"`
	Skipped   []string         `json:"skipped,omitempty"`
	Err       error            `json:"-"`
}

// Succeeded returns the employees whose report was written
func (r *RunReport) Succeeded() []EmployeeResult {
	var out []EmployeeResult
	for _, e := range r.Employees {
		if e.OK() {
			out = append(out, e)
		}
	}
	return out
}

// Failed returns the employees whose report failed
func (r *RunReport) Failed() []EmployeeResult {
	var out []EmployeeResult
	for _, e := range r.Employees {
		if !e.OK() {
			out = append(out, e)
		}
	}
	return out
}
