// Package operations runs the attendance batch.
//
// A Batch validates the boundary files, extracts the punch export once and
// then handles each employee in first-seen order: aggregate rows are
// skipped, the remaining punches are summarized per day and projected onto
// a fresh copy of the report template.
//
// Failures are contained at two levels. An unreadable source ends the run
// early with RunReport.Err set and no artifacts written. Any failure while
// producing one employee's report, a panic included, is recorded in that
// employee's EmployeeResult and the loop moves on.
//
// Errors are *OperationError values carrying an ErrorType:
//
//	report := operations.NewBatch(cfg, rc).Run(ctx)
//	if operations.IsType(report.Err, operations.ErrorTypeSourceUnreadable) {
//	    ...
//	}
//	for _, r := range report.Failed() {
//	    log.Println(r.Name, operations.GetErrorType(r.Err))
//	}
package operations
