// Package shared holds code used across packages that belongs to none of
// them.
//
// The testutil subpackage provides test helpers:
//
//   - BufferedSlogHandler and NewTestLogger capture log records for assertions
//   - NewSourceWorkbook and WriteSourceWorkbook build punch-clock exports
//   - NewTemplateWorkbook and WriteTemplateWorkbook build report templates
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    path := testutil.WriteSourceWorkbook(t, t.TempDir(), []testutil.SourceRow{
//	        {Name: "Jane Doe", Date: "01.02.2024", Entry: "08:00:00"},
//	    })
//	    ...
//	    assert.True(t, logs.ContainsMessage("source extraction complete"))
//	}
package shared
