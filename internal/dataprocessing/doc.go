// Package dataprocessing turns a raw time-clock export into per-employee
// daily attendance summaries.
//
// # Architecture
//
// The package is organized into three components:
//
// 1. Extractor: reads the export workbook positionally into PunchRecords
// 2. Names: NormalizeName strips label prefixes, NameFilter drops aggregate rows
// 3. Summarizer: GroupByEmployee and Summarize reduce punches to one row per day
//
// # Data Flow
//
//	Excel export → Extractor → PunchRecords → GroupByEmployee → Summarize → DailySummaries
//
// # Usage
//
//	extractor := dataprocessing.NewExtractor(cfg.Source, logger)
//	records, err := extractor.ExtractFile(ctx, "DATA.xlsx")
//	if err != nil {
//	    // errors.Is(err, dataprocessing.ErrSourceUnreadable)
//	}
//	for _, emp := range dataprocessing.GroupByEmployee(records) {
//	    summaries := dataprocessing.Summarize(emp.Records)
//	    ...
//	}
//
// # Tolerance
//
// Rows with an empty date cell are not punch events and are skipped. Dates
// that cannot be parsed are dropped without an error: the export has
// irregular trailer rows, and treating them as non-data is intended.
package dataprocessing
