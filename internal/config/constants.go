package config

// Application constants
const (
	AppName    = "attendance"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces environment overrides, e.g. ATTENDANCE_FILES_SOURCE
	EnvPrefix = "ATTENDANCE"

	// Boundary files
	DefaultSourceFile   = "DATA.xlsx"
	DefaultTemplateFile = "taslak.xlsx"

	// Output artifact naming: <Name_With_Underscores>_Attendance.xlsx
	ReportLabel     = "_Attendance"
	ReportExtension = ".xlsx"

	// Log Settings
	DefaultLogLevel = "info"
	DefaultLogFile  = "logs/attendance.log"
)

// Source export layout. Column offsets are 0-based indices into a sheet row
// (B=1, G=6, H=7, J=9, M=12); rows 1-4 are banner and header.
const (
	SourceHeaderRows     = 4
	SourceNameCol        = 1
	SourceDateCol        = 6
	SourceEntryCol       = 7
	SourceExitCol        = 9
	SourceNetDurationCol = 12
)

// Report template layout. Rows are 1-based and the scan range is inclusive.
const (
	TemplateNameCell          = "F4"
	TemplateDateColumn        = "E"
	TemplateEntryColumn       = "F"
	TemplateExitColumn        = "G"
	TemplateNetDurationColumn = "I"
	TemplateFirstRow          = 6
	TemplateLastRow           = 44
)

// DefaultExcludedKeywords mark aggregate rows of the export ("total",
// "daily", "staff"); they are matched caselessly as substrings.
var DefaultExcludedKeywords = []string{"toplam", "günlük", "personel"}
