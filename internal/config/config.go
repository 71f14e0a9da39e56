package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v2"
)

// Config represents the complete batch run configuration
type Config struct {
	Files     FilesConfig     `yaml:"files" envconfig:"FILES"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Source    SourceLayout    `yaml:"source" envconfig:"SOURCE"`
	Template  TemplateLayout  `yaml:"template" envconfig:"TEMPLATE"`
	Filter    FilterConfig    `yaml:"filter" envconfig:"FILTER"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// FilesConfig names the boundary files of a run
type FilesConfig struct {
	Source    string `yaml:"source" envconfig:"SOURCE" validate:"required"`
	Template  string `yaml:"template" envconfig:"TEMPLATE" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// SourceLayout holds the 0-based column offsets of the punch-clock export.
// The positions are fixed by the upstream payroll export and are not
// self-describing, so they are never detected from header text.
type SourceLayout struct {
	HeaderRows     int `yaml:"header_rows" envconfig:"HEADER_ROWS" validate:"min=0"`
	NameCol        int `yaml:"name_col" envconfig:"NAME_COL" validate:"min=0"`
	DateCol        int `yaml:"date_col" envconfig:"DATE_COL" validate:"min=0"`
	EntryCol       int `yaml:"entry_col" envconfig:"ENTRY_COL" validate:"min=0"`
	ExitCol        int `yaml:"exit_col" envconfig:"EXIT_COL" validate:"min=0"`
	NetDurationCol int `yaml:"net_duration_col" envconfig:"NET_DURATION_COL" validate:"min=0"`
}

// TemplateLayout addresses the report template grid.
// FirstRow and LastRow are 1-based and inclusive.
type TemplateLayout struct {
	NameCell          string `yaml:"name_cell" envconfig:"NAME_CELL" validate:"required,cellref"`
	DateColumn        string `yaml:"date_column" envconfig:"DATE_COLUMN" validate:"required,column"`
	EntryColumn       string `yaml:"entry_column" envconfig:"ENTRY_COLUMN" validate:"required,column"`
	ExitColumn        string `yaml:"exit_column" envconfig:"EXIT_COLUMN" validate:"required,column"`
	NetDurationColumn string `yaml:"net_duration_column" envconfig:"NET_DURATION_COLUMN" validate:"required,column"`
	FirstRow          int    `yaml:"first_row" envconfig:"FIRST_ROW" validate:"min=1"`
	LastRow           int    `yaml:"last_row" envconfig:"LAST_ROW" validate:"gtefield=FirstRow"`
}

// FilterConfig lists name fragments that mark aggregate rows rather than employees
type FilterConfig struct {
	ExcludedKeywords []string `yaml:"excluded_keywords" envconfig:"EXCLUDED_KEYWORDS"`
}

// TelemetryConfig controls optional tracing and the metrics text file
type TelemetryConfig struct {
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	MetricsFile   string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, an optional YAML file and
// ATTENDANCE_* environment variables, in that order of precedence (lowest
// first). An empty path searches the usual locations.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getConfigFilePath()
	}
	if path != "" {
		if err := loadFromFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays YAML values onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// normalize fills values that must never be empty
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))

	// JSON is the only supported log format
	c.Logging.Format = "json"

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}
	if c.Telemetry.TraceExporter == "" {
		c.Telemetry.TraceExporter = "none"
	}
	c.Template.NameCell = strings.ToUpper(strings.TrimSpace(c.Template.NameCell))
	c.Template.DateColumn = strings.ToUpper(strings.TrimSpace(c.Template.DateColumn))
	c.Template.EntryColumn = strings.ToUpper(strings.TrimSpace(c.Template.EntryColumn))
	c.Template.ExitColumn = strings.ToUpper(strings.TrimSpace(c.Template.ExitColumn))
	c.Template.NetDurationColumn = strings.ToUpper(strings.TrimSpace(c.Template.NetDurationColumn))
}

// layoutValidations are the custom tags used by TemplateLayout
var layoutValidations = []customValidation{
	{tag: "cellref", fn: isCellRef},
	{tag: "column", fn: isColumnName},
}

type customValidation struct {
	tag string
	fn  validator.Func
}

// Validate checks the configuration against its struct tags
func (c *Config) Validate() error {
	v, err := newValidator(layoutValidations)
	if err != nil {
		return err
	}

	if err := v.Struct(c); err != nil {
		return err
	}
	return nil
}

// newValidator returns a validator with the custom tags registered
func newValidator(custom []customValidation) (*validator.Validate, error) {
	v := validator.New()
	for _, cv := range custom {
		if err := v.RegisterValidation(cv.tag, cv.fn); err != nil {
			return nil, fmt.Errorf("register %q validation: %w", cv.tag, err)
		}
	}
	return v, nil
}

// isCellRef accepts A1-style cell references
func isCellRef(fl validator.FieldLevel) bool {
	_, _, err := excelize.CellNameToCoordinates(fl.Field().String())
	return err == nil
}

// isColumnName accepts column letters such as E or AB
func isColumnName(fl validator.FieldLevel) bool {
	_, err := excelize.ColumnNameToNumber(fl.Field().String())
	return err == nil
}

// getConfigFilePath returns the first config file found, or ""
func getConfigFilePath() string {
	locations := []string{
		"attendance.yaml",
		"configs/attendance.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns the configuration matching the fixed export and template layouts
func Default() *Config {
	return &Config{
		Files: FilesConfig{
			Source:    DefaultSourceFile,
			Template:  DefaultTemplateFile,
			OutputDir: ".",
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Source: SourceLayout{
			HeaderRows:     SourceHeaderRows,
			NameCol:        SourceNameCol,
			DateCol:        SourceDateCol,
			EntryCol:       SourceEntryCol,
			ExitCol:        SourceExitCol,
			NetDurationCol: SourceNetDurationCol,
		},
		Template: TemplateLayout{
			NameCell:          TemplateNameCell,
			DateColumn:        TemplateDateColumn,
			EntryColumn:       TemplateEntryColumn,
			ExitColumn:        TemplateExitColumn,
			NetDurationColumn: TemplateNetDurationColumn,
			FirstRow:          TemplateFirstRow,
			LastRow:           TemplateLastRow,
		},
		Filter: FilterConfig{
			ExcludedKeywords: append([]string(nil), DefaultExcludedKeywords...),
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
	}
}
