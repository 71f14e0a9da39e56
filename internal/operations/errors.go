package operations

import (
	"errors"
	"fmt"
	"strings"

	"attendancecli/internal/exporter"
)

// ErrorType represents the type of operation error
type ErrorType string

const (
	ErrorTypeSourceUnreadable   ErrorType = "source_unreadable"
	ErrorTypeTemplateUnreadable ErrorType = "template_unreadable"
	ErrorTypeProjection         ErrorType = "projection"
	ErrorTypeSave               ErrorType = "save"
	ErrorTypeValidation         ErrorType = "validation"
)

// Steps of a batch run, used in errors, logs and span names
const (
	StepValidate  = "validate"
	StepExtract   = "extract"
	StepSummarize = "summarize"
	StepProject   = "project"
)

// OperationError represents a batch error, scoped to one employee when
// Employee is set
type OperationError struct {
	Type     ErrorType `json:"type"`
	Step     string    `json:"step,omitempty"`
	Employee string    `json:"employee,omitempty"`
	Message  string    `json:"message"`
	Cause    error     `json:"-"`
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e == nil {
		return "unknown operation error"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s]", e.Type)
	if e.Step != "" {
		fmt.Fprintf(&b, " %s", e.Step)
	}
	if e.Employee != "" {
		fmt.Fprintf(&b, " (%s)", e.Employee)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(step, message string) *OperationError {
	return &OperationError{
		Type:    ErrorTypeValidation,
		Step:    step,
		Message: message,
	}
}

// NewSourceError reports that the punch export could not be read
func NewSourceError(step string, cause error) *OperationError {
	return &OperationError{
		Type:    ErrorTypeSourceUnreadable,
		Step:    step,
		Message: "source export unreadable",
		Cause:   cause,
	}
}

// NewEmployeeError classifies a failure to produce one employee's report
func NewEmployeeError(employee string, cause error) *OperationError {
	e := &OperationError{
		Type:     ErrorTypeProjection,
		Step:     StepProject,
		Employee: employee,
		Message:  "report generation failed",
		Cause:    cause,
	}

	switch {
	case errors.Is(cause, exporter.ErrTemplateUnreadable):
		e.Type = ErrorTypeTemplateUnreadable
		e.Message = "report template unreadable"
	case errors.Is(cause, exporter.ErrArtifactSave):
		e.Type = ErrorTypeSave
		e.Message = "report could not be saved"
	}

	return e
}

// GetErrorType returns the type of the error, or "" when err carries none
func GetErrorType(err error) ErrorType {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Type
	}
	return ""
}

// IsType reports whether err is an OperationError of type t
func IsType(err error, t ErrorType) bool {
	return err != nil && GetErrorType(err) == t
}
