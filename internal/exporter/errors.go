package exporter

import "errors"

var (
	// ErrTemplateUnreadable is returned when the report template cannot be opened
	ErrTemplateUnreadable = errors.New("report template unreadable")

	// ErrArtifactSave is returned when a filled report cannot be written
	ErrArtifactSave = errors.New("report save failed")
)
