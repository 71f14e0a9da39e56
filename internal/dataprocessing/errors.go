package dataprocessing

import "errors"

var (
	// ErrSourceUnreadable is returned when the punch export cannot be opened or read
	ErrSourceUnreadable = errors.New("source export unreadable")

	// ErrNoSheet is returned for a workbook without any worksheet
	ErrNoSheet = errors.New("workbook has no worksheet")
)
