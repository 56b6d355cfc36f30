package batch

import "errors"

var (
	// ErrMissingColumn is returned when the source column is absent from the header.
	ErrMissingColumn = errors.New("column not found")
	// ErrNoHeader is returned when the input CSV is empty.
	ErrNoHeader = errors.New("input has no header row")
)
