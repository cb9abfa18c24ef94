package jobs

import "errors"

var (
	// ErrNotFound indicates the job was not found.
	ErrNotFound = errors.New("job not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
