package cvs

import "errors"

var (
	// ErrNotFound indicates a CV record was not found.
	ErrNotFound = errors.New("cv not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFile indicates the upload is not a supported document type.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
