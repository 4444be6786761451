package ingest

import "orderflow/internal/errors"

var (
	// ErrUnopenableInput is returned when the input file cannot be opened.
	ErrUnopenableInput = errors.New("input file not openable")
	// ErrMalformedJSON is returned when a line is not valid JSON.
	ErrMalformedJSON = errors.New("malformed json line")
	// ErrUnknownRecordShape is returned when a line is valid JSON but
	// contains neither a "book" nor a "trade" object.
	ErrUnknownRecordShape = errors.New("unknown record shape")
)
