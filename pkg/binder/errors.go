package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrBodyTooLarge         = errors.New("request body too large")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON document")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML document")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrNotAnObject          = errors.New("document must be an object")
	ErrFailedToReadFile     = errors.New("failed to read document file")
)
