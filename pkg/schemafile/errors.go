package schemafile

import "errors"

var (
	ErrInvalidDocument  = errors.New("invalid schema document")
	ErrUnknownType      = errors.New("unknown field type")
	ErrMissingOption    = errors.New("missing field option")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrUnknownBase      = errors.New("unknown base schema")
	ErrCyclicExtends    = errors.New("cyclic schema extension")
	ErrFailedToReadFile = errors.New("failed to read schema file")
)
