package form

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrDuplicateField  = errors.New("duplicate field")
	ErrNilField        = errors.New("field must not be nil")
	ErrDuplicateSchema = errors.New("duplicate schema name")
	ErrSchemaNotFound  = errors.New("schema not found")
	ErrNilSchema       = errors.New("schema must not be nil")
	ErrSelfOutsideForm = errors.New("self reference resolved outside of a validating form")
	ErrNotValid        = errors.New("form is not valid")
)

// DefinitionError reports a mistake in schema declaration. It is never a data
// error: a run that hits one is aborted and the error is returned as is.
type DefinitionError struct {
	Schema string // schema being defined or validated, if known
	Ref    string // unresolved reference, if any
	Err    error
}

func (e *DefinitionError) Error() string {
	msg := "form definition error"
	if e.Schema != "" {
		msg += fmt.Sprintf(" in schema %q", e.Schema)
	}
	if e.Ref != "" {
		msg += fmt.Sprintf(" resolving %s", e.Ref)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// IsDefinitionError reports whether err is or wraps a *DefinitionError.
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}
