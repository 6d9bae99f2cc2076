package form

import (
	"fmt"
	"sync/atomic"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Ref points at the schema of an embedded form. It is resolved when the
// embedding validator runs, not when it is declared.
type Ref interface {
	Resolve(vc *validator.Context) (*Schema, error)
	String() string
}

// schemaFrame is a frame that knows its schema; forms push one while validating.
type schemaFrame interface {
	validator.Frame
	Schema() *Schema
}

type directRef struct {
	schema *Schema
}

// Direct references a schema definition directly.
func Direct(s *Schema) Ref {
	return directRef{schema: s}
}

func (r directRef) Resolve(*validator.Context) (*Schema, error) {
	if r.schema == nil {
		return nil, &DefinitionError{Ref: r.String(), Err: ErrNilSchema}
	}
	return r.schema, nil
}

func (r directRef) String() string {
	if r.schema == nil {
		return "direct(<nil>)"
	}
	return "direct(" + r.schema.name + ")"
}

type selfRef struct{}

// Self references the schema of whichever form is validating when the
// embedding validator runs. It is never cached, so one declaration serves
// every schema that embeds it.
func Self() Ref {
	return selfRef{}
}

func (selfRef) Resolve(vc *validator.Context) (*Schema, error) {
	if sf, ok := vc.Current().(schemaFrame); ok && sf.Schema() != nil {
		return sf.Schema(), nil
	}
	return nil, &DefinitionError{Ref: "self", Err: ErrSelfOutsideForm}
}

func (selfRef) String() string {
	return "self"
}

// namedRef resolves a schema name against its registry on first use,
// so it may name a schema registered later. Only successes are cached.
type namedRef struct {
	registry *Registry
	name     string
	resolved atomic.Pointer[Schema]
}

func (r *namedRef) Resolve(*validator.Context) (*Schema, error) {
	if s := r.resolved.Load(); s != nil {
		return s, nil
	}
	s, err := r.registry.Lookup(r.name)
	if err != nil {
		return nil, &DefinitionError{Ref: r.String(), Err: err}
	}
	r.resolved.Store(s)
	return s, nil
}

func (r *namedRef) String() string {
	return fmt.Sprintf("ref(%q)", r.name)
}
