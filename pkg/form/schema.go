package form

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// FieldDef pairs a field name with its validator chain.
type FieldDef struct {
	Name  string
	Field *validator.Field
}

// Field declares a named schema slot.
func Field(name string, f *validator.Field) FieldDef {
	return FieldDef{Name: name, Field: f}
}

// Schema is a named, ordered, immutable set of fields.
// Schemas are safe for concurrent use.
type Schema struct {
	name   string
	fields []FieldDef
	index  map[string]int
}

// Define builds a schema. Each field is copied so later changes to the
// caller's validator lists cannot leak into the schema.
func Define(name string, fields ...FieldDef) (*Schema, error) {
	if name == "" {
		return nil, &DefinitionError{Err: ErrEmptyName}
	}

	s := &Schema{
		name:   name,
		fields: make([]FieldDef, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, fd := range fields {
		if err := s.add(fd); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustDefine is Define that panics on a definition error.
func MustDefine(name string, fields ...FieldDef) *Schema {
	s, err := Define(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) add(fd FieldDef) error {
	switch {
	case fd.Name == "":
		return &DefinitionError{Schema: s.name, Err: ErrEmptyName}
	case fd.Field == nil:
		return &DefinitionError{Schema: s.name, Err: fmt.Errorf("%w: %q", ErrNilField, fd.Name)}
	}
	if _, dup := s.index[fd.Name]; dup {
		return &DefinitionError{Schema: s.name, Err: fmt.Errorf("%w: %q", ErrDuplicateField, fd.Name)}
	}
	s.index[fd.Name] = len(s.fields)
	s.fields = append(s.fields, FieldDef{Name: fd.Name, Field: fd.Field.Copy()})
	return nil
}

// Extend derives a new schema named name from s. Fields keep s's order;
// a field with an existing name replaces it in place, new fields are appended.
func (s *Schema) Extend(name string, fields ...FieldDef) (*Schema, error) {
	base := make([]FieldDef, len(s.fields))
	copy(base, s.fields)

	var extra []FieldDef
	for _, fd := range fields {
		if i, ok := s.index[fd.Name]; ok {
			base[i] = fd
			continue
		}
		extra = append(extra, fd)
	}
	return Define(name, append(base, extra...)...)
}

func (s *Schema) Name() string {
	return s.name
}

// FieldNames returns field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, fd := range s.fields {
		names[i] = fd.Name
	}
	return names
}

// Fields returns the field definitions in declaration order.
func (s *Schema) Fields() []FieldDef {
	out := make([]FieldDef, len(s.fields))
	copy(out, s.fields)
	return out
}

// Field returns the validator chain of a declared field.
func (s *Schema) Field(name string) (*validator.Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Field, true
}

func (s *Schema) Len() int {
	return len(s.fields)
}

// Prune returns a shallow copy of data holding only declared keys.
// The input is never modified.
func (s *Schema) Prune(data map[string]any) map[string]any {
	out := make(map[string]any, len(s.fields))
	for _, fd := range s.fields {
		if v, ok := data[fd.Name]; ok {
			out[fd.Name] = v
		}
	}
	return out
}

// validate runs every field against data with f as the current frame.
// All fields are attempted; only a fatal context error stops the loop.
func (s *Schema) validate(vc *validator.Context, f validator.Frame, data map[string]any) (validator.Tree, error) {
	release, err := vc.Push(f)
	if err != nil {
		return nil, err
	}
	defer release()

	tree := validator.Tree{}
	for _, fd := range s.fields {
		p := fd.Field.Run(vc, data[fd.Name])
		if err := vc.Err(); err != nil {
			return nil, err
		}
		if p != nil {
			tree[fd.Name] = p
		}
	}
	return tree, nil
}

// frame is the context frame of a nested form.
type frame struct {
	schema *Schema
	data   map[string]any
}

func (f *frame) Name() string    { return f.schema.name }
func (f *frame) Schema() *Schema { return f.schema }

func (f *frame) Get(field string) (any, bool) {
	v, ok := f.data[field]
	return v, ok
}
