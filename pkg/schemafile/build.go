package schemafile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// SelfRef is the ref value naming the schema that contains the field.
const SelfRef = "self"

// Build compiles every schema of the document and registers them in r.
// Every named reference must point at a schema of the document or one
// already in r. Nothing is registered unless the whole document builds.
func (d *Document) Build(r *form.Registry) error {
	b := &builder{
		reg:      r,
		specs:    make(map[string]*SchemaSpec, len(d.Schemas)),
		built:    make(map[string]*form.Schema, len(d.Schemas)),
		visiting: make(map[string]bool),
	}
	for i := range d.Schemas {
		spec := &d.Schemas[i]
		if _, dup := b.specs[spec.Name]; dup {
			return &form.DefinitionError{Schema: spec.Name, Err: form.ErrDuplicateSchema}
		}
		if _, err := r.Lookup(spec.Name); err == nil {
			return &form.DefinitionError{Schema: spec.Name, Err: form.ErrDuplicateSchema}
		}
		b.specs[spec.Name] = spec
	}

	schemas := make([]*form.Schema, 0, len(d.Schemas))
	for _, spec := range d.Schemas {
		s, err := b.schema(spec.Name)
		if err != nil {
			return err
		}
		schemas = append(schemas, s)
	}

	for _, ref := range b.refs {
		if err := b.check(ref); err != nil {
			return err
		}
	}
	for _, ref := range b.refs {
		ref.target = r.Ref(ref.name)
	}
	return r.Register(schemas...)
}

type builder struct {
	reg      *form.Registry
	specs    map[string]*SchemaSpec
	built    map[string]*form.Schema
	visiting map[string]bool
	current  string
	refs     []*docRef
}

// docRef is a named reference that is bound to the registry only after
// the document has been checked, so a failed build leaves no trace in it.
type docRef struct {
	schema string
	name   string
	target form.Ref
}

func (r *docRef) Resolve(vc *validator.Context) (*form.Schema, error) {
	if r.target == nil {
		return nil, &form.DefinitionError{Schema: r.schema, Ref: r.String(), Err: form.ErrSchemaNotFound}
	}
	return r.target.Resolve(vc)
}

func (r *docRef) String() string {
	return fmt.Sprintf("ref(%q)", r.name)
}

func (b *builder) check(ref *docRef) error {
	if _, ok := b.built[ref.name]; ok {
		return nil
	}
	if _, err := b.reg.Lookup(ref.name); err != nil {
		return &form.DefinitionError{Schema: ref.schema, Ref: ref.String(), Err: form.ErrSchemaNotFound}
	}
	return nil
}

func (b *builder) schema(name string) (*form.Schema, error) {
	if s, ok := b.built[name]; ok {
		return s, nil
	}
	spec, ok := b.specs[name]
	if !ok {
		// Bases may come from schemas registered earlier.
		s, err := b.reg.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBase, name)
		}
		return s, nil
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("%w: %q", ErrCyclicExtends, name)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)
	defer func(prev string) { b.current = prev }(b.current)
	b.current = name

	defs := make([]form.FieldDef, 0, len(spec.Fields))
	for _, nf := range spec.Fields {
		f, err := b.field(&nf.Spec)
		if err != nil {
			return nil, fmt.Errorf("schema %q field %q: %w", name, nf.Name, err)
		}
		defs = append(defs, form.Field(nf.Name, f))
	}

	var (
		s   *form.Schema
		err error
	)
	if spec.Extends != "" {
		base, berr := b.schema(spec.Extends)
		if berr != nil {
			return nil, fmt.Errorf("schema %q: %w", name, berr)
		}
		s, err = base.Extend(name, defs...)
	} else {
		s, err = form.Define(name, defs...)
	}
	if err != nil {
		return nil, err
	}
	b.built[name] = s
	return s, nil
}

func (b *builder) field(spec *FieldSpec) (*validator.Field, error) {
	extra, err := b.rules(spec)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(spec.Type) {
	case "", "any":
		return validator.NewField(extra...), nil
	case "string", "text":
		return form.Text(extra...), nil
	case "int", "integer":
		return form.Int(extra...), nil
	case "float", "decimal", "number":
		return form.Float(extra...), nil
	case "bool", "boolean":
		return form.Bool(extra...), nil
	case "datetime", "date":
		return form.DateTime(extra...), nil
	case "uuid":
		return form.UUID(extra...), nil
	case "path":
		return form.StringList(extra...), nil
	case "paths":
		return form.Paths(extra...), nil
	case "choice":
		if len(spec.Choices) == 0 {
			return nil, b.missing(spec, "choices")
		}
		return form.Choice(spec.Choices, extra...), nil
	case "list":
		if spec.Item == nil {
			return nil, b.missing(spec, "item")
		}
		item, err := b.field(spec.Item)
		if err != nil {
			return nil, err
		}
		return form.List(item, extra...), nil
	case "dict", "map":
		if spec.Value == nil {
			return nil, b.missing(spec, "value")
		}
		value, err := b.field(spec.Value)
		if err != nil {
			return nil, err
		}
		var key *validator.Field
		if spec.Key != nil {
			if key, err = b.field(spec.Key); err != nil {
				return nil, err
			}
		}
		return form.Dict(value, key, extra...), nil
	case "tuple":
		if len(spec.Items) == 0 {
			return nil, b.missing(spec, "items")
		}
		fields, err := b.fields(spec.Items)
		if err != nil {
			return nil, err
		}
		return form.Tuple(fields, extra...), nil
	case "either":
		if len(spec.AnyOf) == 0 {
			return nil, b.missing(spec, "any_of")
		}
		alternatives, err := b.fields(spec.AnyOf)
		if err != nil {
			return nil, err
		}
		return form.Either(alternatives, extra...), nil
	case "form", "sub":
		if spec.Ref == "" {
			return nil, b.missing(spec, "ref")
		}
		return form.Sub(b.ref(spec.Ref), extra...), nil
	}
	return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownType, spec.Line, spec.Type)
}

func (b *builder) fields(specs []FieldSpec) ([]*validator.Field, error) {
	out := make([]*validator.Field, 0, len(specs))
	for i := range specs {
		f, err := b.field(&specs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (b *builder) ref(name string) form.Ref {
	if name == SelfRef {
		return form.Self()
	}
	ref := &docRef{schema: b.current, name: name}
	b.refs = append(b.refs, ref)
	return ref
}

// rules builds the validators that follow the type check, in a fixed order:
// presence, bounds, length, pattern.
func (b *builder) rules(spec *FieldSpec) ([]validator.Validator, error) {
	var vs []validator.Validator
	if spec.Required {
		vs = append(vs, validator.Required())
	}
	if spec.RequiredIf != nil {
		pred, err := spec.RequiredIf.predicate()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", spec.Line, err)
		}
		vs = append(vs, validator.RequiredIf(pred))
	}
	if spec.Min != nil || spec.Max != nil {
		vs = append(vs, validator.NumRange(spec.Min, spec.Max))
	}
	if spec.MinLength != nil || spec.MaxLength != nil {
		vs = append(vs, validator.LengthRange(spec.MinLength, spec.MaxLength))
	}
	if spec.Pattern != "" {
		if _, err := validator.CompilePattern(spec.Pattern); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: line %d: %q", ErrInvalidPattern, spec.Line, spec.Pattern), err)
		}
		vs = append(vs, validator.Regex(spec.Pattern, spec.Message))
	}
	return vs, nil
}

func (b *builder) missing(spec *FieldSpec, option string) error {
	return fmt.Errorf("%w: line %d: type %q requires %q", ErrMissingOption, spec.Line, spec.Type, option)
}

func (c *Condition) predicate() (validator.Predicate, error) {
	if c.Field == "" {
		return nil, fmt.Errorf("%w: condition requires \"field\"", ErrMissingOption)
	}

	var pred validator.Predicate
	switch {
	case len(c.In) > 0:
		pred = validator.FieldIn(c.Field, c.In...)
	case c.Present:
		pred = validator.FieldPresent(c.Field)
	default:
		pred = validator.FieldEquals(c.Field, c.Equals)
	}
	if c.Not {
		pred = validator.Not(pred)
	}
	return pred, nil
}
