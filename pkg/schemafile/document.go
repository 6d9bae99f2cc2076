package schemafile

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is a parsed schema file:
//
//	schemas:
//	  Item:
//	    fields:
//	      amount: {type: int, required: true, min: 1, max: 10}
//	      label: {type: string, required: true, min_length: 1, max_length: 16}
//	  Node:
//	    fields:
//	      id: {type: int, required: true, max: 10}
//	      children: {type: list, item: {type: form, ref: self}}
//
// Schemas and fields keep their document order.
type Document struct {
	Schemas SchemaList `yaml:"schemas"`
}

// SchemaList is an ordered list of schema declarations.
type SchemaList []SchemaSpec

// SchemaSpec declares one schema.
type SchemaSpec struct {
	Name    string    `yaml:"-"`
	Extends string    `yaml:"extends"`
	Fields  FieldList `yaml:"fields"`
	Line    int       `yaml:"-"`
}

// FieldList is an ordered list of named field declarations.
type FieldList []NamedField

type NamedField struct {
	Name string
	Spec FieldSpec
}

// FieldSpec declares a field. A bare scalar is shorthand for its type,
// e.g. "name: string".
type FieldSpec struct {
	Type       string      `yaml:"type"`
	Required   bool        `yaml:"required"`
	RequiredIf *Condition  `yaml:"required_if"`
	Min        *float64    `yaml:"min"`
	Max        *float64    `yaml:"max"`
	MinLength  *int        `yaml:"min_length"`
	MaxLength  *int        `yaml:"max_length"`
	Choices    []any       `yaml:"choices"`
	Pattern    string      `yaml:"pattern"`
	Message    string      `yaml:"message"`
	Item       *FieldSpec  `yaml:"item"`
	Key        *FieldSpec  `yaml:"key"`
	Value      *FieldSpec  `yaml:"value"`
	Items      []FieldSpec `yaml:"items"`
	AnyOf      []FieldSpec `yaml:"any_of"`
	Ref        string      `yaml:"ref"`
	Line       int         `yaml:"-"`
}

// Condition selects when a conditional rule applies, based on a sibling field.
// In takes precedence over Present, and Present over Equals.
type Condition struct {
	Field   string `yaml:"field"`
	Equals  any    `yaml:"equals"`
	In      []any  `yaml:"in"`
	Present bool   `yaml:"present"`
	Not     bool   `yaml:"not"`
}

// Parse decodes a schema document.
func Parse(content []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		if errors.Is(err, ErrInvalidDocument) {
			return nil, err
		}
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	if len(doc.Schemas) == 0 {
		return nil, fmt.Errorf("%w: no schemas declared", ErrInvalidDocument)
	}
	return &doc, nil
}

func (l *SchemaList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: schemas must be a mapping of name to schema", ErrInvalidDocument, node.Line)
	}
	out := make(SchemaList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var spec SchemaSpec
		if err := val.Decode(&spec); err != nil {
			return err
		}
		spec.Name = key.Value
		spec.Line = key.Line
		out = append(out, spec)
	}
	*l = out
	return nil
}

func (l *FieldList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: fields must be a mapping of name to field", ErrInvalidDocument, node.Line)
	}
	out := make(FieldList, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var spec FieldSpec
		if err := val.Decode(&spec); err != nil {
			return err
		}
		out = append(out, NamedField{Name: key.Value, Spec: spec})
	}
	*l = out
	return nil
}

func (s *FieldSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = FieldSpec{Type: node.Value, Line: node.Line}
		return nil
	case yaml.MappingNode:
		type plain FieldSpec
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*s = FieldSpec(p)
		s.Line = node.Line
		return nil
	}
	return fmt.Errorf("%w: line %d: field must be a type name or a mapping", ErrInvalidDocument, node.Line)
}
