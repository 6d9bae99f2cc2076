package schemafile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/schemafile"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

const document = `
schemas:
  Item:
    fields:
      amount: {type: int, required: true, min: 1, max: 10}
      label: {type: string, required: true, min_length: 1, max_length: 16}
  Node:
    fields:
      id: {type: int, required: true, max: 10}
      children: {type: list, item: {type: form, ref: self}}
  Person:
    fields:
      name: {type: string, required: true}
      contacts: {type: list, item: {type: form, ref: Contact}}
  Contact:
    fields:
      kind: {type: choice, choices: [email, phone], required: true}
      email: {type: string, required_if: {field: kind, equals: email}, pattern: '[^@]+@[^@]+', message: Invalid email}
      phone: {type: string, required_if: {field: kind, equals: phone}}
  Employee:
    extends: Person
    fields:
      id: uuid
      tags: {type: dict, value: int, key: {type: string, max_length: 3}}
      point: {type: tuple, items: [int, int]}
      ref: {type: either, any_of: [int, {type: string, pattern: '[a-z]+'}]}
`

func load(t *testing.T) *form.Registry {
	t.Helper()
	doc, err := schemafile.Parse([]byte(document))
	require.NoError(t, err)
	r := form.NewRegistry()
	require.NoError(t, doc.Build(r))
	return r
}

func TestParse_KeepsOrder(t *testing.T) {
	t.Parallel()

	doc, err := schemafile.Parse([]byte(document))
	require.NoError(t, err)

	names := make([]string, 0, len(doc.Schemas))
	for _, s := range doc.Schemas {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Item", "Node", "Person", "Contact", "Employee"}, names)

	item := doc.Schemas[0]
	require.Len(t, item.Fields, 2)
	assert.Equal(t, "amount", item.Fields[0].Name)
	assert.Equal(t, "label", item.Fields[1].Name)
	assert.Equal(t, 16, *item.Fields[1].Spec.MaxLength)

	assert.Equal(t, "uuid", doc.Schemas[4].Fields[0].Spec.Type, "scalar shorthand")
}

func TestBuild(t *testing.T) {
	t.Parallel()
	r := load(t)

	t.Run("schemas registered in order", func(t *testing.T) {
		assert.Equal(t, []string{"Item", "Node", "Person", "Contact", "Employee"}, r.Names())
	})

	t.Run("extends keeps base fields first", func(t *testing.T) {
		s, err := r.Lookup("Employee")
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "contacts", "id", "tags", "point", "ref"}, s.FieldNames())
	})

	t.Run("extends replaces base field in place", func(t *testing.T) {
		doc, err := schemafile.Parse([]byte("schemas:\n  A:\n    fields: {x: int, y: int}\n  B:\n    extends: A\n    fields: {x: string, z: bool}"))
		require.NoError(t, err)
		reg := form.NewRegistry()
		require.NoError(t, doc.Build(reg))

		s, err := reg.Lookup("B")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y", "z"}, s.FieldNames())

		_, err = reg.Validate("B", map[string]any{"x": 1})
		assert.Equal(t, []string{"Must be string"}, validator.ExtractTree(err).Get("x"))
	})

	t.Run("item scenario", func(t *testing.T) {
		_, err := r.Validate("Item", map[string]any{"amount": 11, "label": ""})
		tree := validator.ExtractTree(err)
		require.NotNil(t, tree)
		assert.Equal(t, []string{"Must be at most 10"}, tree.Get("amount"))
		assert.Equal(t, []string{"Required"}, tree.Get("label"))

		data, err := r.Validate("Item", map[string]any{"amount": 5, "label": "ok", "extra": true})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"amount": 5, "label": "ok"}, data)
	})

	t.Run("self reference", func(t *testing.T) {
		_, err := r.Validate("Node", map[string]any{
			"id": 1,
			"children": []any{
				map[string]any{"id": 2},
				map[string]any{"id": 3, "children": []any{map[string]any{"id": 11}}},
			},
		})
		tree := validator.ExtractTree(err)
		require.NotNil(t, tree)
		assert.Equal(t, []string{"Must be at most 10"}, tree.Messages("children[1].children[0].id"))
	})

	t.Run("forward reference and conditional rules", func(t *testing.T) {
		_, err := r.Validate("Person", map[string]any{
			"name": "Ann",
			"contacts": []any{
				map[string]any{"kind": "email", "email": "ann@example.com"},
				map[string]any{"kind": "phone", "email": "nope"},
			},
		})
		tree := validator.ExtractTree(err)
		require.NotNil(t, tree)
		assert.Equal(t, []string{"Required"}, tree.Messages("contacts[1].phone"))
		assert.Equal(t, []string{"Invalid email"}, tree.Messages("contacts[1].email"))
	})

	t.Run("collections", func(t *testing.T) {
		_, err := r.Validate("Employee", map[string]any{
			"name":  "Bob",
			"id":    "not-a-uuid",
			"tags":  map[string]any{"ok": 1, "long": "x"},
			"point": []any{1, "y"},
			"ref":   "ABC",
		})
		tree := validator.ExtractTree(err)
		require.NotNil(t, tree)
		assert.Equal(t, []string{"Must be a valid UUID"}, tree.Get("id"))
		assert.Equal(t, []string{"Length must be at most 3", "Must be int"}, tree.Messages("tags.long"))
		assert.Equal(t, []string{"Must be int"}, tree.Messages("point[1]"))
		assert.True(t, tree.Has("ref"))
	})
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		err  error
	}{
		{"no schemas", "schemas: {}", schemafile.ErrInvalidDocument},
		{"schemas not a mapping", "schemas: [a, b]", schemafile.ErrInvalidDocument},
		{"unknown type", "schemas:\n  A:\n    fields:\n      x: money", schemafile.ErrUnknownType},
		{"list without item", "schemas:\n  A:\n    fields:\n      x: list", schemafile.ErrMissingOption},
		{"form without ref", "schemas:\n  A:\n    fields:\n      x: form", schemafile.ErrMissingOption},
		{"choice without choices", "schemas:\n  A:\n    fields:\n      x: choice", schemafile.ErrMissingOption},
		{"bad pattern", "schemas:\n  A:\n    fields:\n      x: {type: string, pattern: '('}", schemafile.ErrInvalidPattern},
		{"unknown base", "schemas:\n  A:\n    extends: B\n    fields:\n      x: int", schemafile.ErrUnknownBase},
		{"cyclic extends", "schemas:\n  A:\n    extends: B\n    fields: {x: int}\n  B:\n    extends: A\n    fields: {y: int}", schemafile.ErrCyclicExtends},
		{"condition without field", "schemas:\n  A:\n    fields:\n      x: {type: int, required_if: {equals: 1}}", schemafile.ErrMissingOption},
		{"unresolved ref", "schemas:\n  A:\n    fields:\n      x: {type: form, ref: Missing}", form.ErrSchemaNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := schemafile.Parse([]byte(tt.doc))
			if err == nil {
				err = doc.Build(form.NewRegistry())
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestBuild_Atomic(t *testing.T) {
	t.Parallel()

	r := form.NewRegistry()
	r.MustRegister(form.MustDefine("A"))

	doc, err := schemafile.Parse([]byte("schemas:\n  B:\n    fields: {x: int}\n  A:\n    fields: {y: int}"))
	require.NoError(t, err)
	assert.ErrorIs(t, doc.Build(r), form.ErrDuplicateSchema)
	assert.Equal(t, []string{"A"}, r.Names(), "nothing registered on failure")

	t.Run("dangling reference", func(t *testing.T) {
		t.Parallel()
		r := form.NewRegistry()
		doc, err := schemafile.Parse([]byte("schemas:\n  Order:\n    fields:\n      customer: {type: form, ref: Customer}\n  Line:\n    fields: {sku: string}"))
		require.NoError(t, err)

		err = doc.Build(r)
		require.ErrorIs(t, err, form.ErrSchemaNotFound)
		var de *form.DefinitionError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "Order", de.Schema)
		assert.Equal(t, `ref("Customer")`, de.Ref)
		assert.Empty(t, r.Names())
		assert.NoError(t, r.Check(), "no reference left behind")
	})

	t.Run("reference to an earlier registered schema", func(t *testing.T) {
		t.Parallel()
		r := form.NewRegistry()
		r.MustRegister(form.MustDefine("Customer", form.Field("id", form.Int(validator.Required()))))
		doc, err := schemafile.Parse([]byte("schemas:\n  Order:\n    fields:\n      customer: {type: form, ref: Customer}"))
		require.NoError(t, err)

		require.NoError(t, doc.Build(r))
		assert.Equal(t, []string{"Customer", "Order"}, r.Names())
		_, verr := r.Validate("Order", map[string]any{"customer": map[string]any{"id": "x"}})
		assert.Equal(t, []string{"Must be int"}, validator.ExtractTree(verr).Messages("customer.id"))
	})
}

func TestLoadRegistry(t *testing.T) {
	t.Parallel()

	t.Run("from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "schemas.yaml")
		require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

		r, err := schemafile.LoadRegistry(path)
		require.NoError(t, err)
		assert.Len(t, r.Names(), 5)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := schemafile.LoadRegistry(filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, schemafile.ErrFailedToReadFile)
	})
}
