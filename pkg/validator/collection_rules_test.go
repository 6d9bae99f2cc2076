package validator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestListOf(t *testing.T) {
	t.Parallel()

	list := validator.ListOf(validator.NewField(
		validator.Required(),
		validator.TypeCheck(validator.TypeInt, ""),
		validator.Max(10),
	))

	t.Run("payload stays index-aligned", func(t *testing.T) {
		p := validator.Apply([]any{1, 20, 3, "x"}, list)
		require.NotNil(t, p)
		require.Len(t, p.Items, 4)
		assert.Nil(t, p.Item(0))
		assert.Equal(t, []string{"Must be at most 10"}, p.Item(1).Messages())
		assert.Nil(t, p.Item(2))
		assert.Equal(t, []string{"Must be int"}, p.Item(3).Messages())
	})

	t.Run("clean list", func(t *testing.T) {
		assert.Nil(t, validator.Apply([]int{1, 2, 3}, list))
		assert.Nil(t, validator.Apply([]any{}, list))
	})

	t.Run("null element hits required", func(t *testing.T) {
		p := validator.Apply([]any{nil}, list)
		require.NotNil(t, p)
		assert.Equal(t, []string{"Required"}, p.Item(0).Messages())
	})

	t.Run("non-sequence", func(t *testing.T) {
		assert.Equal(t, []string{"Must be list"}, validator.Apply("abc", list).Messages())
	})

	t.Run("json keeps nulls for clean positions", func(t *testing.T) {
		raw, err := json.Marshal(validator.Apply([]any{1, 20}, list))
		require.NoError(t, err)
		assert.JSONEq(t, `[null, ["Must be at most 10"]]`, string(raw))
	})
}

func TestMapOf(t *testing.T) {
	t.Parallel()

	dict := validator.MapOf(
		validator.NewField(validator.TypeCheck(validator.TypeInt, "")),
		validator.NewField(validator.Regex(`[a-z]+`, "Bad key")),
	)

	p := validator.Apply(map[string]any{"ok": 1, "Bad": "x", "fine": "y"}, dict)
	require.NotNil(t, p)
	assert.Len(t, p.Keys, 2)
	assert.Nil(t, p.Key("ok"))
	assert.Equal(t, []string{"Bad key", "Must be int"}, p.Key("Bad").Messages())
	assert.Equal(t, []string{"Must be int"}, p.Key("fine").Messages())

	assert.Nil(t, validator.Apply(map[string]int{"a": 1}, dict))
	assert.Equal(t, []string{"Must be mapping"}, validator.Apply([]any{1}, dict).Messages())

	t.Run("without key field", func(t *testing.T) {
		values := validator.MapOf(validator.NewField(validator.Required()), nil)
		p := validator.Apply(map[string]any{"a": ""}, values)
		require.NotNil(t, p)
		assert.Equal(t, []string{"Required"}, p.Key("a").Messages())
	})
}

func TestTupleOf(t *testing.T) {
	t.Parallel()

	pair := validator.TupleOf(
		validator.NewField(validator.Required(), validator.TypeCheck(validator.TypeString, "")),
		validator.NewField(validator.Required(), validator.TypeCheck(validator.TypeInt, "")),
	)

	assert.Nil(t, validator.Apply([]any{"a", 1}, pair))
	assert.Nil(t, validator.Apply([]any{"a", 1, "extra"}, pair))

	p := validator.Apply([]any{1}, pair)
	require.NotNil(t, p)
	require.Len(t, p.Items, 2)
	assert.Equal(t, []string{"Must be string"}, p.Item(0).Messages())
	assert.Equal(t, []string{"Required"}, p.Item(1).Messages())
}

func TestEither(t *testing.T) {
	t.Parallel()

	either := validator.Either(
		validator.NewField(validator.TypeCheck(validator.TypeInt, "")),
		validator.NewField(validator.TypeCheck(validator.TypeString, ""), validator.UUID()),
	)

	t.Run("passes when one alternative is clean", func(t *testing.T) {
		assert.Nil(t, validator.Apply(7, either))
		assert.Nil(t, validator.Apply("9b2f64b0-36c1-4ad1-8d55-0c77b9b1a1f1", either))
	})

	t.Run("fails with every alternative's errors", func(t *testing.T) {
		p := validator.Apply("nope", either)
		require.NotNil(t, p)
		assert.Empty(t, p.Items)
		require.Len(t, p.Alternatives, 2)
		assert.Equal(t, []string{"Must be int"}, p.Alternative(0).Messages())
		assert.Equal(t, []string{"Must be a valid UUID"}, p.Alternative(1).Messages())

		raw, err := json.Marshal(p)
		require.NoError(t, err)
		assert.JSONEq(t, `{"_either":[["Must be int"],["Must be a valid UUID"]]}`, string(raw))
		assert.Equal(t, "<either 0>: Must be int; <either 1>: Must be a valid UUID", p.String())
	})

	t.Run("branches stay apart from list elements", func(t *testing.T) {
		p := validator.Apply([]any{"a", 1},
			validator.ListOf(validator.NewField(validator.TypeCheck(validator.TypeInt, ""))),
			validator.Either(
				validator.NewField(validator.TypeCheck(validator.TypeString, "")),
				validator.NewField(validator.TypeCheck(validator.TypeBool, "")),
			),
		)
		require.NotNil(t, p)
		require.Len(t, p.Items, 2)
		assert.Nil(t, p.Item(1))

		tree := validator.Tree{"xs": p}
		assert.Equal(t, []validator.PathError{
			{Path: "xs[0]", Messages: []string{"Must be int"}},
			{Path: "xs<either 0>", Messages: []string{"Must be string"}},
			{Path: "xs<either 1>", Messages: []string{"Must be bool"}},
		}, tree.Flatten())
		assert.Nil(t, tree.Messages("xs[1]"))

		raw, err := json.Marshal(tree)
		require.NoError(t, err)
		assert.JSONEq(t, `{"xs":{"_items":[["Must be int"],null],"_either":[["Must be string"],["Must be bool"]]}}`, string(raw))
	})

	t.Run("no alternatives", func(t *testing.T) {
		assert.Nil(t, validator.Apply("x", validator.Either()))
	})
}

func TestTree(t *testing.T) {
	t.Parallel()

	node := validator.NewField(validator.TypeCheck(validator.TypeInt, ""), validator.Max(10))
	children := validator.ListOf(validator.NewField(validator.MapOf(node, nil)))

	p := validator.Apply([]any{map[string]any{"id": 1}, map[string]any{"id": 99}}, children)
	require.NotNil(t, p)

	tree := validator.Tree{"children": p, "name": {Errors: []*validator.ValidationError{
		validator.NewError(validator.KindRequired, validator.KeyRequired, nil),
	}}}

	assert.True(t, tree.Has("children"))
	assert.False(t, tree.Has("missing"))
	assert.Equal(t, []string{"Required"}, tree.Get("name"))
	assert.Equal(t, []string{"children", "name"}, tree.Fields())
	assert.Equal(t, []string{"Must be at most 10"}, tree.Messages("children[1].id"))
	assert.Equal(t, []validator.PathError{
		{Path: "children[1].id", Messages: []string{"Must be at most 10"}},
		{Path: "name", Messages: []string{"Required"}},
	}, tree.Flatten())
	assert.Equal(t, "validation failed: children[1].id: Must be at most 10; name: Required", tree.Error())

	var err error = tree
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.True(t, validator.IsValidationError(err))
	assert.Equal(t, tree, validator.ExtractTree(err))
	assert.Nil(t, validator.ExtractTree(assert.AnError))

	raw, jerr := json.Marshal(tree)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"children":[null,{"id":["Must be at most 10"]}],"name":["Required"]}`, string(raw))
}

func TestPayload_MixedJSON(t *testing.T) {
	t.Parallel()

	p := &validator.Payload{}
	p.Add(validator.NewError(validator.KindType, validator.KeyType, map[string]any{"type": "list"}))
	p.Add(validator.NestedError(&validator.Payload{Items: []*validator.Payload{nil, {
		Errors: []*validator.ValidationError{validator.NewError(validator.KindRequired, validator.KeyRequired, nil)},
	}}}))

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_messages":["Must be list"],"_items":[null,["Required"]]}`, string(raw))
	assert.Equal(t, "Must be list; [1]: Required", p.String())
}
