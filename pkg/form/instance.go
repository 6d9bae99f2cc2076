package form

import (
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/statemachine"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Lifecycle states of an Instance.
const (
	StateConstructed = statemachine.StringState("constructed")
	StateValidating  = statemachine.StringState("validating")
	StateValid       = statemachine.StringState("valid")
	StateInvalid     = statemachine.StringState("invalid")
)

const (
	eventStart = statemachine.StringEvent("start")
	eventPass  = statemachine.StringEvent("pass")
	eventFail  = statemachine.StringEvent("fail")
	eventAbort = statemachine.StringEvent("abort")
)

// Instance binds a schema to one input mapping.
// An Instance is not safe for concurrent use; create one per validation.
type Instance struct {
	schema *Schema
	data   map[string]any
	errors validator.Tree
	state  *statemachine.Machine
	opts   options
	log    *slog.Logger
}

// NewInstance binds s to a pruned copy of data. Keys not declared by s are
// dropped silently; data itself is not modified.
func NewInstance(s *Schema, data map[string]any, opts ...Option) *Instance {
	o := newOptions(opts...)
	inst := &Instance{
		schema: s,
		data:   s.Prune(data),
		opts:   o,
		log:    o.logger.With(logger.Schema(s.name)),
	}
	inst.state = statemachine.MustNew(StateConstructed,
		statemachine.WithTransitions(
			statemachine.Transition{From: StateConstructed, To: StateValidating, Event: eventStart},
			statemachine.Transition{From: StateValid, To: StateValidating, Event: eventStart},
			statemachine.Transition{From: StateInvalid, To: StateValidating, Event: eventStart},
			statemachine.Transition{From: StateValidating, To: StateValid, Event: eventPass},
			statemachine.Transition{From: StateValidating, To: StateInvalid, Event: eventFail},
			statemachine.Transition{From: StateValidating, To: StateConstructed, Event: eventAbort},
		),
		statemachine.WithListener(func(from, to statemachine.State, _ statemachine.Event) {
			inst.log.Debug("form state changed", slog.String("from", from.Name()), slog.String("to", to.Name()))
		}),
	)
	return inst
}

// Validate checks every field in declaration order and collects all errors.
// It returns nil when the data is valid, a validator.Tree when it is not,
// and a *DefinitionError (or validator.ErrMaxDepthExceeded) when the schema
// itself is broken. Repeated calls re-run against the same stored input.
func (i *Instance) Validate() error {
	if err := i.state.Fire(eventStart); err != nil {
		return fmt.Errorf("form %q: %w", i.schema.name, err)
	}
	i.errors = nil

	vc := validator.NewContext(
		validator.WithMaxDepth(i.opts.maxDepth),
		validator.WithLogger(i.log),
	)
	tree, err := i.schema.validate(vc, i, i.data)
	if err != nil {
		_ = i.state.Fire(eventAbort)
		i.log.Warn("validation aborted", logger.Error(err))
		return err
	}

	if tree.IsEmpty() {
		_ = i.state.Fire(eventPass)
		return nil
	}

	i.errors = tree
	_ = i.state.Fire(eventFail)
	i.log.Debug("validation failed", logger.Count("fields", len(tree)))
	return tree
}

// Data returns the pruned input once the instance is valid, nil otherwise.
// The returned map is a copy.
func (i *Instance) Data() map[string]any {
	if !i.state.Is(StateValid) {
		return nil
	}
	out := make(map[string]any, len(i.data))
	for k, v := range i.data {
		out[k] = v
	}
	return out
}

// Errors returns the error tree of the last run; nil unless the instance is invalid.
func (i *Instance) Errors() validator.Tree {
	if !i.state.Is(StateInvalid) {
		return nil
	}
	return i.errors
}

func (i *Instance) State() statemachine.State {
	return i.state.Current()
}

func (i *Instance) IsValid() bool {
	return i.state.Is(StateValid)
}

// Name returns the schema name.
func (i *Instance) Name() string {
	return i.schema.name
}

func (i *Instance) Schema() *Schema {
	return i.schema
}

// Get returns a field of the pruned input. Conditional validators read
// sibling values through it while the instance is validating.
func (i *Instance) Get(field string) (any, bool) {
	v, ok := i.data[field]
	return v, ok
}

// Decode copies the validated data into target, a pointer to a struct or map.
// Struct fields are matched by their `form` tag, falling back to the field name.
// Date time strings decode into time.Time fields.
func (i *Instance) Decode(target any) error {
	if !i.state.Is(StateValid) {
		return fmt.Errorf("form %q: %w", i.schema.name, ErrNotValid)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "form",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(dateTimeHook),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("form %q: create decoder: %w", i.schema.name, err)
	}
	if err := dec.Decode(i.data); err != nil {
		return fmt.Errorf("form %q: decode: %w", i.schema.name, err)
	}
	return nil
}

var timeType = reflect.TypeOf(time.Time{})

// dateTimeHook decodes date time strings with the layouts the DateTime rule accepts.
func dateTimeHook(from, to reflect.Type, data any) (any, error) {
	if to != timeType || from.Kind() != reflect.String {
		return data, nil
	}
	return validator.ParseDateTime(data)
}
