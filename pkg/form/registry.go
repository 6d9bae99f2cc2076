package form

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Registry maps schema names to definitions. Names are unique and enumeration
// follows registration order. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	schemas []*Schema
	byName  map[string]*Schema
	refs    []*namedRef
	opts    options
	log     *slog.Logger
}

// NewRegistry creates an empty registry. Instances it creates inherit its options.
func NewRegistry(opts ...Option) *Registry {
	o := newOptions(opts...)
	return &Registry{
		byName: make(map[string]*Schema),
		opts:   o,
		log:    o.logger.With(logger.Component("form.registry")),
	}
}

// Register adds schemas. Registering a name twice is a definition error;
// nothing is registered when any schema is rejected.
func (r *Registry) Register(schemas ...*Schema) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]struct{}, len(schemas))
	for _, s := range schemas {
		if s == nil {
			return &DefinitionError{Err: ErrNilSchema}
		}
		_, taken := r.byName[s.name]
		_, repeated := seen[s.name]
		if taken || repeated {
			return &DefinitionError{Schema: s.name, Err: ErrDuplicateSchema}
		}
		seen[s.name] = struct{}{}
	}

	for _, s := range schemas {
		r.schemas = append(r.schemas, s)
		r.byName[s.name] = s
		r.log.Debug("schema registered", logger.Schema(s.name), logger.Count("fields", s.Len()))
	}
	return nil
}

// MustRegister is Register that panics on a definition error.
func (r *Registry) MustRegister(schemas ...*Schema) {
	if err := r.Register(schemas...); err != nil {
		panic(err)
	}
}

// Lookup returns the schema registered under name.
func (r *Registry) Lookup(name string) (*Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	return s, nil
}

// Schemas returns registered schemas in registration order.
func (r *Registry) Schemas() []*Schema {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Schema, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// Names returns registered schema names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.schemas))
	for i, s := range r.schemas {
		out[i] = s.name
	}
	return out
}

// Ref returns a lazy reference to the schema registered under name.
// The name need not be registered yet; Check verifies every such reference.
func (r *Registry) Ref(name string) Ref {
	ref := &namedRef{registry: r, name: name}

	r.mu.Lock()
	r.refs = append(r.refs, ref)
	r.mu.Unlock()

	return ref
}

// Check resolves every reference created by Ref and reports all that fail.
// Call it once all schemas are registered so that dangling names fail at
// startup rather than on first use.
func (r *Registry) Check() error {
	r.mu.RLock()
	refs := make([]*namedRef, len(r.refs))
	copy(refs, r.refs)
	r.mu.RUnlock()

	var errs []error
	for _, ref := range refs {
		if _, err := ref.Resolve(nil); err != nil {
			r.log.Warn("unresolved schema reference", logger.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// New creates an instance of the named schema bound to data.
func (r *Registry) New(name string, data map[string]any) (*Instance, error) {
	s, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return NewInstance(s, data, r.opts.apply()...), nil
}

// Validate validates data against the named schema and returns the pruned
// data, or the error tree, or a definition error.
func (r *Registry) Validate(name string, data map[string]any) (map[string]any, error) {
	inst, err := r.New(name, data)
	if err != nil {
		return nil, err
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst.Data(), nil
}
