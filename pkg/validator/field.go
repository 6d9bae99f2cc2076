package validator

// Field binds an ordered chain of validators to one schema slot.
// Validators run strictly in declaration order; every failure is captured
// and the chain continues. A Field is immutable once built.
type Field struct {
	validators []Validator
}

// NewField creates a field running validators in the given order. Nil validators are dropped.
func NewField(validators ...Validator) *Field {
	f := &Field{validators: make([]Validator, 0, len(validators))}
	for _, v := range validators {
		if v != nil {
			f.validators = append(f.validators, v)
		}
	}
	return f
}

// With returns a new field with validators appended; the receiver is left untouched.
func (f *Field) With(validators ...Validator) *Field {
	out := f.Copy()
	for _, v := range validators {
		if v != nil {
			out.validators = append(out.validators, v)
		}
	}
	return out
}

// Copy returns a field with its own validator list.
func (f *Field) Copy() *Field {
	if f == nil {
		return NewField()
	}
	vs := make([]Validator, len(f.validators))
	copy(vs, f.validators)
	return &Field{validators: vs}
}

// Validators returns a copy of the validator chain.
func (f *Field) Validators() []Validator {
	if f == nil {
		return nil
	}
	vs := make([]Validator, len(f.validators))
	copy(vs, f.validators)
	return vs
}

// Len returns the number of validators in the chain.
func (f *Field) Len() int {
	if f == nil {
		return 0
	}
	return len(f.validators)
}

// Run executes the chain against value and returns the accumulated payload,
// or nil when every validator passed. Execution stops early only when the
// context has been aborted by a definition error.
func (f *Field) Run(vc *Context, value any) *Payload {
	if f == nil {
		return nil
	}
	p := &Payload{}
	for _, v := range f.validators {
		if vc.Err() != nil {
			return nil
		}
		p.Add(v.Validate(vc, value))
	}
	if p.IsEmpty() {
		return nil
	}
	return p
}
