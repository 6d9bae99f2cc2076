package form

import (
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

var mappingError = validator.NewError(validator.KindType, validator.KeyType, map[string]any{"type": string(validator.TypeMapping)})

// Embed validates a mapping value as an instance of the referenced schema.
// The reference is resolved each time the validator runs, against the
// context of the run. On failure the payload is the nested form's own
// error tree. Resolution failures abort the whole run. A mapping left
// empty once undeclared keys are pruned counts as empty and passes.
func Embed(ref Ref) validator.Validator {
	return validator.Func(func(vc *validator.Context, value any) *validator.ValidationError {
		if validator.IsEmpty(value) || vc.Err() != nil {
			return nil
		}

		schema, err := ref.Resolve(vc)
		if err != nil {
			vc.Logger().Error("schema reference not resolved", logger.Error(err), logger.Depth(vc.Depth()))
			vc.Abort(err)
			return nil
		}

		m, ok := validator.AsMapping(value)
		if !ok {
			e := *mappingError
			return &e
		}

		data := schema.Prune(m)
		if len(data) == 0 {
			return nil
		}
		tree, err := schema.validate(vc, &frame{schema: schema, data: data}, data)
		if err != nil {
			vc.Abort(err)
			return nil
		}
		if tree.IsEmpty() {
			return nil
		}
		return validator.NestedError(tree.Payload())
	})
}
