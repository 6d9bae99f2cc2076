// Package form declares schemas and validates input mappings against them.
//
// A Schema is a named, ordered set of fields, each a validator.Field chain.
// Schemas may embed other schemas through a Ref: Direct for a definition at
// hand, Registry.Ref for a name registered now or later, and Self for the
// schema of whichever form is validating when the embedded value is checked.
// Self is what makes tree-shaped data possible:
//
//	node := form.MustDefine("Node",
//		form.Field("id", form.Int(validator.Required(), validator.Max(10))),
//		form.Field("children", form.List(form.Sub(form.Self()))),
//	)
//
// An Instance binds a schema to one input mapping, pruned of undeclared keys.
// Validate attempts every field and returns a validator.Tree describing all
// failures; Data is available only after a successful run:
//
//	inst := form.NewInstance(node, input)
//	if err := inst.Validate(); err != nil {
//		tree := validator.ExtractTree(err) // nil for definition errors
//		...
//	}
//	data := inst.Data()
//
// Definition errors (unknown names, duplicate registrations, self references
// outside a form) are *DefinitionError values. They abort the run and are
// returned from Validate instead of being folded into the error tree.
//
// Each Validate call uses its own validator.Context, so schemas and
// registries may be shared by any number of goroutines.
package form
