// Package validator provides the validation core: composable validators,
// ordered field chains, the per-run validation context, and the
// shape-preserving error payload.
//
// # Validators
//
// A Validator checks one value and returns nil or a *ValidationError.
// Atomic checks are Rule values: a Check function paired with the error it
// reports, carrying a Kind, a rendered Message, and the translation key and
// values used by pkg/i18n. Combinators (If, RequiredIf, ListOf, MapOf,
// TupleOf, Either) wrap Fields and report structural failures through
// NestedError.
//
// Content rules pass on the empty sentinels (nil, "", empty sequence, empty
// mapping); presence is checked only by Required and RequiredIf.
//
// # Fields
//
// A Field runs its validators strictly in declaration order. Every failure
// is captured and the chain continues; the result is a *Payload, or nil when
// the value is valid.
//
//	amount := validator.NewField(
//		validator.Required(),
//		validator.TypeCheck(validator.TypeInt, ""),
//		validator.Between(1, 10),
//	)
//	if p := amount.Run(validator.NewContext(), 11); p != nil {
//		fmt.Println(p.Messages()) // [Must be at most 10]
//	}
//
// # Context
//
// Context is the explicit replacement for a thread-local form stack. Forms
// push a Frame while they validate; conditional validators read sibling
// values from Context.Current. One Context belongs to one validation run.
//
// # Errors
//
// Payloads mirror the shape of the value they describe: leaf messages for
// scalars, index-aligned Items for sequences, Keys for mappings. Failed
// Either branches sit in Alternatives, apart from Items. A form's
// result is a Tree (field name to payload) which implements error and can be
// flattened into value paths such as "children[1].children[0].id".
package validator
