// Package schemafile compiles declarative YAML schema documents into a
// form.Registry.
//
// A document maps schema names to their fields. Field declarations name a
// type and optional rules; nested types (list, dict, tuple, either) declare
// their element fields inline, and "form" fields reference another schema by
// name or the enclosing schema with "self":
//
//	schemas:
//	  Contact:
//	    fields:
//	      kind: {type: choice, choices: [email, phone], required: true}
//	      email: {type: string, required_if: {field: kind, equals: email}, pattern: '[^@]+@[^@]+'}
//	      phone: {type: string, required_if: {field: kind, equals: phone}}
//	  Person:
//	    fields:
//	      name: {type: string, required: true, max_length: 64}
//	      contacts: {type: list, item: {type: form, ref: Contact}}
//	  Employee:
//	    extends: Person
//	    fields:
//	      id: uuid
//
// Supported types: any, string, int, float, bool, datetime, uuid, path,
// paths, choice, list, dict, tuple, either, form. Rules run after the type
// check in the order required, required_if, min/max, min_length/max_length,
// pattern. All schemas of a document are registered together or not at all.
package schemafile
