// Package ast defines the intermediate form of a specification document.
//
// The intermediate form sits between the raw JSON object tree and the
// canonical service model. It is deliberately permissive: names, types, and
// methods that the canonical model requires are all optional here, because
// the document has not yet been proven well-formed. The validation rules
// consume this form read-only and report everything wrong with it in a
// single pass; only a clean form is handed to the service builder.
//
// Declarations that appear as JSON objects keyed by name (enums, unions,
// models, resources, responses) are materialized as slices sorted by key so
// that every traversal over the form is stable and validation output is
// reproducible.
package ast
