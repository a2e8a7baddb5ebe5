// Package service defines the canonical service model and the two
// collaborators invoked when validation of the intermediate form succeeds:
// the builder, a deterministic total transform from a validated form into
// the model, and the spec validator, which runs whole-model invariants the
// per-entity rules cannot see.
//
// The model is immutable by convention: it is built once per validation run
// and nothing in this module mutates it afterwards.
package service
