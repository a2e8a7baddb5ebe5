// Package idl is the front-end for validating JSON service specification
// documents.
//
// A specification describes a REST-style service: models, enums, unions,
// resources with operations, parameters, responses, headers, and imports of
// other specifications. Validation proceeds in stages:
//
//  1. Ingestion: the raw document is decoded into an all-optional
//     intermediate form (package parser). Empty or malformed input stops
//     here with a single diagnostic.
//  2. Gate: the one required top-level field, the specification name, is
//     checked. A nameless document is rejected without deeper inspection.
//  3. Rules: the full rule set runs over the form (package validator),
//     resolving every type label against the primitive table and the
//     service's own declarations (package types) and aggregating every
//     diagnostic found.
//  4. Build: a clean form is transformed into the canonical service model
//     and checked against whole-model invariants (package service).
//
// The caller receives either the canonical model or the complete ordered
// diagnostic list, never both.
//
//	svc, err := idl.Validate(ctx, data, importer)
//	if err != nil {
//	    for _, msg := range idl.Messages(err) {
//	        fmt.Println(msg)
//	    }
//	}
package idl
