// Package validator implements the semantic validation pipeline for
// specification documents.
//
// The pipeline has two phases. The gate checks the single required
// top-level field (the specification name); a document that fails the gate
// is rejected with exactly one diagnostic and no other rule runs. When the
// gate passes, the full rule set runs over the intermediate form: every
// rule executes, every diagnostic is collected, and the caller sees the
// complete list in one pass rather than fixing problems one at a time.
//
// Each rule is a pure function of the intermediate form and the type
// resolver. Rules are independent of each other but traverse the form in
// declaration order, so the aggregated output is stable across runs on
// identical input.
//
// Basic usage:
//
//	v := validator.New(importer)
//	svc, err := v.Validate(ctx, data)
//	if err != nil {
//	    for _, msg := range err.(*idlerr.ErrorList).Messages() {
//	        fmt.Println(msg)
//	    }
//	    return
//	}
//	// svc is the canonical service model
//
// On a clean form the validator invokes the service builder and the
// whole-model spec validator; their diagnostics, if any, are the final
// result in place of the model.
package validator
