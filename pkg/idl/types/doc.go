// Package types implements the datatype grammar of the IDL: the fixed table
// of primitive type names, the kinded type reference and datatype shapes, and
// the resolver that turns textual type labels into resolved datatypes.
//
// Resolution is referentially transparent. The primitive tables are static
// configuration data and a Resolver is immutable once constructed, so the
// same label always resolves to the same datatype within a validation run.
//
// Resolve a label:
//
//	resolver := types.NewResolver(enumNames, modelNames, unionNames)
//	dt, ok := resolver.Resolve("map[string]")
//	if !ok {
//	    // the inner name is not a primitive and not declared by the service
//	}
package types
