package types

import "strings"

// Resolver resolves textual type labels against the primitive table and the
// declared enum, model, and union names of a single service. A resolver is
// built once per validation run and is read-only afterwards, so resolution
// is a pure function of the label and the declared name sets.
type Resolver struct {
	enums  map[string]bool
	models map[string]bool
	unions map[string]bool
}

// NewResolver creates a resolver over the given declared type names.
func NewResolver(enums, models, unions []string) *Resolver {
	r := &Resolver{
		enums:  make(map[string]bool, len(enums)),
		models: make(map[string]bool, len(models)),
		unions: make(map[string]bool, len(unions)),
	}
	for _, name := range enums {
		r.enums[name] = true
	}
	for _, name := range models {
		r.models[name] = true
	}
	for _, name := range unions {
		r.unions[name] = true
	}
	return r
}

// Resolve parses a type label and resolves the inner name. It returns
// ok=false when the inner name is not declared anywhere; it never reports
// an error itself. Callers decide how an unresolved label is diagnosed.
//
// Label syntax:
//
//	name         scalar
//	[name]       list of name
//	map[name]    map from string to name
//	map          deprecated shorthand for map[string]
//
// The inner name is looked up against the primitive table first, then the
// declared enums, then models, then unions. The first table containing the
// name fixes the kind. The order is fixed and intentional: a declared name
// can never shadow a primitive, and an enum shadows a model or union of the
// same name.
func (r *Resolver) Resolve(label string) (Datatype, bool) {
	label = strings.TrimSpace(label)

	if inner, ok := listInner(label); ok {
		ref, found := r.lookup(inner)
		return List(ref), found
	}

	if inner, ok := mapInner(label); ok {
		ref, found := r.lookup(inner)
		return Map(ref), found
	}

	ref, found := r.lookup(label)
	return Scalar(ref), found
}

// lookup resolves a bare type name to a kinded reference.
func (r *Resolver) lookup(name string) (TypeRef, bool) {
	switch {
	case IsPrimitive(name):
		return TypeRef{Kind: KindPrimitive, Name: name}, true
	case r.enums[name]:
		return TypeRef{Kind: KindEnum, Name: name}, true
	case r.models[name]:
		return TypeRef{Kind: KindModel, Name: name}, true
	case r.unions[name]:
		return TypeRef{Kind: KindUnion, Name: name}, true
	default:
		return TypeRef{Name: name}, false
	}
}

// listInner extracts the element label from list syntax "[inner]".
func listInner(label string) (string, bool) {
	if strings.HasPrefix(label, "[") && strings.HasSuffix(label, "]") {
		return strings.TrimSpace(label[1 : len(label)-1]), true
	}
	return "", false
}

// mapInner extracts the value label from map syntax. Bare "map" is the
// deprecated shorthand for a string-valued map.
func mapInner(label string) (string, bool) {
	if label == "map" {
		return PrimitiveString, true
	}
	if strings.HasPrefix(label, "map[") && strings.HasSuffix(label, "]") {
		return strings.TrimSpace(label[4 : len(label)-1]), true
	}
	return "", false
}

// NewRawDatatype wraps a source label, recording parse-time warnings for
// deprecated syntax.
func NewRawDatatype(label string) RawDatatype {
	raw := RawDatatype{Label: label}
	if strings.TrimSpace(label) == "map" {
		raw.Warnings = append(raw.Warnings,
			"Specifying the type of a map is deprecated syntax. Use map[string] instead of map")
	}
	return raw
}
