package types

import "fmt"

// Kind classifies a resolved type reference by where its name was found.
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindEnum      Kind = "enum"
	KindModel     Kind = "model"
	KindUnion     Kind = "union"
)

// TypeRef identifies a concrete type by kind and name.
type TypeRef struct {
	Kind Kind
	Name string
}

// Shape describes the container shape of a datatype.
type Shape string

const (
	ShapeScalar Shape = "scalar"
	ShapeList   Shape = "list"
	ShapeMap    Shape = "map"
)

// Datatype is the fully resolved shape of a type usage: a scalar, a list,
// or a string-keyed map, each wrapping exactly one type reference.
type Datatype struct {
	Shape Shape
	Ref   TypeRef
}

// Scalar returns a scalar datatype wrapping ref.
func Scalar(ref TypeRef) Datatype {
	return Datatype{Shape: ShapeScalar, Ref: ref}
}

// List returns a list datatype wrapping ref.
func List(ref TypeRef) Datatype {
	return Datatype{Shape: ShapeList, Ref: ref}
}

// Map returns a string-keyed map datatype whose values are ref.
func Map(ref TypeRef) Datatype {
	return Datatype{Shape: ShapeMap, Ref: ref}
}

// Label renders the datatype in source syntax, e.g. "string", "[string]",
// "map[string]".
func (d Datatype) Label() string {
	switch d.Shape {
	case ShapeList:
		return fmt.Sprintf("[%s]", d.Ref.Name)
	case ShapeMap:
		return fmt.Sprintf("map[%s]", d.Ref.Name)
	default:
		return d.Ref.Name
	}
}

// RawDatatype is the unresolved textual type label as written in the source
// document, together with any warnings collected while parsing the label
// (e.g. deprecated syntax).
type RawDatatype struct {
	Label    string
	Warnings []string
}
