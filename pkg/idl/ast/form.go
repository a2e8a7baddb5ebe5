package ast

import "github.com/speclint/speclint/pkg/idl/types"

// Form is the intermediate representation of a specification document,
// built once per validation run before any rule has proven the document
// well-formed. Every field that is required in the canonical service model
// is still optional here. A Form is never mutated after construction; the
// validation rules read it immutably.
type Form struct {
	Name        *string
	Key         *string
	BaseURL     *string
	Description *string

	Imports   []*Import
	Headers   []*Header
	Enums     []*Enum
	Unions    []*Union
	Models    []*Model
	Resources []*Resource
}

// Import is a reference to another specification, resolved by the importer
// collaborator.
type Import struct {
	URI *string
}

// Header is an HTTP header declaration, global or per-resource.
type Header struct {
	Name *string
	Type *types.RawDatatype
}

// Enum is a named enumeration of values.
type Enum struct {
	Name   string
	Values []*EnumValue
}

// EnumValue is a single enum value. A missing name is itself an error.
type EnumValue struct {
	Name *string
}

// Union is a named set of member type declarations.
type Union struct {
	Name  string
	Types []*UnionType
}

// UnionType is a single union member.
type UnionType struct {
	Type *types.RawDatatype
}

// Model is a named, ordered sequence of fields.
type Model struct {
	Name   string
	Fields []*Field
}

// Field is a single model field. The required flag defaults to true in the
// source grammar.
type Field struct {
	Name     *string
	Type     *types.RawDatatype
	Required bool
	Warnings []string
}

// FieldNamed returns the field with the given name, or nil.
func (m *Model) FieldNamed(name string) *Field {
	for _, f := range m.Fields {
		if f.Name != nil && *f.Name == name {
			return f
		}
	}
	return nil
}

// Resource wraps a declared model and carries its operations. Label is the
// model name as written in the document.
type Resource struct {
	Label      string
	Operations []*Operation
}

// Operation is a single HTTP operation on a resource.
type Operation struct {
	Method     *string
	Path       string
	Parameters []*Parameter
	Body       *types.RawDatatype
	Responses  []*Response

	// PathParameters holds the placeholder names extracted from the path
	// template, in order of appearance.
	PathParameters []string

	Warnings []string
}

// ParameterNamed returns the declared parameter with the given name, or nil.
func (o *Operation) ParameterNamed(name string) *Parameter {
	for _, p := range o.Parameters {
		if p.Name != nil && *p.Name == name {
			return p
		}
	}
	return nil
}

// Parameter is a single operation parameter. The required flag defaults to
// true in the source grammar.
type Parameter struct {
	Name     *string
	Type     *types.RawDatatype
	Required bool
}

// Response is a single response declaration, keyed by its textual status
// code as written in the document.
type Response struct {
	Code     string
	Type     *types.RawDatatype
	Label    string // derived display label, e.g. "200 OK"
	Warnings []string
}

// EnumNames returns the declared enum names in declaration order.
func (f *Form) EnumNames() []string {
	names := make([]string, 0, len(f.Enums))
	for _, e := range f.Enums {
		names = append(names, e.Name)
	}
	return names
}

// ModelNames returns the declared model names in declaration order.
func (f *Form) ModelNames() []string {
	names := make([]string, 0, len(f.Models))
	for _, m := range f.Models {
		names = append(names, m.Name)
	}
	return names
}

// UnionNames returns the declared union names in declaration order.
func (f *Form) UnionNames() []string {
	names := make([]string, 0, len(f.Unions))
	for _, u := range f.Unions {
		names = append(names, u.Name)
	}
	return names
}

// ModelNamed returns the declared model with the given name, or nil.
func (f *Form) ModelNamed(name string) *Model {
	for _, m := range f.Models {
		if m.Name == name {
			return m
		}
	}
	return nil
}
