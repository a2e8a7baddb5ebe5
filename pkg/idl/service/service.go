package service

import "github.com/speclint/speclint/pkg/idl/types"

// Service is the canonical, immutable model of a validated specification.
// Unlike the intermediate form, every required field here is present and
// every type is fully resolved. Downstream tooling (code generators, the
// registry) consumes this model and never the form.
type Service struct {
	Name        string
	Key         string
	BaseURL     string
	Description string

	Imports   []string
	Headers   []Header
	Enums     []Enum
	Unions    []Union
	Models    []Model
	Resources []Resource
}

// Header is a resolved header declaration.
type Header struct {
	Name string
	Type types.Datatype
}

// Enum is a resolved enumeration.
type Enum struct {
	Name   string
	Values []string
}

// Union is a resolved union of member types.
type Union struct {
	Name  string
	Types []types.Datatype
}

// Model is a resolved model declaration.
type Model struct {
	Name   string
	Fields []Field
}

// Field is a resolved model field.
type Field struct {
	Name     string
	Type     types.Datatype
	Required bool
}

// Resource wraps a model and its operations.
type Resource struct {
	Model      string
	Operations []Operation
}

// Operation is a resolved HTTP operation.
type Operation struct {
	Method     string
	Path       string
	Parameters []Parameter
	Body       *types.Datatype
	Responses  []Response
}

// Parameter is a resolved operation parameter.
type Parameter struct {
	Name     string
	Type     types.Datatype
	Required bool
}

// Response is a resolved response declaration.
type Response struct {
	Code  int
	Type  types.Datatype
	Label string
}
