package service

import (
	"strconv"
	"strings"

	"github.com/speclint/speclint/pkg/idl/ast"
	"github.com/speclint/speclint/pkg/idl/types"
)

// Build transforms a validated intermediate form into the canonical service
// model. It is deterministic and side-effect-free, and assumes the form has
// passed the full rule set: names and types the rules require are present
// and resolvable. Anything still optional at this point (description, base
// url, the explicit key) is defaulted.
func Build(form *ast.Form, resolver *types.Resolver) *Service {
	svc := &Service{
		Name:        *form.Name,
		Key:         GenerateURLKey(*form.Name),
		BaseURL:     stringOrEmpty(form.BaseURL),
		Description: stringOrEmpty(form.Description),
	}
	if form.Key != nil {
		svc.Key = *form.Key
	}

	for _, imp := range form.Imports {
		if imp.URI != nil {
			svc.Imports = append(svc.Imports, *imp.URI)
		}
	}

	for _, header := range form.Headers {
		svc.Headers = append(svc.Headers, Header{
			Name: stringOrEmpty(header.Name),
			Type: resolveOrUnknown(resolver, header.Type),
		})
	}

	for _, enum := range form.Enums {
		out := Enum{Name: enum.Name}
		for _, value := range enum.Values {
			out.Values = append(out.Values, stringOrEmpty(value.Name))
		}
		svc.Enums = append(svc.Enums, out)
	}

	for _, union := range form.Unions {
		out := Union{Name: union.Name}
		for _, member := range union.Types {
			out.Types = append(out.Types, resolveOrUnknown(resolver, member.Type))
		}
		svc.Unions = append(svc.Unions, out)
	}

	for _, model := range form.Models {
		out := Model{Name: model.Name}
		for _, field := range model.Fields {
			out.Fields = append(out.Fields, Field{
				Name:     stringOrEmpty(field.Name),
				Type:     resolveOrUnknown(resolver, field.Type),
				Required: field.Required,
			})
		}
		svc.Models = append(svc.Models, out)
	}

	for _, resource := range form.Resources {
		out := Resource{Model: resource.Label}
		for _, op := range resource.Operations {
			out.Operations = append(out.Operations, buildOperation(op, resolver))
		}
		svc.Resources = append(svc.Resources, out)
	}

	return svc
}

func buildOperation(op *ast.Operation, resolver *types.Resolver) Operation {
	out := Operation{
		Method: strings.ToUpper(stringOrEmpty(op.Method)),
		Path:   op.Path,
	}

	for _, param := range op.Parameters {
		out.Parameters = append(out.Parameters, Parameter{
			Name:     stringOrEmpty(param.Name),
			Type:     resolveOrUnknown(resolver, param.Type),
			Required: param.Required,
		})
	}

	if op.Body != nil {
		dt := resolveOrUnknown(resolver, op.Body)
		out.Body = &dt
	}

	for _, response := range op.Responses {
		code, err := strconv.Atoi(response.Code)
		if err != nil {
			continue
		}
		out.Responses = append(out.Responses, Response{
			Code:  code,
			Type:  resolveOrUnknown(resolver, response.Type),
			Label: response.Label,
		})
	}

	return out
}

// resolveOrUnknown resolves a raw datatype, defaulting an absent type to
// unit and preserving an unresolvable name with an empty kind so the spec
// validator can flag it.
func resolveOrUnknown(resolver *types.Resolver, raw *types.RawDatatype) types.Datatype {
	if raw == nil || strings.TrimSpace(raw.Label) == "" {
		return types.Scalar(types.TypeRef{Kind: types.KindPrimitive, Name: types.PrimitiveUnit})
	}
	dt, ok := resolver.Resolve(raw.Label)
	if !ok {
		return types.Scalar(types.TypeRef{Name: strings.TrimSpace(raw.Label)})
	}
	return dt
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GenerateURLKey derives the canonical URL-safe key for a service name:
// lowercase, with every run of characters outside [a-z0-9] collapsed into a
// single dash, and leading/trailing dashes trimmed.
func GenerateURLKey(name string) string {
	var sb strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash && sb.Len() > 0 {
			sb.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
