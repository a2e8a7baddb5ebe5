package validator

import (
	"context"
	"net/url"
	"strings"

	"github.com/speclint/speclint/pkg/idl/idlerr"
	"github.com/speclint/speclint/pkg/idl/service"
)

// validateKey checks that an explicitly supplied url key matches the key
// generated from the service name.
func (r *rules) validateKey() {
	if r.form.Key == nil {
		return
	}
	generated := service.GenerateURLKey(*r.form.Name)
	if *r.form.Key != generated {
		r.errors.AddErrorf(idlerr.ErrorTypeNaming,
			"Invalid url key. A valid key would be: %s", generated)
	}
}

// validateImports checks that every import has a well-formed URI and hands
// resolvable URIs to the importer, including its diagnostics verbatim.
func (r *rules) validateImports(ctx context.Context, importer Importer) {
	for _, imp := range r.form.Imports {
		if imp.URI == nil || strings.TrimSpace(*imp.URI) == "" {
			r.errors.AddError(idlerr.ErrorTypeCollaborator, "Import uri is required")
			continue
		}
		uri := strings.TrimSpace(*imp.URI)
		if reason := validateURI(uri); reason != "" {
			r.errors.AddErrorf(idlerr.ErrorTypeCollaborator,
				"Import uri[%s] is not valid: %s", uri, reason)
			continue
		}
		if importer == nil {
			continue
		}
		for _, msg := range importer.Import(ctx, uri) {
			r.errors.AddError(idlerr.ErrorTypeCollaborator, msg)
		}
	}
}

// validateURI returns an empty string for a valid http(s) URI, otherwise
// the reason it is rejected.
func validateURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return err.Error()
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "must start with http:// or https://"
	}
	if u.Host == "" {
		return "missing host"
	}
	return ""
}

// validateEnums checks that every enum value has a name.
func (r *rules) validateEnums() {
	for _, enum := range r.form.Enums {
		for _, value := range enum.Values {
			if value.Name == nil || strings.TrimSpace(*value.Name) == "" {
				r.errors.AddErrorf(idlerr.ErrorTypeNaming,
					"Enum[%s] all values must have a name", enum.Name)
				break
			}
		}
	}
}

// validateUnions checks that every union member declares a type.
func (r *rules) validateUnions() {
	for _, union := range r.form.Unions {
		for _, member := range union.Types {
			if member.Type == nil || strings.TrimSpace(member.Type.Label) == "" {
				r.errors.AddErrorf(idlerr.ErrorTypeNaming,
					"Union[%s] all types must have a name", union.Name)
				break
			}
		}
	}
}

// validateHeaders checks that every header has both a name and a type. Each
// failure family is reported at most once across the whole document.
func (r *rules) validateHeaders() {
	missingName := false
	missingType := false
	for _, header := range r.form.Headers {
		if header.Name == nil || strings.TrimSpace(*header.Name) == "" {
			missingName = true
		}
		if header.Type == nil || strings.TrimSpace(header.Type.Label) == "" {
			missingType = true
		}
	}
	if missingName {
		r.errors.AddError(idlerr.ErrorTypeNaming, "All headers must have a name")
	}
	if missingType {
		r.errors.AddError(idlerr.ErrorTypeReference, "All headers must have a type")
	}
}

// validateFields checks model fields: missing names, missing or unresolvable
// types, and parse-time warnings are three independent message families.
func (r *rules) validateFields() {
	for _, model := range r.form.Models {
		unnamed := false
		for _, field := range model.Fields {
			if field.Name == nil || strings.TrimSpace(*field.Name) == "" {
				unnamed = true
				continue
			}
			name := *field.Name
			if field.Type == nil || strings.TrimSpace(field.Type.Label) == "" {
				r.errors.AddErrorf(idlerr.ErrorTypeReference,
					"Model[%s] field[%s] must have a type", model.Name, name)
			} else if _, ok := r.resolver.Resolve(field.Type.Label); !ok {
				r.errors.AddErrorf(idlerr.ErrorTypeReference,
					"Model[%s] field[%s] has invalid type[%s]", model.Name, name, field.Type.Label)
			}
			for _, warning := range field.Warnings {
				r.errors.AddErrorf(idlerr.ErrorTypeReference,
					"Model[%s] field[%s]: %s", model.Name, name, warning)
			}
		}
		if unnamed {
			r.errors.AddErrorf(idlerr.ErrorTypeNaming,
				"Model[%s] all fields must have a name", model.Name)
		}
	}
}
