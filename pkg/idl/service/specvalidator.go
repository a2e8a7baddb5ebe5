package service

import (
	"fmt"
	"strings"

	"github.com/speclint/speclint/pkg/idl/idlerr"
)

// SpecValidator runs whole-model invariants that only make sense once the
// canonical model exists: uniqueness of declaration names across
// categories, resource-to-model references, duplicate operations, and the
// service name format. Its diagnostics, when present, replace the model as
// the final result of a validation run.
type SpecValidator struct{}

// NewSpecValidator creates a new spec validator.
func NewSpecValidator() *SpecValidator {
	return &SpecValidator{}
}

// Validate checks the canonical model. It returns nil or an
// *idlerr.ErrorList with every violation found.
func (v *SpecValidator) Validate(svc *Service) error {
	errs := idlerr.NewErrorList()

	v.validateName(svc, errs)
	v.validateDeclarationNames(svc, errs)
	v.validateHeaders(svc, errs)
	v.validateResources(svc, errs)

	return errs.ToError()
}

// validateName checks the character set of the service name.
func (v *SpecValidator) validateName(svc *Service, errs *idlerr.ErrorList) {
	for _, r := range svc.Name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == ' ', r == '-', r == '_':
		default:
			errs.AddError(idlerr.ErrorTypeCollaborator,
				"Name can only contain a-z, A-Z, 0-9, spaces, - and _ characters")
			return
		}
	}
}

// validateDeclarationNames checks that a name is used by at most one of the
// enum, model, and union categories. The resolver's lookup precedence would
// silently shadow one declaration with another, so a collision is always a
// mistake.
func (v *SpecValidator) validateDeclarationNames(svc *Service, errs *idlerr.ErrorList) {
	category := make(map[string]string)
	flagged := make(map[string]bool)

	record := func(name, kind string) {
		if prev, ok := category[name]; ok && prev != kind && !flagged[name] {
			errs.AddErrorf(idlerr.ErrorTypeCollaborator,
				"Type[%s] cannot be used for both %s and %s declarations", name, prev, kind)
			flagged[name] = true
			return
		}
		category[name] = kind
	}

	for _, enum := range svc.Enums {
		record(enum.Name, "enum")
	}
	for _, model := range svc.Models {
		record(model.Name, "model")
	}
	for _, union := range svc.Unions {
		record(union.Name, "union")
	}
}

// validateHeaders flags header types the resolver could not place in any
// category. Header typing is not part of the core rule set, so the check
// lands here.
func (v *SpecValidator) validateHeaders(svc *Service, errs *idlerr.ErrorList) {
	for _, header := range svc.Headers {
		if header.Type.Ref.Kind == "" {
			errs.AddErrorf(idlerr.ErrorTypeCollaborator,
				"Header[%s] type[%s] is not defined", header.Name, header.Type.Label())
		}
	}
}

// validateResources checks that every resource wraps a declared model and
// that no resource declares the same method and path twice.
func (v *SpecValidator) validateResources(svc *Service, errs *idlerr.ErrorList) {
	models := make(map[string]bool, len(svc.Models))
	for _, model := range svc.Models {
		models[model.Name] = true
	}

	for _, resource := range svc.Resources {
		if !models[resource.Model] {
			errs.AddErrorf(idlerr.ErrorTypeCollaborator,
				"Resource[%s] model not found", resource.Model)
		}

		seen := make(map[string]bool)
		for _, op := range resource.Operations {
			key := fmt.Sprintf("%s %s", strings.ToUpper(op.Method), op.Path)
			if seen[key] {
				errs.AddErrorf(idlerr.ErrorTypeCollaborator,
					"Resource[%s] operation %s appears more than once", resource.Model, key)
				continue
			}
			seen[key] = true
		}
	}
}
