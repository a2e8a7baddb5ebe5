package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/speclint/speclint/pkg/idl/ast"
	"github.com/speclint/speclint/pkg/idl/idlerr"
	"github.com/speclint/speclint/pkg/idl/types"
)

// validMethods lists the recognized HTTP methods, sorted for stable output.
var validMethods = []string{"DELETE", "GET", "HEAD", "OPTIONS", "PATCH", "POST", "PUT"}

func isValidMethod(method string) bool {
	upper := strings.ToUpper(method)
	for _, m := range validMethods {
		if m == upper {
			return true
		}
	}
	return false
}

// opLabel renders the standard "Resource[x] METHOD /path" prefix used by
// every operation-scoped diagnostic.
func opLabel(resource *ast.Resource, op *ast.Operation) string {
	if op.Method == nil || *op.Method == "" {
		return fmt.Sprintf("Resource[%s] %s", resource.Label, op.Path)
	}
	return fmt.Sprintf("Resource[%s] %s %s", resource.Label, *op.Method, op.Path)
}

// eachOperation walks resources and operations in declaration order.
func (r *rules) eachOperation(fn func(resource *ast.Resource, op *ast.Operation)) {
	for _, resource := range r.form.Resources {
		for _, op := range resource.Operations {
			fn(resource, op)
		}
	}
}

// validateOperationWarnings surfaces warnings collected while building the
// intermediate form.
func (r *rules) validateOperationWarnings() {
	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		for _, warning := range op.Warnings {
			r.errors.AddErrorf(idlerr.ErrorTypePlacement,
				"%s: %s", opLabel(resource, op), warning)
		}
	})
}

// validateBodies checks that a declared operation body has a resolvable type.
func (r *rules) validateBodies() {
	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		if op.Body == nil {
			return
		}
		label := strings.TrimSpace(op.Body.Label)
		if label == "" {
			r.errors.AddErrorf(idlerr.ErrorTypeReference,
				"%s: Body missing type", opLabel(resource, op))
			return
		}
		if _, ok := r.resolver.Resolve(label); !ok {
			r.errors.AddErrorf(idlerr.ErrorTypeReference,
				"%s: Body type[%s] not found", opLabel(resource, op), label)
		}
	})
}

// validateParameters checks parameter naming and typing, and restricts the
// shapes allowed in query position. A parameter sits in query position when
// the operation declares a body, or when its method is GET.
func (r *rules) validateParameters() {
	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		prefix := opLabel(resource, op)

		unnamed := false
		for _, param := range op.Parameters {
			if param.Name == nil || strings.TrimSpace(*param.Name) == "" {
				unnamed = true
				continue
			}
			name := *param.Name
			if param.Type == nil || strings.TrimSpace(param.Type.Label) == "" {
				r.errors.AddErrorf(idlerr.ErrorTypeReference,
					"%s: Parameter[%s] must have a type", prefix, name)
				continue
			}
			dt, ok := r.resolver.Resolve(param.Type.Label)
			if !ok {
				r.errors.AddErrorf(idlerr.ErrorTypeReference,
					"%s: Parameter[%s] has invalid type[%s]", prefix, name, param.Type.Label)
				continue
			}
			if queryPosition(op) {
				r.checkQueryShape(prefix, name, param.Type.Label, dt)
			}
		}
		if unnamed {
			r.errors.AddErrorf(idlerr.ErrorTypeNaming,
				"%s: All parameters must have a name", prefix)
		}
	})
}

// queryPosition reports whether an operation's parameters belong to the
// query-restricted set.
func queryPosition(op *ast.Operation) bool {
	if op.Body != nil {
		return true
	}
	return op.Method != nil && strings.ToUpper(*op.Method) == "GET"
}

// checkQueryShape rejects shapes that cannot serialize into a query string:
// any map, and scalars or lists of models or unions.
func (r *rules) checkQueryShape(prefix, name, label string, dt types.Datatype) {
	if dt.Shape == types.ShapeMap {
		r.errors.AddErrorf(idlerr.ErrorTypePlacement,
			"%s: Parameter[%s] has an invalid type[%s]. Maps are not supported as query parameters",
			prefix, name, label)
		return
	}
	switch dt.Ref.Kind {
	case types.KindModel:
		r.errors.AddErrorf(idlerr.ErrorTypePlacement,
			"%s: Parameter[%s] has an invalid type[%s]. Models are not supported as query parameters",
			prefix, name, label)
	case types.KindUnion:
		r.errors.AddErrorf(idlerr.ErrorTypePlacement,
			"%s: Parameter[%s] has an invalid type[%s]. Unions are not supported as query parameters",
			prefix, name, label)
	}
}

// validateResponses checks operation methods, response codes, response
// types, 2xx type uniformity, reserved codes, and the unit requirement for
// 204 and 304. If any response code anywhere in the document is not an
// integer, every code-dependent check is skipped so a single malformed code
// does not cascade into nonsense diagnostics.
func (r *rules) validateResponses() {
	anyNonNumeric := false
	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		for _, response := range op.Responses {
			if _, err := strconv.Atoi(response.Code); err != nil {
				anyNonNumeric = true
			}
		}
	})

	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		prefix := opLabel(resource, op)

		if op.Method == nil || *op.Method == "" {
			r.errors.AddErrorf(idlerr.ErrorTypeResponse,
				"%s: Missing HTTP method. Must be one of: %s",
				prefix, strings.Join(validMethods, ", "))
		} else if !isValidMethod(*op.Method) {
			r.errors.AddErrorf(idlerr.ErrorTypeResponse,
				"%s: Invalid HTTP method[%s]. Must be one of: %s",
				prefix, *op.Method, strings.Join(validMethods, ", "))
		}

		for _, response := range op.Responses {
			for _, warning := range response.Warnings {
				r.errors.AddErrorf(idlerr.ErrorTypeResponse,
					"%s: Response code[%s]: %s", prefix, response.Code, warning)
			}
			if _, err := strconv.Atoi(response.Code); err != nil {
				r.errors.AddErrorf(idlerr.ErrorTypeResponse,
					"%s: Response code is not an integer[%s]", prefix, response.Code)
			}
		}

		if anyNonNumeric {
			return
		}

		r.checkResponseTypes(prefix, op)
		r.checkTwoHundredUniformity(prefix, op)
		r.checkReservedCodes(prefix, op)
		r.checkUnitCodes(prefix, op)
	})
}

// checkResponseTypes verifies every response carries a resolvable type.
func (r *rules) checkResponseTypes(prefix string, op *ast.Operation) {
	for _, response := range op.Responses {
		if response.Type == nil || strings.TrimSpace(response.Type.Label) == "" {
			r.errors.AddErrorf(idlerr.ErrorTypeResponse,
				"%s: Response code[%s] missing type", prefix, response.Code)
			continue
		}
		if _, ok := r.resolver.Resolve(response.Type.Label); !ok {
			r.errors.AddErrorf(idlerr.ErrorTypeResponse,
				"%s: Response code[%s] has invalid type[%s]",
				prefix, response.Code, response.Type.Label)
		}
	}
}

// checkTwoHundredUniformity verifies the distinct resolved type labels of
// all 2xx responses of one operation number at most one.
func (r *rules) checkTwoHundredUniformity(prefix string, op *ast.Operation) {
	seen := make(map[string]bool)
	for _, response := range op.Responses {
		code, err := strconv.Atoi(response.Code)
		if err != nil || code < 200 || code > 299 {
			continue
		}
		if response.Type == nil {
			continue
		}
		if dt, ok := r.resolver.Resolve(response.Type.Label); ok {
			seen[dt.Label()] = true
		}
	}
	if len(seen) <= 1 {
		return
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	r.errors.AddErrorf(idlerr.ErrorTypeResponse,
		"%s: Responses for 2xx codes must have the same type. Found: %s",
		prefix, strings.Join(labels, ", "))
}

// checkReservedCodes rejects 404 and all codes >= 500, which are reserved
// for framework-level handling.
func (r *rules) checkReservedCodes(prefix string, op *ast.Operation) {
	for _, response := range op.Responses {
		code, err := strconv.Atoi(response.Code)
		if err != nil {
			continue
		}
		if code == 404 || code >= 500 {
			r.errors.AddErrorf(idlerr.ErrorTypeResponse,
				"%s: Response code[%d] cannot be explicitly specified", prefix, code)
		}
	}
}

// checkUnitCodes verifies 204 and 304 declare the unit type or nothing.
func (r *rules) checkUnitCodes(prefix string, op *ast.Operation) {
	for _, response := range op.Responses {
		code, err := strconv.Atoi(response.Code)
		if err != nil || (code != 204 && code != 304) {
			continue
		}
		if response.Type == nil {
			continue
		}
		label := strings.TrimSpace(response.Type.Label)
		if label == "" || label == types.PrimitiveUnit {
			continue
		}
		r.errors.AddErrorf(idlerr.ErrorTypeResponse,
			"%s: Response code[%d] must return unit and not[%s]", prefix, code, label)
	}
}

// pathResolution is the outcome of resolving a path placeholder by the
// fixed precedence: operation parameter, then model field, then a required
// string default.
type pathResolution struct {
	datatype types.Datatype
	label    string
	required bool
	resolved bool
}

// resolvePathParameter applies the placeholder precedence for one name.
func (r *rules) resolvePathParameter(resource *ast.Resource, op *ast.Operation, name string) pathResolution {
	if param := op.ParameterNamed(name); param != nil {
		res := pathResolution{required: param.Required}
		if param.Type != nil {
			res.label = param.Type.Label
			res.datatype, res.resolved = r.resolver.Resolve(param.Type.Label)
		}
		return res
	}
	if model := r.form.ModelNamed(resource.Label); model != nil {
		if field := model.FieldNamed(name); field != nil {
			res := pathResolution{required: field.Required}
			if field.Type != nil {
				res.label = field.Type.Label
				res.datatype, res.resolved = r.resolver.Resolve(field.Type.Label)
			}
			return res
		}
	}
	return pathResolution{
		datatype: types.Scalar(types.TypeRef{Kind: types.KindPrimitive, Name: types.PrimitiveString}),
		label:    types.PrimitiveString,
		required: true,
		resolved: true,
	}
}

// validatePathParameterTypes verifies every path placeholder resolves to a
// type valid in path position: a scalar primitive serializable in a path
// segment, or any enum. Lists, maps, models, and unions never are,
// regardless of where the type came from.
func (r *rules) validatePathParameterTypes() {
	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		prefix := opLabel(resource, op)
		for _, name := range op.PathParameters {
			res := r.resolvePathParameter(resource, op, name)
			if !res.resolved {
				// An unresolvable backing type is already reported by the
				// parameter or field rule.
				continue
			}
			switch res.datatype.Shape {
			case types.ShapeList:
				r.errors.AddErrorf(idlerr.ErrorTypePlacement,
					"%s: Path parameter[%s] cannot be a list. Only primitives and enums are supported in path parameters",
					prefix, name)
			case types.ShapeMap:
				r.errors.AddErrorf(idlerr.ErrorTypePlacement,
					"%s: Path parameter[%s] cannot be a map. Only primitives and enums are supported in path parameters",
					prefix, name)
			default:
				if !pathKindValid(res.datatype.Ref) {
					r.errors.AddErrorf(idlerr.ErrorTypePlacement,
						"%s: Path parameter[%s] has an invalid type[%s]. Only primitives and enums are supported in path parameters",
						prefix, name, res.label)
				}
			}
		}
	})
}

// pathKindValid reports whether a scalar reference can occupy a path
// segment. Enums always serialize validly in a path.
func pathKindValid(ref types.TypeRef) bool {
	switch ref.Kind {
	case types.KindEnum:
		return true
	case types.KindPrimitive:
		return types.IsPathPrimitive(ref.Name)
	default:
		return false
	}
}

// validatePathParametersRequired verifies every path placeholder resolves,
// by the same precedence as its type, to required=true.
func (r *rules) validatePathParametersRequired() {
	r.eachOperation(func(resource *ast.Resource, op *ast.Operation) {
		prefix := opLabel(resource, op)
		for _, name := range op.PathParameters {
			res := r.resolvePathParameter(resource, op, name)
			if !res.required {
				r.errors.AddErrorf(idlerr.ErrorTypePlacement,
					"%s: Path parameter[%s] is specified as optional. All path parameters are required",
					prefix, name)
			}
		}
	})
}
