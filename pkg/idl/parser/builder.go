package parser

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/speclint/speclint/pkg/idl/ast"
	"github.com/speclint/speclint/pkg/idl/types"
)

// builder constructs the intermediate form from decoded wire structures.
// JSON objects keyed by name are materialized as slices sorted by key so
// every later traversal is stable.
type builder struct{}

// buildForm transforms a decoded document into an ast.Form.
func (b *builder) buildForm(js *jsonSpec) *ast.Form {
	form := &ast.Form{
		Name:        js.Name,
		Key:         js.Key,
		BaseURL:     js.BaseURL,
		Description: js.Description,
	}

	for _, ji := range js.Imports {
		form.Imports = append(form.Imports, &ast.Import{URI: ji.URI})
	}

	for _, jh := range js.Headers {
		form.Headers = append(form.Headers, b.buildHeader(&jh))
	}

	for _, name := range sortedKeys(js.Enums) {
		form.Enums = append(form.Enums, b.buildEnum(name, js.Enums[name]))
	}

	for _, name := range sortedKeys(js.Unions) {
		form.Unions = append(form.Unions, b.buildUnion(name, js.Unions[name]))
	}

	for _, name := range sortedKeys(js.Models) {
		form.Models = append(form.Models, b.buildModel(name, js.Models[name]))
	}

	for _, name := range sortedKeys(js.Resources) {
		form.Resources = append(form.Resources, b.buildResource(name, js.Resources[name]))
	}

	return form
}

func (b *builder) buildHeader(jh *jsonHeader) *ast.Header {
	header := &ast.Header{Name: jh.Name}
	if jh.Type != nil {
		raw := types.NewRawDatatype(*jh.Type)
		header.Type = &raw
	}
	return header
}

func (b *builder) buildEnum(name string, je jsonEnum) *ast.Enum {
	enum := &ast.Enum{Name: name}
	for _, jv := range je.Values {
		enum.Values = append(enum.Values, &ast.EnumValue{Name: jv.Name})
	}
	return enum
}

func (b *builder) buildUnion(name string, ju jsonUnion) *ast.Union {
	union := &ast.Union{Name: name}
	for _, jt := range ju.Types {
		member := &ast.UnionType{}
		if jt.Type != nil {
			raw := types.NewRawDatatype(*jt.Type)
			member.Type = &raw
		}
		union.Types = append(union.Types, member)
	}
	return union
}

func (b *builder) buildModel(name string, jm jsonModel) *ast.Model {
	model := &ast.Model{Name: name}
	for _, jf := range jm.Fields {
		field := &ast.Field{
			Name:     jf.Name,
			Required: boolOrDefault(jf.Required, true),
		}
		if jf.Type != nil {
			raw := types.NewRawDatatype(*jf.Type)
			field.Type = &raw
			field.Warnings = append(field.Warnings, raw.Warnings...)
		}
		model.Fields = append(model.Fields, field)
	}
	return model
}

func (b *builder) buildResource(label string, jr jsonResource) *ast.Resource {
	resource := &ast.Resource{Label: label}
	for _, jo := range jr.Operations {
		resource.Operations = append(resource.Operations, b.buildOperation(&jo))
	}
	return resource
}

func (b *builder) buildOperation(jo *jsonOperation) *ast.Operation {
	op := &ast.Operation{
		Method: jo.Method,
		Path:   jo.Path,
	}

	op.PathParameters = extractPathParameters(jo.Path)
	if dup := firstDuplicate(op.PathParameters); dup != "" {
		op.Warnings = append(op.Warnings,
			fmt.Sprintf("Path parameter[%s] appears more than once in the path template", dup))
	}

	for _, jp := range jo.Parameters {
		param := &ast.Parameter{
			Name:     jp.Name,
			Required: boolOrDefault(jp.Required, true),
		}
		if jp.Type != nil {
			raw := types.NewRawDatatype(*jp.Type)
			param.Type = &raw
		}
		op.Parameters = append(op.Parameters, param)
	}

	if jo.Body != nil {
		if jo.Body.Type != nil {
			raw := types.NewRawDatatype(*jo.Body.Type)
			op.Body = &raw
		} else {
			// A body object with no type still counts as a declared body.
			raw := types.RawDatatype{}
			op.Body = &raw
		}
	}

	for _, code := range sortedKeys(jo.Responses) {
		op.Responses = append(op.Responses, b.buildResponse(code, jo.Responses[code]))
	}

	return op
}

func (b *builder) buildResponse(code string, jr jsonResponse) *ast.Response {
	response := &ast.Response{
		Code:  code,
		Label: responseLabel(code),
	}
	if jr.Type != nil {
		raw := types.NewRawDatatype(*jr.Type)
		response.Type = &raw
		response.Warnings = append(response.Warnings, raw.Warnings...)
	}
	return response
}

// extractPathParameters returns the placeholder names of a path template,
// in order of appearance. Placeholders are segments of the form ":name".
func extractPathParameters(path string) []string {
	var names []string
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ":") && len(segment) > 1 {
			names = append(names, segment[1:])
		}
	}
	return names
}

// responseLabel derives a display label like "200 OK" for numeric codes with
// a known status text, falling back to the code itself.
func responseLabel(code string) string {
	if n, err := strconv.Atoi(code); err == nil {
		if text := http.StatusText(n); text != "" {
			return fmt.Sprintf("%s %s", code, text)
		}
	}
	return code
}

func firstDuplicate(names []string) string {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return name
		}
		seen[name] = true
	}
	return ""
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
