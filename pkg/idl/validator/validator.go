package validator

import (
	"context"
	"strings"

	"github.com/speclint/speclint/pkg/idl/ast"
	"github.com/speclint/speclint/pkg/idl/idlerr"
	"github.com/speclint/speclint/pkg/idl/parser"
	"github.com/speclint/speclint/pkg/idl/service"
	"github.com/speclint/speclint/pkg/idl/types"
)

// Importer resolves an import URI and reports any diagnostics found while
// fetching and validating the imported specification. An empty slice means
// the import is sound. Implementations may cache; this layer never does.
type Importer interface {
	Import(ctx context.Context, uri string) []string
}

// Validator runs the full validation pipeline over a specification
// document: ingestion, the required-field gate, the rule set, and finally
// the service builder and whole-model spec validator.
type Validator struct {
	parser   *parser.Parser
	importer Importer
}

// New creates a validator. importer may be nil, in which case import
// declarations are checked for well-formed URIs but never fetched.
func New(importer Importer) *Validator {
	return &Validator{
		parser:   parser.NewParser(),
		importer: importer,
	}
}

// Validate runs the pipeline over a raw document. On success it returns the
// canonical service model. On failure it returns an *idlerr.ErrorList
// holding every diagnostic found; the model is never partially returned.
//
// The run is deterministic: byte-identical input produces an identical,
// identically ordered diagnostic list.
func (v *Validator) Validate(ctx context.Context, data []byte) (*service.Service, error) {
	errs := idlerr.NewErrorList()

	form, perr := v.parser.Parse(data)
	if perr != nil {
		errs.Add(perr)
		return nil, errs
	}

	// Required-field gate. A document that cannot even be named is rejected
	// without running any other rule.
	if form.Name == nil || strings.TrimSpace(*form.Name) == "" {
		errs.AddError(idlerr.ErrorTypeGate, "Missing: name")
		return nil, errs
	}

	resolver := types.NewResolver(form.EnumNames(), form.ModelNames(), form.UnionNames())
	errs.Append(v.runRules(ctx, form, resolver))
	if errs.HasErrors() {
		return nil, errs
	}

	svc := service.Build(form, resolver)
	if err := service.NewSpecValidator().Validate(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// runRules executes every rule in a fixed order and concatenates their
// output. The rules are independent of each other; order only fixes the
// presentation of the aggregated diagnostics.
func (v *Validator) runRules(ctx context.Context, form *ast.Form, resolver *types.Resolver) *idlerr.ErrorList {
	r := &rules{
		form:     form,
		resolver: resolver,
		errors:   idlerr.NewErrorList(),
	}

	r.validateKey()
	r.validateImports(ctx, v.importer)
	r.validateEnums()
	r.validateUnions()
	r.validateHeaders()
	r.validateFields()
	r.validateOperationWarnings()
	r.validateBodies()
	r.validateParameters()
	r.validateResponses()
	r.validatePathParameterTypes()
	r.validatePathParametersRequired()

	return r.errors
}

// rules carries the shared read-only state for one rule-set run.
type rules struct {
	form     *ast.Form
	resolver *types.Resolver
	errors   *idlerr.ErrorList
}
