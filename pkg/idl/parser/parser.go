package parser

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/speclint/speclint/pkg/idl/ast"
	"github.com/speclint/speclint/pkg/idl/idlerr"
)

// Parser decodes specification documents into the intermediate form.
type Parser struct{}

// NewParser creates a new parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a specification document. The outcome is explicit: either an
// intermediate form, or a typed ingestion error carrying the failure reason.
//
// Three ingestion failures are distinguished:
//   - entirely empty input ("No Data")
//   - input that is not a JSON object (the decoder's reason, or a generic
//     "Invalid JSON" when the reason would leak decoder internals)
//
// A document that decodes but lacks required fields is not an ingestion
// failure; the gate and the rule set diagnose it from the returned form.
func (p *Parser) Parse(data []byte) (*ast.Form, *idlerr.Error) {
	if strings.TrimSpace(string(data)) == "" {
		return nil, &idlerr.Error{
			Type:    idlerr.ErrorTypeIngestion,
			Message: "No Data",
		}
	}

	var js jsonSpec
	if err := json.Unmarshal(data, &js); err != nil {
		return nil, &idlerr.Error{
			Type:    idlerr.ErrorTypeIngestion,
			Message: decodeFailureMessage(err),
		}
	}

	b := &builder{}
	return b.buildForm(&js), nil
}

// decodeFailureMessage converts a JSON decode error into a diagnostic.
// Syntax errors carry a useful reason; type mismatches (e.g. a top-level
// array) would expose internal type names, so they fall back to the generic
// message.
func decodeFailureMessage(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) && syntaxErr.Error() != "" {
		return "Invalid JSON: " + syntaxErr.Error()
	}
	return "Invalid JSON"
}
