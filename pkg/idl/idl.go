package idl

import (
	"context"

	"github.com/speclint/speclint/pkg/idl/idlerr"
	"github.com/speclint/speclint/pkg/idl/service"
	"github.com/speclint/speclint/pkg/idl/validator"
)

// Validate is a convenience function that runs the full validation pipeline
// over a raw specification document. It returns the canonical service model
// if the document is clean, or an error holding every diagnostic found.
func Validate(ctx context.Context, data []byte, importer validator.Importer) (*service.Service, error) {
	return validator.New(importer).Validate(ctx, data)
}

// Messages extracts the ordered diagnostic messages from a validation
// error. A nil error yields nil.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	if el, ok := err.(*idlerr.ErrorList); ok {
		return el.Messages()
	}
	return []string{err.Error()}
}
