package idlerr

import (
	"fmt"
	"strings"
)

// ErrorType categorizes a diagnostic produced during specification validation.
type ErrorType string

const (
	ErrorTypeIngestion    ErrorType = "ingestion"    // Empty input, malformed or non-object JSON
	ErrorTypeGate         ErrorType = "gate"         // Missing required top-level field
	ErrorTypeReference    ErrorType = "reference"    // Unresolved or disallowed type name
	ErrorTypeNaming       ErrorType = "naming"       // Missing name on a declaration
	ErrorTypeResponse     ErrorType = "response"     // Response code or response type violation
	ErrorTypePlacement    ErrorType = "placement"    // Invalid query or path parameter shape
	ErrorTypeCollaborator ErrorType = "collaborator" // Importer or service-level diagnostic
)

// Error is a single human-readable diagnostic with its category.
type Error struct {
	Type    ErrorType
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// ErrorList accumulates diagnostics across validation passes.
// Diagnostics are never deduplicated; equivalent messages from different
// causes all appear, in the order they were detected.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given category and message.
func (el *ErrorList) AddError(errType ErrorType, message string) {
	el.Add(&Error{Type: errType, Message: message})
}

// AddErrorf creates and adds a new formatted error.
func (el *ErrorList) AddErrorf(errType ErrorType, format string, args ...any) {
	el.Add(&Error{Type: errType, Message: fmt.Sprintf(format, args...)})
}

// Append copies all errors from another list.
func (el *ErrorList) Append(other *ErrorList) {
	if other == nil {
		return
	}
	el.Errors = append(el.Errors, other.Errors...)
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Messages returns all diagnostic messages in order.
func (el *ErrorList) Messages() []string {
	msgs := make([]string, 0, len(el.Errors))
	for _, err := range el.Errors {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}
	return strings.Join(el.Messages(), "\n")
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByType returns all errors of the given category.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorType returns true if the list contains at least one error of the given category.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}
