package logging

import (
	"context"
)

// Context keys for common log fields.
type contextKey string

const (
	// RequestIDKey is the context key for request IDs.
	RequestIDKey contextKey = "request_id"

	// DocumentKey is the context key for the specification document path
	// or identifier currently being validated.
	DocumentKey contextKey = "document"

	// ImportURIKey is the context key for the import URI currently being
	// fetched.
	ImportURIKey contextKey = "import_uri"
)

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithDocument adds a document identifier to the context.
func WithDocument(ctx context.Context, document string) context.Context {
	return context.WithValue(ctx, DocumentKey, document)
}

// GetDocument retrieves the document identifier from the context.
func GetDocument(ctx context.Context) string {
	if document, ok := ctx.Value(DocumentKey).(string); ok {
		return document
	}
	return ""
}

// WithImportURI adds an import URI to the context.
func WithImportURI(ctx context.Context, uri string) context.Context {
	return context.WithValue(ctx, ImportURIKey, uri)
}

// GetImportURI retrieves the import URI from the context.
func GetImportURI(ctx context.Context) string {
	if uri, ok := ctx.Value(ImportURIKey).(string); ok {
		return uri
	}
	return ""
}

// extractContextFields extracts common fields from context for logging.
// Returns a slice of key-value pairs suitable for logger.With().
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, "request_id", requestID)
	}
	if document := GetDocument(ctx); document != "" {
		fields = append(fields, "document", document)
	}
	if uri := GetImportURI(ctx); uri != "" {
		fields = append(fields, "import_uri", uri)
	}

	return fields
}
