package registry

import (
	"context"
	"time"
)

// Record is a cached copy of an imported specification document.
type Record struct {
	// ID uniquely identifies this record.
	ID string

	// URI is the location the document was fetched from.
	URI string

	// Document is the raw specification as fetched.
	Document []byte

	// ServiceName is the name declared by the document, when it validated.
	ServiceName string

	// Diagnostics holds the validation messages from the last fetch.
	// Empty means the document was clean.
	Diagnostics []string

	// FetchedAt is when the document was last fetched.
	FetchedAt time.Time
}

// Backend persists import records. Implementations must be safe for
// concurrent use.
type Backend interface {
	// Save stores a record, replacing any existing record for the same URI.
	Save(ctx context.Context, record *Record) error

	// Load retrieves the record for a URI. A missing URI yields (nil, nil).
	Load(ctx context.Context, uri string) (*Record, error)

	// List returns all records, ordered by URI.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes the record for a URI.
	Delete(ctx context.Context, uri string) error

	// Close releases any resources held by the backend.
	Close() error
}
