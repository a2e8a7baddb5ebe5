package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryBackend implements Backend with an in-process map. It is the
// default backend for one-shot CLI runs where persistence across
// invocations is not needed.
type MemoryBackend struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		records: make(map[string]*Record),
	}
}

// Save stores a record, replacing any existing record for the same URI.
func (m *MemoryBackend) Save(_ context.Context, record *Record) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if record.URI == "" {
		return fmt.Errorf("record uri cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *record
	clone.Document = append([]byte(nil), record.Document...)
	clone.Diagnostics = append([]string(nil), record.Diagnostics...)
	m.records[record.URI] = &clone

	return nil
}

// Load retrieves the record for a URI.
func (m *MemoryBackend) Load(_ context.Context, uri string) (*Record, error) {
	if uri == "" {
		return nil, fmt.Errorf("uri cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.records[uri]
	if !ok {
		return nil, nil
	}

	clone := *record
	clone.Document = append([]byte(nil), record.Document...)
	clone.Diagnostics = append([]string(nil), record.Diagnostics...)
	return &clone, nil
}

// List returns all records ordered by URI.
func (m *MemoryBackend) List(_ context.Context) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uris := make([]string, 0, len(m.records))
	for uri := range m.records {
		uris = append(uris, uri)
	}
	sort.Strings(uris)

	records := make([]*Record, 0, len(uris))
	for _, uri := range uris {
		record := m.records[uri]
		clone := *record
		clone.Document = append([]byte(nil), record.Document...)
		clone.Diagnostics = append([]string(nil), record.Diagnostics...)
		records = append(records, &clone)
	}

	return records, nil
}

// Delete removes the record for a URI.
func (m *MemoryBackend) Delete(_ context.Context, uri string) error {
	if uri == "" {
		return fmt.Errorf("uri cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, uri)
	return nil
}

// Close is a no-op for the in-memory backend.
func (m *MemoryBackend) Close() error {
	return nil
}
