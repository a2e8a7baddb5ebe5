package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/speclint/speclint/pkg/idl/idlerr"
	"github.com/speclint/speclint/pkg/idl/validator"
	"github.com/speclint/speclint/pkg/telemetry/logging"
	"github.com/speclint/speclint/pkg/telemetry/metrics"
)

// maxDocumentBytes caps the size of a fetched import document.
const maxDocumentBytes = 10 << 20

// Importer fetches imported specification documents over HTTP, validates
// them, and caches the result in a Backend. It satisfies the validator's
// importer contract: Import returns the diagnostics for a URI, each
// prefixed with the URI so the caller can tell imports apart.
//
// A cached record within MaxAge is served without refetching. Fetch
// failures are reported as diagnostics, not errors, so a broken import
// surfaces in the validation output alongside everything else.
type Importer struct {
	backend Backend
	client  *http.Client
	maxAge  time.Duration
	metrics *metrics.Collector
	logger  *logging.Logger
}

// ImporterConfig configures an Importer.
type ImporterConfig struct {
	// Backend caches fetched documents. Required.
	Backend Backend

	// FetchTimeout bounds each HTTP fetch. Default: 10 seconds.
	FetchTimeout time.Duration

	// MaxAge is how long a cached record is served without refetching.
	// Zero means cached records never expire; the Refresher keeps them
	// current instead.
	MaxAge time.Duration

	// Metrics records fetch outcomes and durations. Optional.
	Metrics *metrics.Collector
}

// NewImporter creates an importer backed by the given cache.
func NewImporter(cfg ImporterConfig) (*Importer, error) {
	if cfg.Backend == nil {
		return nil, fmt.Errorf("backend cannot be nil")
	}
	if cfg.FetchTimeout == 0 {
		cfg.FetchTimeout = 10 * time.Second
	}

	return &Importer{
		backend: cfg.Backend,
		client:  &http.Client{Timeout: cfg.FetchTimeout},
		maxAge:  cfg.MaxAge,
		metrics: cfg.Metrics,
		logger:  logging.Default().With("component", "registry.importer"),
	}, nil
}

// Import resolves a URI to validation diagnostics. A clean import yields
// nil.
func (i *Importer) Import(ctx context.Context, uri string) []string {
	ctx = logging.WithImportURI(ctx, uri)

	record, err := i.backend.Load(ctx, uri)
	if err != nil {
		i.logger.ErrorContext(ctx, "registry lookup failed", "error", err)
	}
	if record != nil && (i.maxAge == 0 || time.Since(record.FetchedAt) < i.maxAge) {
		i.recordFetch("cached", 0)
		return prefixDiagnostics(uri, record.Diagnostics)
	}

	record, err = i.Fetch(ctx, uri)
	if err != nil {
		return []string{fmt.Sprintf("Import[%s] could not be fetched: %s", uri, err)}
	}

	return prefixDiagnostics(uri, record.Diagnostics)
}

// Fetch retrieves a document, validates it, and stores the resulting
// record. It returns an error only when the fetch itself fails; a
// document that fetches but fails validation is stored with its
// diagnostics.
func (i *Importer) Fetch(ctx context.Context, uri string) (*Record, error) {
	ctx = logging.WithImportURI(ctx, uri)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		i.recordFetch("error", time.Since(start))
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		i.recordFetch("error", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		i.recordFetch("error", time.Since(start))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	document, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		i.recordFetch("error", time.Since(start))
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	i.recordFetch("success", time.Since(start))

	record := &Record{
		ID:        uuid.NewString(),
		URI:       uri,
		Document:  document,
		FetchedAt: time.Now(),
	}

	// Validate without a nested importer: one level of import depth is
	// enough to report whether the imported document is itself sound.
	svc, verr := validator.New(nil).Validate(ctx, document)
	if verr != nil {
		if el, ok := verr.(*idlerr.ErrorList); ok {
			record.Diagnostics = el.Messages()
		} else {
			record.Diagnostics = []string{verr.Error()}
		}
	} else {
		record.ServiceName = svc.Name
	}

	if err := i.backend.Save(ctx, record); err != nil {
		i.logger.ErrorContext(ctx, "failed to store import record", "error", err)
	}

	i.logger.DebugContext(ctx, "fetched import",
		"bytes", len(document),
		"diagnostics", len(record.Diagnostics),
	)

	return record, nil
}

func (i *Importer) recordFetch(outcome string, elapsed time.Duration) {
	if i.metrics != nil {
		i.metrics.RecordImportFetch(outcome, elapsed)
	}
}

func prefixDiagnostics(uri string, diagnostics []string) []string {
	if len(diagnostics) == 0 {
		return nil
	}
	out := make([]string, len(diagnostics))
	for idx, msg := range diagnostics {
		out[idx] = fmt.Sprintf("Import[%s] %s", uri, msg)
	}
	return out
}
