package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher re-fetches every cached import on a cron schedule so that
// long-running servers keep serving current diagnostics for imported
// documents.
type Refresher struct {
	importer *Importer
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewRefresher creates a refresher driven by a standard cron expression,
// for example "0 * * * *" for hourly refreshes.
func NewRefresher(importer *Importer, schedule string) *Refresher {
	return &Refresher{
		importer: importer,
		schedule: schedule,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "registry.refresher"),
	}
}

// Start begins scheduled refreshing. An empty schedule disables the
// refresher.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schedule == "" {
		r.logger.Info("refresh schedule not configured, skipping refresher")
		return nil
	}

	if _, err := cron.ParseStandard(r.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", r.schedule, err)
	}

	_, err := r.cron.AddFunc(r.schedule, func() {
		r.refreshAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}

	r.cron.Start()
	r.running = true

	r.logger.Info("import refresher started", "schedule", r.schedule)

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

// refreshAll re-fetches every record currently in the backend.
func (r *Refresher) refreshAll(ctx context.Context) {
	records, err := r.importer.backend.List(ctx)
	if err != nil {
		r.logger.Error("failed to list import records", "error", err)
		return
	}

	refreshed := 0
	for _, record := range records {
		if _, err := r.importer.Fetch(ctx, record.URI); err != nil {
			r.logger.Warn("import refresh failed", "uri", record.URI, "error", err)
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		r.logger.Info("import refresh completed", "refreshed", refreshed)
	} else {
		r.logger.Debug("import refresh completed, nothing to refresh")
	}
}

// Stop stops the refresher and waits for any running refresh to complete.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron != nil && r.running {
		ctx := r.cron.Stop()
		<-ctx.Done()
		r.running = false
		r.logger.Info("import refresher stopped")
	}
}

// IsRunning returns true if the refresher is running.
func (r *Refresher) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.running
}

// NextRun returns the next scheduled refresh time.
func (r *Refresher) NextRun() *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cron == nil {
		return nil
	}

	entries := r.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
