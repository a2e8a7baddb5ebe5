package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestCollector_RecordValidation(t *testing.T) {
	c := NewCollector(nil)

	c.RecordValidation("http", "invalid", 5*time.Millisecond, 3, 512)
	c.RecordValidation("cli", "valid", time.Millisecond, 0, 128)

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather error = %v", err)
	}

	found := make(map[string]bool)
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	for _, name := range []string{
		"speclint_validations_total",
		"speclint_validation_duration_seconds",
		"speclint_diagnostics_total",
		"speclint_document_size_bytes",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestCollector_RecordImportFetch(t *testing.T) {
	c := NewCollector(nil)

	c.RecordImportFetch("success", 10*time.Millisecond)
	c.RecordImportFetch("cached", 0)

	families, err := c.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather error = %v", err)
	}

	found := false
	for _, mf := range families {
		if mf.GetName() == "speclint_import_fetches_total" {
			found = true
		}
	}
	if !found {
		t.Error("import fetch counter not registered")
	}
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())
	c.RecordValidation("http", "valid", time.Millisecond, 0, 64)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "speclint_validations_total") {
		t.Error("exposition output missing validation counter")
	}
}
