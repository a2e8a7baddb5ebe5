package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/speclint/speclint/pkg/config"
	"github.com/speclint/speclint/pkg/registry"
	"github.com/speclint/speclint/pkg/telemetry/metrics"
)

func testServer(t *testing.T, backend registry.Backend) *Server {
	t.Helper()
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return NewServer(Options{
		Config:        &cfg.Server,
		MetricsConfig: &cfg.Telemetry.Metrics,
		Backend:       backend,
		Metrics:       metrics.NewCollector(nil),
		Version:       VersionInfo{Version: "test", Commit: "none", BuildTime: "now"},
	})
}

func TestHandleValidate(t *testing.T) {
	handler := testServer(t, nil).Handler()

	tests := []struct {
		name            string
		body            string
		wantValid       bool
		wantDiagnostics []string
	}{
		{
			name:      "valid document",
			body:      `{"name": "svc"}`,
			wantValid: true,
		},
		{
			name:            "missing name",
			body:            `{}`,
			wantValid:       false,
			wantDiagnostics: []string{"Missing: name"},
		},
		{
			name:            "empty body",
			body:            "",
			wantValid:       false,
			wantDiagnostics: []string{"No Data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}

			var resp ValidationResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if resp.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", resp.Valid, tt.wantValid)
			}
			if len(resp.Diagnostics) != len(tt.wantDiagnostics) {
				t.Fatalf("diagnostics = %v, want %v", resp.Diagnostics, tt.wantDiagnostics)
			}
			for i, want := range tt.wantDiagnostics {
				if resp.Diagnostics[i] != want {
					t.Errorf("diagnostics[%d] = %q, want %q", i, resp.Diagnostics[i], want)
				}
			}
			if tt.wantValid && resp.Service == nil {
				t.Error("valid response must include the service model")
			}
			if !tt.wantValid && resp.Service != nil {
				t.Error("invalid response must not include a service model")
			}
		})
	}
}

func TestHandleValidate_MethodNotAllowed(t *testing.T) {
	handler := testServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestHandleValidate_SetsRequestID(t *testing.T) {
	handler := testServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewBufferString(`{"name":"svc"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response must carry a request id")
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/validate", bytes.NewBufferString(`{"name":"svc"}`))
	req.Header.Set("X-Request-ID", "caller-chosen")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-chosen" {
		t.Errorf("request id = %q, want caller-chosen", got)
	}
}

func TestHandleImports(t *testing.T) {
	backend := registry.NewMemoryBackend()
	backend.Save(context.Background(), &registry.Record{
		URI:         "https://example.com/svc.json",
		ServiceName: "svc",
		FetchedAt:   time.Now(),
	})

	handler := testServer(t, backend).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/imports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var records []ImportRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(records) != 1 || records[0].URI != "https://example.com/svc.json" {
		t.Errorf("records = %+v", records)
	}
}

func TestHandleImports_NoBackend(t *testing.T) {
	handler := testServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/v1/imports", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var records []ImportRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %+v, want empty", records)
	}
}

func TestHealthEndpoints(t *testing.T) {
	handler := testServer(t, registry.NewMemoryBackend()).Handler()

	for _, path := range []string{"/health", "/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, rec.Code)
		}
	}
}

func TestVersionEndpoint(t *testing.T) {
	handler := testServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var info map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if info["version"] != "test" {
		t.Errorf("version = %v", info["version"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler := testServer(t, nil).Handler()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.Telemetry.Metrics.Disabled = true

	srv := NewServer(Options{
		Config:        &cfg.Server,
		MetricsConfig: &cfg.Telemetry.Metrics,
		Metrics:       metrics.NewCollector(nil),
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 when metrics are disabled", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	panicky := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	handler := RecoveryMiddleware(panicky)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if body["error"] == "" {
		t.Error("error body must carry a message")
	}
}
