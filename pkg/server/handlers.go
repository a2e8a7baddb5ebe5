package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/speclint/speclint/pkg/idl"
	"github.com/speclint/speclint/pkg/idl/service"
)

// ValidationResponse is the JSON body returned by the validate endpoint.
type ValidationResponse struct {
	// Valid reports whether the document passed every check.
	Valid bool `json:"valid"`

	// Diagnostics holds every message found, in evaluation order. Empty
	// when the document is valid.
	Diagnostics []string `json:"diagnostics,omitempty"`

	// Service is the canonical model built from a valid document.
	Service *service.Service `json:"service,omitempty"`
}

// ImportRecord is the JSON shape of a cached import in list responses.
type ImportRecord struct {
	URI         string    `json:"uri"`
	ServiceName string    `json:"service_name,omitempty"`
	Diagnostics []string  `json:"diagnostics,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// handleValidate handles POST /v1/validate. The request body is the raw
// specification document; the response reports the canonical model or the
// full diagnostic list. Invalid documents are a 200 with valid=false; the
// endpoint only errors on transport-level problems.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, s.maxBodyBytes))
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	svc, verr := idl.Validate(r.Context(), body, s.importer)
	elapsed := time.Since(start)

	resp := ValidationResponse{Valid: verr == nil}
	outcome := "valid"
	if verr != nil {
		resp.Diagnostics = idl.Messages(verr)
		outcome = "invalid"
	} else {
		resp.Service = svc
	}

	if s.metrics != nil {
		s.metrics.RecordValidation("http", outcome, elapsed, len(resp.Diagnostics), len(body))
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleImports handles GET /v1/imports, listing every cached import
// record.
func (s *Server) handleImports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if s.backend == nil {
		writeJSON(w, http.StatusOK, []ImportRecord{})
		return
	}

	records, err := s.backend.List(r.Context())
	if err != nil {
		http.Error(w, "Failed to list imports", http.StatusInternalServerError)
		return
	}

	out := make([]ImportRecord, 0, len(records))
	for _, record := range records {
		out = append(out, ImportRecord{
			URI:         record.URI,
			ServiceName: record.ServiceName,
			Diagnostics: record.Diagnostics,
			FetchedAt:   record.FetchedAt,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
