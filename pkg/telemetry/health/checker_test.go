package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCheckLiveness(t *testing.T) {
	status := New(0).CheckLiveness(context.Background())
	if status.Status != "ok" {
		t.Errorf("status = %q, want ok", status.Status)
	}
	if status.Timestamp.IsZero() {
		t.Error("timestamp must be set")
	}
}

func TestCheckReadiness(t *testing.T) {
	t.Run("no checks registered", func(t *testing.T) {
		status := New(0).CheckReadiness(context.Background())
		if status.Status != "ready" {
			t.Errorf("status = %q, want ready", status.Status)
		}
	})

	t.Run("all healthy", func(t *testing.T) {
		c := New(0)
		c.RegisterCheck("registry", func(ctx context.Context) error { return nil })
		c.RegisterCheck("other", func(ctx context.Context) error { return nil })

		status := c.CheckReadiness(context.Background())
		if status.Status != "ready" {
			t.Errorf("status = %q, want ready", status.Status)
		}
		if len(status.Checks) != 2 {
			t.Errorf("checks = %v", status.Checks)
		}
	})

	t.Run("one unhealthy degrades", func(t *testing.T) {
		c := New(0)
		c.RegisterCheck("good", func(ctx context.Context) error { return nil })
		c.RegisterCheck("bad", func(ctx context.Context) error { return errors.New("db locked") })

		status := c.CheckReadiness(context.Background())
		if status.Status != "degraded" {
			t.Errorf("status = %q, want degraded", status.Status)
		}
		if status.Checks["bad"].Message != "db locked" {
			t.Errorf("bad check = %+v", status.Checks["bad"])
		}
	})

	t.Run("slow check times out", func(t *testing.T) {
		c := New(20 * time.Millisecond)
		c.RegisterCheck("slow", func(ctx context.Context) error {
			time.Sleep(200 * time.Millisecond)
			return nil
		})

		status := c.CheckReadiness(context.Background())
		if status.Status != "degraded" {
			t.Errorf("status = %q, want degraded", status.Status)
		}
	})
}

func TestReadinessHandler(t *testing.T) {
	c := New(0)
	c.RegisterCheck("bad", func(ctx context.Context) error { return errors.New("down") })

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rec := httptest.NewRecorder()
	c.ReadinessHandler()(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestVersionHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/version", nil)
	rec := httptest.NewRecorder()
	VersionHandler("1.0.0", "abc", "now")(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}
