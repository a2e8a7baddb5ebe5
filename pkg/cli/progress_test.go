package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSimpleProgress(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressReporter(&buf)

	progress.Start(4)
	progress.Update(2)
	progress.Finish()

	out := buf.String()
	if !strings.Contains(out, "Progress:") {
		t.Error("output missing progress bar")
	}
	if !strings.Contains(out, "(4/4)") {
		t.Errorf("output missing completed count: %q", out)
	}
}

func TestSimpleProgress_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressReporter(&buf)

	progress.Start(0)
	progress.Update(0)
	progress.Finish()
}

func TestSimpleProgress_Error(t *testing.T) {
	var buf bytes.Buffer
	progress := NewProgressReporter(&buf)

	progress.Start(2)
	progress.Error(errors.New("unreadable document"))

	if !strings.Contains(buf.String(), "unreadable document") {
		t.Error("error message not reported")
	}
}

func TestNewProgressReporter_NilWriter(t *testing.T) {
	if NewProgressReporter(nil) == nil {
		t.Fatal("reporter must not be nil")
	}
}
