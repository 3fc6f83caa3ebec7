package observability_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"propshare/internal/adapters/observability"
)

func TestNewLogger_JSONWithServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("prod", "", &buf)
	l.Info().Str("k", "v").Msg("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if rec["service"] != "propshare" || rec["message"] != "hello" || rec["k"] != "v" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := observability.NewLogger("prod", "warn", &buf)
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatalf("warn should be written")
	}
}
