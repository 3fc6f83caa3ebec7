package shared_test

import (
	"testing"
	"time"

	"propshare/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADMIN_TOKEN", "")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("RATE_LIMIT_RPS", "")

	c := shared.Load()
	if c.HTTPAddr != ":8080" || c.CatalogSource != shared.SourceEmbedded {
		t.Fatalf("unexpected defaults: %+v", c)
	}
	if c.DefaultPageSize != 10 || c.MaxPageSize != 100 || c.RateLimitRPS != 50 {
		t.Fatalf("unexpected numeric defaults: %+v", c)
	}
	if c.RequestTimeout != 15*time.Second {
		t.Fatalf("timeout: %v", c.RequestTimeout)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("CATALOG_SOURCE", "mysql")
	t.Setenv("MAX_PAGE_SIZE", "25")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")

	c := shared.Load()
	if c.HTTPAddr != ":9999" || c.CatalogSource != shared.SourceMySQL || c.MaxPageSize != 25 {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.RateLimitBurst != 100 {
		t.Fatalf("bad integer should fall back to default, got %d", c.RateLimitBurst)
	}
}

func TestLoad_UnknownSourceFallsBack(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "mongo")
	if c := shared.Load(); c.CatalogSource != shared.SourceEmbedded {
		t.Fatalf("expected embedded, got %s", c.CatalogSource)
	}
}
