//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "propshare/internal/adapters/http_server"
	"propshare/internal/app"
	"propshare/internal/seed"
	"propshare/internal/storage/memory"
	mysqlrepo "propshare/internal/storage/mysql"
)

// ---------- helpers ----------
func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=$PWD/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(b)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	res, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer res.Body.Close()
	if out != nil && res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return res.StatusCode
}

// ---------- the test ----------
func TestHTTP_EndToEnd_MySQLCatalog(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=propshare"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/propshare?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)

	ctx := context.Background()
	repo := mysqlrepo.New(db)

	// Seed MySQL from the embedded catalog, the way cmd/seeder does.
	embedded, err := seed.Embedded{}.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("embedded: %v", err)
	}
	for _, c := range embedded.ROIConfigs {
		if err := repo.UpsertROIConfig(ctx, c); err != nil {
			t.Fatalf("UpsertROIConfig: %v", err)
		}
	}
	for _, s := range embedded.Sections {
		if err := repo.UpsertSection(ctx, s); err != nil {
			t.Fatalf("UpsertSection: %v", err)
		}
	}
	if err := repo.UpsertContent(ctx, embedded.Content); err != nil {
		t.Fatalf("UpsertContent: %v", err)
	}
	for _, c := range embedded.CaseStudies {
		if err := repo.UpsertCaseStudy(ctx, c); err != nil {
			t.Fatalf("UpsertCaseStudy %d: %v", c.ID, err)
		}
	}
	for _, l := range embedded.Listings {
		if err := repo.UpsertListing(ctx, l); err != nil {
			t.Fatalf("UpsertListing %d: %v", l.ID, err)
		}
	}

	// Load back through the same path cmd/api uses.
	cat, table, err := app.LoadCatalog(ctx, repo)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(cat.Listings) != len(embedded.Listings) {
		t.Fatalf("listings: want %d, got %d", len(embedded.Listings), len(cat.Listings))
	}

	store := memory.New(cat.Listings, cat.Sections)
	srv := server.New(server.Options{AdminToken: "e2e"})
	srv.MountHandlers(&server.Handlers{
		Q:           app.NewQueryService(store, table, cat.Content, cat.CaseStudies, 10),
		A:           app.NewAdminService(store, table),
		MaxPageSize: 100,
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	var page struct {
		Total int `json:"total"`
	}
	if code := getJSON(t, ts.URL+"/v1/listings?state=CA", &page); code != http.StatusOK {
		t.Fatalf("listings status %d", code)
	}
	if page.Total != 5 {
		t.Fatalf("CA listings: want 5, got %d", page.Total)
	}

	var roi struct {
		EstimatedTotalReturn float64 `json:"estimatedTotalReturn"`
	}
	if code := getJSON(t, ts.URL+"/v1/roi?type=Commercial&amount=1000000&years=10", &roi); code != http.StatusOK {
		t.Fatalf("roi status %d", code)
	}
	if roi.EstimatedTotalReturn < 4.045e6 || roi.EstimatedTotalReturn > 4.046e6 {
		t.Fatalf("unexpected total return %v", roi.EstimatedTotalReturn)
	}

	var projects struct {
		Total int `json:"total"`
	}
	if code := getJSON(t, ts.URL+"/v1/projects?pageSize=3", &projects); code != http.StatusOK {
		t.Fatalf("projects status %d", code)
	}
	if projects.Total != len(embedded.CaseStudies) {
		t.Fatalf("projects: want %d, got %d", len(embedded.CaseStudies), projects.Total)
	}

	var landing struct {
		BeforeAfter []json.RawMessage `json:"beforeAfter"`
	}
	if code := getJSON(t, ts.URL+"/v1/landing", &landing); code != http.StatusOK {
		t.Fatalf("landing status %d", code)
	}
	if len(landing.BeforeAfter) != len(embedded.Content.BeforeAfter) {
		t.Fatalf("before/after: want %d, got %d", len(embedded.Content.BeforeAfter), len(landing.BeforeAfter))
	}

	if code := getJSON(t, ts.URL+"/v1/listings/999999", nil); code != http.StatusNotFound {
		t.Fatalf("unknown listing: want 404, got %d", code)
	}
}
