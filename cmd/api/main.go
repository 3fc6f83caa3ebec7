package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "propshare/internal/adapters/http_server"
	"propshare/internal/adapters/observability"
	"propshare/internal/app"
	"propshare/internal/domain"
	"propshare/internal/seed"
	"propshare/internal/shared"
	"propshare/internal/storage/memory"
	mysqlrepo "propshare/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stdout)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	cat, table, err := app.LoadCatalog(ctx, catalogSource(cfg))
	cancel()
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("catalog load failed")
	}

	// deps
	store := memory.New(cat.Listings, cat.Sections)
	q := app.NewQueryService(store, table, cat.Content, cat.CaseStudies, cfg.DefaultPageSize)
	a := app.NewAdminService(store, table)

	// http
	srv := server.New(server.Options{
		Timeout:        cfg.RequestTimeout,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		AdminToken:     cfg.AdminToken,
	})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, A: a, MaxPageSize: cfg.MaxPageSize})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func catalogSource(cfg shared.Config) domain.CatalogSource {
	if cfg.CatalogSource != shared.SourceMySQL {
		return seed.Embedded{}
	}
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")
	return mysqlrepo.New(db)
}
