package main

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"propshare/internal/adapters/observability"
	"propshare/internal/app"
	"propshare/internal/domain"
	"propshare/internal/seed"
	"propshare/internal/shared"
	mysqlrepo "propshare/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel, os.Stdout)

	workers := cfg.SeedWorkers
	if workers < 1 {
		workers = 1
	}
	log.Info().Int("workers", workers).Msg("seeder starting")

	cat, _, err := app.LoadCatalog(ctx, seed.Embedded{})
	if err != nil {
		log.Fatal().Err(err).Msg("embedded catalog invalid")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	var repo domain.CatalogWriter = mysqlrepo.New(db)

	// bands first so a partially seeded database never has listings without one
	for _, c := range cat.ROIConfigs {
		if err := repo.UpsertROIConfig(ctx, c); err != nil {
			log.Fatal().Err(err).Str("type", string(c.PropertyType)).Msg("roi config upsert failed")
		}
	}
	for _, s := range cat.Sections {
		if err := repo.UpsertSection(ctx, s); err != nil {
			log.Fatal().Err(err).Str("key", s.SectionKey).Msg("section upsert failed")
		}
	}
	if err := repo.UpsertContent(ctx, cat.Content); err != nil {
		log.Fatal().Err(err).Msg("landing content upsert failed")
	}
	for _, c := range cat.CaseStudies {
		if err := repo.UpsertCaseStudy(ctx, c); err != nil {
			log.Fatal().Err(err).Int64("id", c.ID).Msg("case study upsert failed")
		}
	}

	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for _, l := range cat.Listings {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(l domain.Listing) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.UpsertListing(ctx, l); err != nil {
				failed.Add(1)
				log.Warn().Int64("id", l.ID).Err(err).Msg("listing upsert failed")
				return
			}
			log.Debug().Int64("id", l.ID).Msg("listing upsert ok")
		}(l)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Fatal().Int64("failed", n).Int("total", len(cat.Listings)).Msg("seeding incomplete")
	}
	log.Info().Int("listings", len(cat.Listings)).Msg("seeding completed")
}
