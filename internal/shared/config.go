package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	SourceEmbedded = "embedded"
	SourceMySQL    = "mysql"
)

type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	MetricsAddr     string
	CatalogSource   string
	MySQLDSN        string
	AdminToken      string
	RateLimitRPS    int
	RateLimitBurst  int
	DefaultPageSize int
	MaxPageSize     int
	RequestTimeout  time.Duration
	SeedWorkers     int
}

// Load reads the environment, after merging an optional .env file from the working
// directory. Variables already set in the environment win over .env.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to read .env")
	}
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		LogLevel:        env("LOG_LEVEL", "info"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ""),
		CatalogSource:   env("CATALOG_SOURCE", SourceEmbedded),
		MySQLDSN:        env("MYSQL_DSN", "root:root@tcp(localhost:3306)/propshare?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		AdminToken:      env("ADMIN_TOKEN", ""),
		RateLimitRPS:    atoi("RATE_LIMIT_RPS", 50),
		RateLimitBurst:  atoi("RATE_LIMIT_BURST", 100),
		DefaultPageSize: atoi("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     atoi("MAX_PAGE_SIZE", 100),
		RequestTimeout:  time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
		SeedWorkers:     atoi("SEED_WORKERS", 4),
	}
	if c.AdminToken == "" {
		log.Warn().Msg("ADMIN_TOKEN is empty; admin routes will reject every request")
	}
	if c.CatalogSource != SourceEmbedded && c.CatalogSource != SourceMySQL {
		log.Warn().Str("source", c.CatalogSource).Msg("unknown CATALOG_SOURCE, using embedded")
		c.CatalogSource = SourceEmbedded
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
