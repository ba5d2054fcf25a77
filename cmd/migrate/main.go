package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/joho/godotenv/autoload"

	"taskboard/internal/config"
)

const migrationsDir = "migrations"

func main() {
	log.Logger = log.Output(zerolog.NewConsoleWriter())

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read env")
	}

	pgCfg := cfg.Postgres
	connURL := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pgCfg.Username, pgCfg.Password, pgCfg.Host,
		pgCfg.Port, pgCfg.Database, pgCfg.SSLMode)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read migrations directory")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".sql" {
			files = append(files, entry.Name())
		}
	}
	// Migration files are numbered; lexical order is apply order.
	sort.Strings(files)

	for _, name := range files {
		migration, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to read migration")
		}

		_, err = pool.Exec(ctx, string(migration))
		if err != nil {
			log.Fatal().Err(err).Str("file", name).Msg("failed to execute migration")
		}
		log.Info().Str("file", name).Msg("applied migration")
	}

	log.Info().Int("count", len(files)).Msg("migrations completed")
}
