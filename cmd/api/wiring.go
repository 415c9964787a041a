package main

import (
	"context"
	"fmt"
	"io"

	"lost-found-pets/internal/adapters/geolocation/ipgeo"
	"lost-found-pets/internal/adapters/geolocation/static"
	pg "lost-found-pets/internal/adapters/storage/postgres"
	"lost-found-pets/internal/adapters/storage/sqlite"
	"lost-found-pets/internal/config"
	"lost-found-pets/internal/platform/logger"
	"lost-found-pets/internal/ports/geolocation"
	"lost-found-pets/internal/ports/kv"
	"lost-found-pets/internal/store"

	"github.com/spf13/cobra"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newLogger: out nil = stdout.
func newLogger(cfg config.Config, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: out,
	})
}

// openStorage: Postgres si hay DB_DSN; si no, SQLite en DataPath.
func openStorage(cfg config.Config, log logger.Logger) (kv.Storage, func() error, error) {
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		log.Info("storage ready", map[string]any{"backend": "postgres"})
		return pg.NewKVRepo(db), db.Close, nil
	}

	repo, err := sqlite.Open(cfg.DataPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite: %w", err)
	}
	log.Info("storage ready", map[string]any{"backend": "sqlite", "path": cfg.DataPath})
	return repo, repo.Close, nil
}

// buildLocator: servicio por IP si hay GEO_URL, posición fija si hay
// GEO_LAT/GEO_LNG, o ninguno (geolocalización no soportada).
func buildLocator(cfg config.Config, log logger.Logger) geolocation.Locator {
	if cfg.GeoURL != "" {
		return ipgeo.New(ipgeo.Config{
			URL:     cfg.GeoURL,
			APIKey:  cfg.GeoAPIKey,
			Timeout: cfg.GeoTimeout,
			Logger:  log,
		})
	}
	if pos := cfg.StaticLocation(); pos != nil {
		return static.New(pos)
	}
	return nil
}

// openStore abre storage + store ya hidratado.
func openStore(ctx context.Context, cfg config.Config, log logger.Logger) (*store.Store, func() error, error) {
	storage, closeFn, err := openStorage(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	st := store.Open(ctx, storage, store.Options{
		Logger:        log,
		Locator:       buildLocator(cfg, log),
		LocateTimeout: cfg.GeoTimeout,
		Prefix:        cfg.KeyPrefix,
	})
	return st, closeFn, nil
}

func syncLogger(log logger.Logger) {
	if z, ok := log.(*logger.ZapLogger); ok {
		_ = z.Sync()
	}
}
