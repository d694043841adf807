package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/config"
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/skilltree-api/internal/redis"
	"github.com/KirkDiggler/skilltree-api/internal/repositories/build"
)

// sessionIDPrefix prefixes generated planning session ids
const sessionIDPrefix = "build"

// dependencies are the long lived objects behind the gRPC handler
type dependencies struct {
	catalog  *catalog.Catalog
	planner  planner.Service
	registry *prometheus.Registry
	closers  []func() error
}

// Close releases storage connections in reverse order of creation
func (d *dependencies) Close() error {
	var first error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	d.closers = nil
	return first
}

func wire(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{registry: prometheus.NewRegistry()}
	deps.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	c, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	deps.catalog = c

	allocator, err := engine.New(&engine.Config{Catalog: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	repo, err := openRepository(ctx, cfg, deps)
	if err != nil {
		_ = deps.Close()
		return nil, err
	}

	svc, err := planner.NewOrchestrator(&planner.Config{
		Engine:         allocator,
		Repository:     repo,
		EventBus:       events.NewBus(),
		IDGenerator:    idgen.NewUUID(sessionIDPrefix),
		ShareBaseURL:   cfg.ShareBaseURL,
		Metrics:        planner.NewMetrics(deps.registry),
		Clock:          clock.New(),
		SessionIdleTTL: cfg.SessionIdleTTL,
	})
	if err != nil {
		_ = deps.Close()
		return nil, errors.Wrap(err, "failed to create planner")
	}
	deps.planner = svc

	slog.Info("Planner ready",
		"catalog_version", c.Version(),
		"skills", c.Len(),
		"store", cfg.Store)

	return deps, nil
}

// loadCatalog reads the catalog at path, or the embedded default when path
// is empty
func loadCatalog(path string) (*catalog.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return catalog.Default(), nil
	}

	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load catalog %s", path)
	}
	return c, nil
}

func openRepository(ctx context.Context, cfg *config.Config, deps *dependencies) (build.Repository, error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.Connect(cfg.RedisAddrs, &redisclient.Options{UseTLS: cfg.RedisTLS})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis configuration")
		}
		deps.closers = append(deps.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach redis")
		}

		return build.NewRedisRepository(&build.RedisConfig{
			Client: client,
			Clock:  clock.New(),
			TTL:    cfg.BuildTTL,
		})

	case config.StoreSQLite:
		db, err := build.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, db.Close)

		return build.NewSQLiteRepository(&build.SQLiteConfig{
			DB:    db,
			Clock: clock.New(),
		})

	case config.StoreMemory:
		return build.NewInMemory(clock.New()), nil

	default:
		return nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
	}
}

// newLogger returns a JSON slog logger at the named level
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
