package commands

import (
	"fmt"

	"github.com/wonny/quantdash/internal/dashboard"
	"github.com/wonny/quantdash/internal/snapshot"
	"github.com/wonny/quantdash/internal/trendconfig"
	"github.com/wonny/quantdash/pkg/config"
	"github.com/wonny/quantdash/pkg/database"
	"github.com/wonny/quantdash/pkg/logger"
	"github.com/wonny/quantdash/pkg/redis"
)

// deps holds the wired application dependencies shared by all commands.
type deps struct {
	cfg     *config.Config
	log     *logger.Logger
	service *dashboard.Service

	closers []func() error
}

// Close releases database and Redis connections.
func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

// initDeps wires config → logger → snapshot store → cache → service.
// ⭐ SSOT: 커맨드별 중복 조립 금지, 조립은 여기서만
func initDeps() (*deps, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	d := &deps{cfg: cfg, log: log}

	// 3. Trend parameters (flag > env > built-in defaults)
	trendPath := trendConfigFile
	if trendPath == "" {
		trendPath = cfg.TrendConfigPath
	}

	trendCfg := trendconfig.Default()
	if trendPath != "" {
		trendCfg, err = trendconfig.Load(trendPath)
		if err != nil {
			return nil, fmt.Errorf("load trend config: %w", err)
		}
		log.WithField("path", trendPath).Info("Loaded trend parameters")
	}

	// 4. Snapshot store: Postgres when DATABASE_URL is set, else files
	var store snapshot.Store
	if cfg.UsesDatabase() {
		db, err := database.New(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		d.closers = append(d.closers, func() error { db.Close(); return nil })
		store = snapshot.NewPGStore(db.Pool)
		log.Info("Using Postgres snapshot store")
	} else {
		store = snapshot.NewFileStore(cfg.StateDir, log)
		log.WithField("dir", cfg.StateDir).Info("Using file snapshot store")
	}

	// 5. Response cache (inert when REDIS_ENABLED=false)
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	d.closers = append(d.closers, redisClient.Close)
	cache := redis.NewCache(redisClient, "quantdash")

	// 6. Dashboard service
	d.service = dashboard.New(store, cache, trendCfg, cfg.CacheTTL, log)

	return d, nil
}
