package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yungbote/orbital-nexus-backend/internal/data/db"
	apphttp "github.com/yungbote/orbital-nexus-backend/internal/http"
	"github.com/yungbote/orbital-nexus-backend/internal/http/response"
	"github.com/yungbote/orbital-nexus-backend/internal/observability"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime/bus"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Handlers Handlers
	Metrics  *observability.Metrics
	Hub      *realtime.Hub
	Clients  Clients
	Server   *apphttp.Server

	pg           *db.PostgresService
	bus          bus.Bus
	otelShutdown func(context.Context) error
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	started      bool
	closeOnce    sync.Once
}

func New() (*App, error) {
	if err := loadDotEnv(); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg := LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Configuration loaded", "environment", cfg.Environment, "port", cfg.Port)

	if cfg.IsDevelopment() {
		response.ExposeDetails = true
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)

	pg, err := db.NewPostgresService(cfg.DB, log)
	if err != nil {
		cancel()
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	theDB := pg.DB()
	if cfg.AutoMigrate {
		if err := db.AutoMigrateAll(theDB); err != nil {
			cancel()
			_ = pg.Close()
			log.Sync()
			return nil, fmt.Errorf("postgres automigrate: %w", err)
		}
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.New()
	}

	clients := wireClients(ctx, log, cfg)
	hub := realtime.NewHub(log, metrics)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)
	handlerset := wireHandlers(ctx, log, cfg, serviceset, hub)
	server := wireServer(log, cfg, metrics, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Handlers:     handlerset,
		Metrics:      metrics,
		Hub:          hub,
		Clients:      clients,
		Server:       server,
		pg:           pg,
		otelShutdown: otelShutdown,
		ctx:          ctx,
		cancel:       cancel,
	}, nil
}

// Start launches the broadcaster, the optional redis forwarder and the metric collectors.
func (a *App) Start() {
	if a == nil || a.started {
		return
	}
	a.started = true

	var sink realtime.Sink = a.Hub
	if a.Clients.Redis != nil {
		if b, err := a.startBus(); err != nil {
			a.Log.Warn("redis ws bus disabled", "error", err)
		} else {
			a.bus = b
			sink = bus.NewPublishSink(b, a.Log)
		}
	}

	broadcaster := realtime.NewBroadcaster(a.Log, sink, realtime.DefaultIntervals())
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := broadcaster.Run(a.ctx); err != nil {
			a.Log.Error("broadcaster stopped", "error", err)
		}
	}()

	a.Metrics.StartPostgresCollector(a.ctx, a.Log, a.DB)
	a.Metrics.StartRedisCollector(a.ctx, a.Log, a.Clients.Redis)
}

func (a *App) startBus() (bus.Bus, error) {
	b, err := bus.NewRedisBus(a.Log, a.Clients.Redis, a.Cfg.RedisChannel)
	if err != nil {
		return nil, err
	}
	if err := b.StartForwarder(a.ctx, a.Hub.Broadcast); err != nil {
		return nil, err
	}
	a.Log.Info("redis ws bus started", "channel", a.Cfg.RedisChannel)
	return b, nil
}

// Run blocks serving HTTP until Shutdown.
func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port, "environment", a.Cfg.Environment)
	return a.Server.Run()
}

// Shutdown stops background work first so websocket pumps exit, then drains HTTP.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil {
		return nil
	}
	a.cancel()
	a.Hub.Shutdown()
	err := a.Server.Shutdown(ctx)
	a.Close()
	return err
}

func (a *App) Close() {
	if a == nil {
		return
	}
	a.closeOnce.Do(func() {
		a.cancel()
		a.Hub.Shutdown()
		a.wg.Wait()
		if a.bus != nil {
			_ = a.bus.Close()
		}
		a.Clients.Close()
		if a.pg != nil {
			if err := a.pg.Close(); err != nil {
				a.Log.Warn("postgres close failed", "error", err)
			}
		}
		if a.otelShutdown != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := a.otelShutdown(ctx); err != nil {
				a.Log.Warn("otel shutdown failed", "error", err)
			}
			cancel()
		}
		a.Log.Info("Application stopped")
		a.Log.Sync()
	})
}
