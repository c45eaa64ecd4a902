package main

//	@title			Workdesk API
//	@version		1.0
//	@description	Business records and dashboard API for Workdesk.
//	@schemes		http https
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"github.com/workdesk/workdesk/internal/bootstrap"
	"github.com/workdesk/workdesk/internal/config"
	"github.com/workdesk/workdesk/internal/infra/cache"
	dbpkg "github.com/workdesk/workdesk/internal/infra/db"
	"github.com/workdesk/workdesk/internal/modules/handler"
	"github.com/workdesk/workdesk/internal/router"
	"github.com/workdesk/workdesk/internal/telemetry"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	var db *gorm.DB
	if cfg.Database.Driver != dbpkg.DriverMemory {
		db = do.MustInvoke[*gorm.DB](inj)
	}
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = do.MustInvoke[*redis.Client](inj)
	}

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// plugins must be registered after the tracer provider is set
		if db != nil {
			if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
				log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin", "err", err)
			}
		}
		if rdb != nil {
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin", "err", err)
			}
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:           cfg,
		Log:              log,
		Entities:         do.MustInvoke[[]handler.Routes](inj),
		SettingsHandler:  do.MustInvoke[*handler.SettingsHandler](inj),
		DashboardHandler: do.MustInvoke[*handler.DashboardHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr, "driver", cfg.Database.Driver)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	if err := inj.Shutdown(); err != nil {
		log.Sugar().Warnw("container shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
