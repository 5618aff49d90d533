package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-election-api/api/swagger"
	"github.com/noah-isme/sma-election-api/internal/models"
	"github.com/noah-isme/sma-election-api/internal/repository"
	"github.com/noah-isme/sma-election-api/internal/router"
	"github.com/noah-isme/sma-election-api/pkg/cache"
	"github.com/noah-isme/sma-election-api/pkg/config"
	"github.com/noah-isme/sma-election-api/pkg/database"
	"github.com/noah-isme/sma-election-api/pkg/logger"
)

// @title SMA Election API
// @version 1.0.0
// @description School representative election: candidatures, voting and results
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logr.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	ctx := context.Background()
	if err := repository.NewSettingRepository(db).EnsureDefault(ctx, models.PhaseSettingKey, string(models.PhaseCandidature)); err != nil {
		logr.Fatal("failed to initialise election phase", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient, err = cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
		}
	}

	deps, err := router.NewDependencies(cfg, logr, db, redisClient)
	if err != nil {
		logr.Fatal("failed to build dependencies", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.New(cfg, logr, deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
	logr.Info("server stopped")
}
