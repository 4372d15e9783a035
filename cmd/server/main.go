package main

import (
	"flag"
	"os"
	"strings"
	"syscall"

	"github.com/freshmart-next/internal/app"
	"github.com/freshmart-next/internal/config"
	"github.com/freshmart-next/internal/logger"
	"github.com/freshmart-next/internal/models"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.UserJWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default, configure a strong random key in production")
		}
	} else if isWeakSecret(cfg.UserJWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default")
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("failed to initialize database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("failed to migrate database: %v", err)
	}

	defaultUser := os.Getenv("FM_DEFAULT_USERNAME")
	defaultPass := os.Getenv("FM_DEFAULT_PASSWORD")
	if cfg.Server.Mode == "release" && defaultPass == "" {
		stdLog.Printf("warning: FM_DEFAULT_PASSWORD not set, skipping default user initialization")
	} else if err := models.InitDefaultUser(defaultUser, defaultPass); err != nil {
		stdLog.Printf("warning: default user initialization failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("service exited with error: %v", err)
	}
}

func isWeakSecret(secret string) bool {
	trimmed := strings.TrimSpace(secret)
	if len(trimmed) < 16 {
		return true
	}
	lowered := strings.ToLower(trimmed)
	weak := []string{"secret", "changeme", "password", "freshmart"}
	for _, w := range weak {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
