package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xw1nchester/shopbuddy-backend/internal/app"
	"github.com/xw1nchester/shopbuddy-backend/internal/config"
	"go.uber.org/zap"
)

const (
	envLocal = "local"

	shutdownTimeout = 10 * time.Second
)

// @title		ShopBuddy API
// @version	1.0
// @BasePath	/api
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.NewApp(ctx, log, *cfg)
	if err != nil {
		log.Fatal("failed to init app", zap.Error(err))
	}

	go application.MustRun()

	<-ctx.Done()

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		os.Exit(1)
	}

	log.Info("server stopped")
}

func setupLogger(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if env == envLocal {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}

	return log
}
