package main

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/roshdman/backend/src/app"
)

const (
	AppName    = "Roshdman Backend"
	AppVersion = "0.1.0"
)

// @title Roshdman API
// @version 1.0
// @description Personal accountability backend: challenges, witnesses, penalties and charities.
// @BasePath /
func main() {
	// .env is optional; real deployments pass the environment directly
	_ = godotenv.Load()

	cfg := app.NewAppConfig()

	// Create root logger
	rootLogger := app.InitLogger(*cfg.LogLevel)

	// Create root context, cancelled on SIGINT/SIGTERM
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	rootCtx = rootLogger.WithContext(rootCtx)

	rootLogger.Info().
		Str("version", AppVersion).
		Msgf("Launching %s", AppName)

	application := app.NewApplication(rootCtx, *cfg)

	var wg sync.WaitGroup
	wg.Add(1)
	go application.RunHTTPServer(rootCtx, &wg)
	wg.Wait()

	rootLogger.Info().Msgf("%s stopped", AppName)
}
