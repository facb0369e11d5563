// Package server initializes and runs the wodtracker API server.
// It wires storage, services, the HTTP surface, and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"wodtracker/internal/logging"
	"wodtracker/internal/server/config"
	"wodtracker/internal/server/httpapi"
	"wodtracker/internal/server/metrics"
	"wodtracker/internal/server/storage"
	"wodtracker/internal/server/users"
	"wodtracker/internal/server/workouts"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager *storage.PostgresManager
	server  *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	manager, err := storage.NewPostgresManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	userService := users.NewService(manager.Users(), c)
	workoutService := workouts.NewService(manager.Workouts())

	router := httpapi.NewRouter(&httpapi.RouterDeps{
		UserService:    userService,
		WorkoutService: workoutService,
		JWTSecret:      []byte(c.SecretKey),
		AuthLimiter:    httpapi.NewRateLimiter(c.AuthRateLimitPerMinute),
		Collector:      collector,
		Registry:       registry,
		Logger:         logger,
	})

	srv := httpapi.NewServer(c.EndpointAddr, router, logger)

	return &App{config: c, logger: logger, manager: manager, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, "closing database", "error", err.Error())
	}
}
