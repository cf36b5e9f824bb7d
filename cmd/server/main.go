// Package main initializes and starts the Star Wars blog API server,
// setting up configuration, logging, the database connection, repositories,
// services and handlers.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/starwars-api/internal/config"
	"github.com/atinyakov/starwars-api/internal/db"
	"github.com/atinyakov/starwars-api/internal/logger"
	"github.com/atinyakov/starwars-api/internal/repository"
	"github.com/atinyakov/starwars-api/internal/server/handler/http"
	"github.com/atinyakov/starwars-api/internal/service"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse flags, config file and environment.
	options, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open the store and make sure the schema exists.
	conn, dialect, err := db.Open(ctx, options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}
	defer conn.Close()
	zapLogger.Info("database ready", zap.String("dialect", string(dialect)))

	db.StartOrphanFavoriteCleaner(ctx, conn, options.SweepInterval, zapLogger)

	// Initialize repositories.
	peopleRepo := repository.NewPeopleRepository(conn)
	planetRepo := repository.NewPlanetRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	favoriteRepo := repository.NewFavoriteRepository(conn)

	// Initialize business-logic services.
	peopleService := service.NewPeopleService(peopleRepo)
	planetService := service.NewPlanetService(planetRepo)
	userService := service.NewUserService(userRepo, favoriteRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo)

	// Build the router with middleware and routes.
	router := http.NewRouter(
		&http.PeopleHandler{PeopleService: peopleService, Logger: zapLogger},
		&http.PlanetHandler{PlanetService: planetService, Logger: zapLogger},
		&http.UserHandler{UserService: userService, Logger: zapLogger},
		&http.FavoriteHandler{FavoriteService: favoriteService, Logger: zapLogger},
		options.CORSAllowedOrigins,
		zapLogger,
	)

	server := &nethttp.Server{
		Addr:              options.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Address))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Error("HTTP server failed", zap.Error(err))
		}
	case <-ctx.Done():
		zapLogger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
