// README: Entry point; loads config, wires the ride flows and stores, starts the HTTP gateway.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rideapp/internal/config"
	httptransport "rideapp/internal/http"
	"rideapp/internal/infra"
	"rideapp/internal/logger"
	"rideapp/internal/messages"
	"rideapp/internal/modules/journal"
	"rideapp/internal/modules/ride"
	"rideapp/internal/modules/session"
	"rideapp/internal/rideapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.LevelError, os.Stderr).Error("load config", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log.Level, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := httptransport.ServerDeps{
		Messages:        messages.Default(),
		Log:             log,
		ConfirmDebounce: cfg.Session.ConfirmDebounce,
	}

	api := rideapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log.With("component", "rideapi"))
	deps.Rides = ride.NewRepository(api, deps.Messages, log.With("component", "ride"))

	if cfg.Redis.Addr != "" {
		rdb, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Error("redis init", err)
			os.Exit(1)
		}
		defer rdb.Close()
		deps.Sessions = session.NewRedisStore(rdb, cfg.Session.TTL)
	} else {
		log.Warn("RIDEAPP_REDIS_ADDR not set; sessions kept in memory")
		deps.Sessions = session.NewMemoryStore(cfg.Session.TTL)
	}

	if cfg.DB.DSN != "" {
		pool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Error("postgres init", err)
			os.Exit(1)
		}
		defer pool.Close()
		store := journal.NewStore(pool)
		if err := store.Migrate(ctx); err != nil {
			log.Error("journal migrate", err)
			os.Exit(1)
		}
		deps.Journal = store
	}

	if cfg.Firebase.ProjectID != "" {
		verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
		if err != nil {
			log.Error("firebase init", err)
			os.Exit(1)
		}
		deps.Verifier = verifier
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           httptransport.NewServer(deps).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Action("server_start").Info("listening", "addr", cfg.HTTP.Addr, "api_base_url", cfg.API.BaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http server", err)
		os.Exit(1)
	}
}
