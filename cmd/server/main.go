package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/TextRealm_Go/internal/bootstrap"
	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/game"
	"github.com/osse101/TextRealm_Go/internal/metrics"
	"github.com/osse101/TextRealm_Go/internal/notify"
	"github.com/osse101/TextRealm_Go/internal/server"
	"github.com/osse101/TextRealm_Go/internal/sse"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	tuning, err := config.LoadTuning(cfg.GameConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		return err
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		_ = storage.Close()
		return err
	}

	events := sse.NewHub()
	events.Start()
	hub := notify.NewHub()
	hub.AddObserver(events)

	g := game.New(bootstrap.GameConfig(cfg, tuning), game.Deps{
		Items:        storage.Items,
		ProfileStore: storage.Profiles,
		Bus:          bus,
		Hub:          hub,
		Recorder:     metrics.CommandRecorder{},
	})
	components := bootstrap.ShutdownComponents{Game: g, Events: events, Storage: storage}

	if err := g.Boot(ctx); err != nil {
		bootstrap.GracefulShutdown(ctx, components)
		return err
	}

	var health server.HealthChecker
	if storage.Health != nil {
		health = storage.Health
	}
	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		ObserverAPIKey: cfg.ObserverAPIKey,
		AllowedOrigins: cfg.AllowedOrigins,
	}, g, server.TrustingAuthenticator{}, sse.Handler(events), health)
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)
	return err
}
