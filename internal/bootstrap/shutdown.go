package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/game"
	"github.com/osse101/TextRealm_Go/internal/server"
	"github.com/osse101/TextRealm_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server  *server.Server
	Game    *game.Game
	Events  *sse.Hub
	Storage *Storage
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting connections)
// 2. Game (stop the clock, save everyone, drain persistence)
// 3. Observer stream
// 4. Storage
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Game != nil {
		if err := c.Game.Shutdown(ctx); err != nil {
			slog.Error(LogMsgGameShutdownFailed, "error", err)
		}
	}

	if c.Events != nil {
		c.Events.Stop()
	}

	if err := c.Storage.Close(); err != nil {
		slog.Error(LogMsgStorageCloseFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}
