package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/GoArmGo/BlogApp/internal/di"
)

func main() {
	mode := flag.String("mode", "server", "run mode: server or worker")
	flag.Parse()

	// bootstrap logger, used only until the configured one exists
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	bootstrapLogger.Info("starting application", "mode", *mode)

	ctx := context.Background()

	application, err := di.BuildApp()
	if err != nil {
		bootstrapLogger.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	log := application.LoggerIns()

	if err := application.Run(ctx, mode); err != nil {
		log.Error("application run failed", "error", err)
		os.Exit(1)
	}

	log.Info("application stopped gracefully")
}
