package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/core/ports"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/handler"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// App bundles the wired components and owns their lifecycle.
type App struct {
	Config *config.Config

	logger            *slog.Logger
	dbClient          *client.Client
	blogHandler       *handler.BlogHandler
	sessionUseCase    usecase.SessionUseCase
	sessionStorage    ports.SessionStorage
	postUseCase       usecase.PostUseCase
	postEventConsumer ports.PostEventConsumer
	queueCloser       interface{ Close() }
}

// NewApp assembles the application from its wired dependencies.
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	blogHandler *handler.BlogHandler,
	sessionUseCase usecase.SessionUseCase,
	sessionStorage ports.SessionStorage,
	postUseCase usecase.PostUseCase,
	postEventConsumer ports.PostEventConsumer,
	queueCloser interface{ Close() },
) *App {
	return &App{
		Config:            cfg,
		logger:            logger,
		dbClient:          dbClient,
		blogHandler:       blogHandler,
		sessionUseCase:    sessionUseCase,
		sessionStorage:    sessionStorage,
		postUseCase:       postUseCase,
		postEventConsumer: postEventConsumer,
		queueCloser:       queueCloser,
	}
}

// LoggerIns returns the application logger.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run starts the application in the given mode and blocks until shutdown.
func (a *App) Run(ctx context.Context, mode *string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", *mode)

	var err error
	switch *mode {
	case "server":
		err = a.runServer(ctx)
	case "worker":
		err = a.runWorker(ctx)
	default:
		err = fmt.Errorf("unknown mode: %s (use 'server' or 'worker')", *mode)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}
	if err != nil {
		return err
	}

	a.logger.Info("stopped cleanly")
	return nil
}

// Shutdown closes all application resources.
func (a *App) Shutdown() error {
	if a.queueCloser != nil {
		a.queueCloser.Close()
	}
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("close database: %w", err)
		}
	}
	return nil
}
