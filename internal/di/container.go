// Package di wires the application together. Every dependency is passed
// explicitly at construction; nothing holds ambient global state.
package di

import (
	"github.com/GoArmGo/BlogApp/internal/app"
	"github.com/GoArmGo/BlogApp/internal/config"
	"github.com/GoArmGo/BlogApp/internal/database/client"
	"github.com/GoArmGo/BlogApp/internal/database/storage"
	"github.com/GoArmGo/BlogApp/internal/handler"
	"github.com/GoArmGo/BlogApp/internal/logger"
	"github.com/GoArmGo/BlogApp/internal/rabbitmq"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// BuildApp initializes all dependencies and returns the assembled App.
func BuildApp() (*app.App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	sessionStorage := storage.NewSessionStorage(dbClient.DB, slogger)
	postStorage := storage.NewPostStorage(dbClient.Gorm, slogger)

	queueClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	userUseCase := usecase.NewUserUseCase(userStorage, slogger)
	sessionUseCase := usecase.NewSessionUseCase(sessionStorage, userStorage, cfg.SessionTTL, slogger)
	postUseCase := usecase.NewPostUseCase(postStorage, queueClient, slogger)

	blogHandler, err := handler.NewBlogHandler(userUseCase, postUseCase, sessionUseCase, cfg.SessionTTL, slogger)
	if err != nil {
		return nil, err
	}

	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		blogHandler,
		sessionUseCase,
		sessionStorage,
		postUseCase,
		queueClient,
		queueClient,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
