package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"team-membership-service/internal/config"
	"team-membership-service/internal/database"
	"team-membership-service/internal/domain"
	"team-membership-service/internal/handler"
	"team-membership-service/internal/repository"
	"team-membership-service/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf(".env not found: %v", err)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// Часы и генератор идентификаторов
	clock := domain.SystemClock{}
	ids := domain.UUIDGenerator{}

	// Репозитории
	assignmentRepo := repository.NewAssignmentRepository(db, clock, ids)
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Use Cases
	assignmentUC := usecase.NewAssignmentUseCase(assignmentRepo, teamRepo, userRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo)
	registrationUC := usecase.NewRegistrationUseCase(userRepo, teamRepo, assignmentRepo, ids)

	// Echo + Handlers
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	apiHandler := handler.NewAPIHandler(assignmentUC, teamUC, registrationUC, logger)
	apiHandler.RegisterRoutes(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
