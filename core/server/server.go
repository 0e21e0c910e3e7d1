package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetcare-api/core/cache"
	"vetcare-api/core/config"
	"vetcare-api/core/logger"
	"vetcare-api/core/middleware"
	"vetcare-api/core/queue"
	"vetcare-api/core/storage"
	"vetcare-api/data"
	"vetcare-api/modules/animal"
	animalrepository "vetcare-api/modules/animal/repository"
	"vetcare-api/modules/appointment"
	appointmentrepository "vetcare-api/modules/appointment/repository"
	"vetcare-api/modules/auth"
	authrepository "vetcare-api/modules/auth/repository"
	"vetcare-api/modules/caselog"
	caselogrepository "vetcare-api/modules/caselog/repository"
	"vetcare-api/modules/healthrecord"
	healthrecordrepository "vetcare-api/modules/healthrecord/repository"
	"vetcare-api/modules/inventory"
	inventoryrepository "vetcare-api/modules/inventory/repository"
	"vetcare-api/modules/notification"
	notificationrepository "vetcare-api/modules/notification/repository"
	"vetcare-api/modules/task"
	taskrepository "vetcare-api/modules/task/repository"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole application and blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	c, err := cache.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer c.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	uploader := storage.NewUploader(cfg.Storage)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			logger.Info("Request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
			)
			return nil
		},
	}))

	mw := middleware.New(c)

	// Repositories, seeded with the demo dataset.
	userRepo := authrepository.NewUserRepository(data.Users())
	catalogRepo := animalrepository.NewCatalogRepository(data.Members())
	appointmentRepo := appointmentrepository.NewAppointmentRepository()
	appointmentRepo.Seed(data.Appointments())
	taskRepo := taskrepository.NewTaskRepository()
	taskRepo.Seed(data.Tasks())
	caseRepo := caselogrepository.NewCaseRepository()
	caseRepo.Seed(data.Cases())
	itemRepo := inventoryrepository.NewItemRepository()
	itemRepo.Seed(data.Items())
	recordRepo := healthrecordrepository.NewHealthRecordRepository()
	notificationRepo := notificationrepository.NewNotificationRepository()

	// Background task worker.
	asynqServer, mux := queue.NewServer(cfg.Redis, cfg.Queue)

	// Modules. Notification comes first so the others can use it as their
	// notifier.
	notificationSvc := notification.Init(e, mw, notificationRepo, queueClient, userRepo, mux)
	auth.Init(e, mw, userRepo, c)
	animal.Init(e, mw, catalogRepo)
	appointment.Init(e, mw, appointmentRepo, userRepo, catalogRepo, notificationSvc)
	healthrecord.Init(e, mw, recordRepo, catalogRepo, uploader)
	task.Init(e, mw, taskRepo, userRepo)
	caselog.Init(e, mw, caseRepo, catalogRepo, notificationSvc)
	inventory.Init(e, mw, itemRepo, notificationSvc)

	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Error("Server:AsynqWorker:Error", "error", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error", "error", err)
		}
	}()
	logger.Info("Server:Started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server:ShuttingDown")
	asynqServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
