package main

import (
	"Source_Health_Sync/internal/health-sync/adapter"
	"Source_Health_Sync/internal/health-sync/alert"
	"Source_Health_Sync/internal/health-sync/api/handler"
	"Source_Health_Sync/internal/health-sync/api/routes"
	"Source_Health_Sync/internal/health-sync/api/ws"
	"Source_Health_Sync/internal/health-sync/backend"
	"Source_Health_Sync/internal/health-sync/cache"
	"Source_Health_Sync/internal/health-sync/config"
	"Source_Health_Sync/internal/health-sync/controller"
	"Source_Health_Sync/internal/health-sync/tracker"
	"Source_Health_Sync/pkg/infra"
	"Source_Health_Sync/pkg/logger"
	"Source_Health_Sync/pkg/mail"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/health-sync-service.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("create log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "health-sync-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up the cache store, falling back to memory-only when redis is
	// unreachable so synchronization still works
	var store cache.Store
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Warn("failed to connect to redis, degrading to in-memory cache", zap.Error(err))
		store = cache.NewMemoryStore(zapLogger, appConfig.Sync.CacheVersion)
	} else {
		zapLogger.Info("connected to redis successfully")
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, zapLogger, appConfig.Sync.CacheVersion)
	}

	// set up dependencies
	connTracker := tracker.NewTracker(tracker.Config{
		DegradedThreshold: appConfig.Sync.DegradedThreshold,
		OfflineThreshold:  appConfig.Sync.OfflineThreshold,
		InitialBackoff:    appConfig.Sync.ReconnectInitialBackoff,
		MaxBackoff:        appConfig.Sync.ReconnectMaxBackoff,
	}, zapLogger)
	perf := tracker.NewPerformanceRecorder()
	backendClient := backend.NewClient(
		appConfig.Backend.BaseURL,
		appConfig.Backend.RequestTimeout,
		appConfig.Backend.MaxRetries,
		appConfig.Backend.InitialBackoff,
	)
	streamClient := backend.NewStreamClient(appConfig.Backend.BaseURL, appConfig.Backend.StreamPath, zapLogger)

	var notifier *alert.Notifier
	if appConfig.Mail.AlertsEnabled {
		mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
		notifier = alert.NewNotifier(zapLogger, mailSender, []string{appConfig.Mail.AdminMailAddress})
	}

	var degradationNotifier controller.DegradationNotifier
	if notifier != nil {
		degradationNotifier = notifier
	}
	healthController := controller.NewHealthController(
		zapLogger,
		store,
		connTracker,
		perf,
		backendClient,
		streamClient,
		degradationNotifier,
		controller.Options{
			CacheTTL:              appConfig.Sync.CacheTTL,
			PollInterval:          appConfig.Sync.PollInterval,
			ManualRefreshInterval: appConfig.Sync.ManualRefreshInterval,
		},
	)
	healthController.Start(context.Background())
	defer healthController.Stop()

	monitor := adapter.NewHealthMonitorAdapter(healthController, appConfig.Sync.CacheTTL)
	healthHandler := handler.NewHealthHandler(zapLogger, monitor)
	hub := ws.NewHub(zapLogger, monitor)

	// Create cronjob for the daily health summary
	if notifier != nil {
		cronJob := cron.New()
		_, err = cronJob.AddFunc("0 0 * * *", func() {
			zapLogger.Info("cronjob called")
			e := notifier.SendDailySummary(healthController.Metrics(), healthController.SourceHealth())
			if e != nil {
				zapLogger.Error("failed to send daily health summary", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily summary", zap.Error(err))
		}
		cronJob.Start()
		defer cronJob.Stop()
	}

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddHealthRoutes(r, healthHandler, hub)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
