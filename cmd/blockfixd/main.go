package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/joho/godotenv"

	"blockfix-backend/config"
	"blockfix-backend/internal/analytics"
	"blockfix-backend/internal/api"
	"blockfix-backend/internal/db"
	"blockfix-backend/internal/lifecycle"
	"blockfix-backend/internal/mirror"
	"blockfix-backend/internal/notification"
	"blockfix-backend/internal/repo"
	"blockfix-backend/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "blockfix-backend ", log.LstdFlags)

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entityStore := store.NewGormStore(gormDB)

	properties := repo.NewPropertyRepo(entityStore)
	maintenance := repo.NewMaintenanceRepo(entityStore)
	contractors := repo.NewContractorRepo(entityStore)
	reports := repo.NewReportRepo(entityStore)
	settings := repo.NewSettingsRepo(entityStore)
	subscriptions := repo.NewSubscriptionRepo(entityStore)

	seeders := []func(context.Context) error{
		properties.Seed, maintenance.Seed, contractors.Seed, reports.Seed, settings.Seed,
	}
	for _, seed := range seeders {
		if err := seed(ctx); err != nil {
			logger.Fatalf("failed to seed collections: %v", err)
		}
	}
	logger.Println("collections seeded")

	engine := lifecycle.NewEngine(maintenance)
	generator := analytics.NewGenerator(properties, maintenance, contractors, reports)
	mirrorClient := mirror.NewMockClient(cfg.Mirror.Latency, cfg.Mirror.CacheTTL)

	// Push is optional: without VAPID keys the dashboard runs, just
	// without notifications.
	var webpushOptions *webpush.Options
	var pool *notification.WorkerPool
	if cfg.Push.PublicKey != "" && cfg.Push.PrivateKey != "" {
		webpushOptions = &webpush.Options{
			VAPIDPublicKey:  cfg.Push.PublicKey,
			VAPIDPrivateKey: cfg.Push.PrivateKey,
			Subscriber:      cfg.Push.Subject,
			TTL:             cfg.Push.TTL,
		}
		pool = notification.NewWorkerPool(cfg.WorkerPool.Size, subscriptions, settings, webpushOptions)
		pool.Start(ctx)
		logger.Printf("notification worker pool started with %d workers", cfg.WorkerPool.Size)
	} else {
		logger.Println("VAPID keys not configured, push notifications disabled")
	}

	handler := api.NewHandler(api.Deps{
		Properties:    properties,
		Maintenance:   maintenance,
		Contractors:   contractors,
		Reports:       reports,
		Settings:      settings,
		Subscriptions: subscriptions,
		Lifecycle:     engine,
		ReportGen:     generator,
		Mirror:        mirrorClient,
		Notify:        pool,
		WebPush:       webpushOptions,
	})

	router := api.NewRouter(handler, api.RouterConfig{
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
		CacheTTL:        time.Duration(cfg.Server.CacheTTLSeconds) * time.Second,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
