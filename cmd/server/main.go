package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rkaranam/Savings-Planner-Backend/internal/api"
	"github.com/rkaranam/Savings-Planner-Backend/internal/config"
	"github.com/rkaranam/Savings-Planner-Backend/internal/database"
	"github.com/rkaranam/Savings-Planner-Backend/internal/exchangerate"
	"github.com/rkaranam/Savings-Planner-Backend/internal/repository"
	"github.com/rkaranam/Savings-Planner-Backend/internal/scheduler"
	"github.com/rkaranam/Savings-Planner-Backend/internal/secrets"
	"github.com/rkaranam/Savings-Planner-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Create repositories
	goalRepo := repository.NewGoalRepository(db)
	contributionRepo := repository.NewContributionRepository(db)
	rateRepo := repository.NewRateRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Resolve the exchange-rate API key: a configured key is stored encrypted
	// for later runs; otherwise the stored copy is used.
	apiKey := cfg.ExchangeRate.APIKey
	if cfg.ExchangeRate.SecretKey != "" {
		encryptor, err := secrets.NewEncryptor(cfg.ExchangeRate.SecretKey)
		if err != nil {
			log.Fatalf("Failed to initialize credential encryption: %v", err)
		}
		credentialService := service.NewCredentialService(settingRepo, encryptor)

		if apiKey != "" {
			if err := credentialService.StoreAPIKey(context.Background(), apiKey); err != nil {
				log.Fatalf("Failed to store exchange rate API key: %v", err)
			}
		} else {
			stored, err := credentialService.LoadAPIKey()
			if err != nil {
				log.Printf("Failed to load stored exchange rate API key: %v", err)
			} else {
				apiKey = stored
			}
		}
	}
	if apiKey == "" {
		log.Println("No exchange rate API key configured; conversions will use the last known rate")
	}

	rateClient := exchangerate.NewClient(cfg.ExchangeRate.BaseURL, apiKey)

	// Create services
	systemService := service.NewSystemService(db)
	rateService := service.NewRateService(rateRepo, rateClient)
	goalService := service.NewGoalService(goalRepo, contributionRepo, rateService)
	dashboardService := service.NewDashboardService(goalRepo, rateService)

	// Start the periodic rate refresh
	rateScheduler := scheduler.New(rateService)
	if err := rateScheduler.Start(cfg.Scheduler.RateRefreshSchedule); err != nil {
		log.Fatalf("Failed to start rate refresh scheduler: %v", err)
	}

	// Create router
	router := api.NewRouter(systemService, goalService, rateService, dashboardService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	rateScheduler.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
